package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/auth"
	"github.com/mlegrand/photoshare-go/internal/validation"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=CREATOR CONSUMER"`
}

func RegisterHandler(svc port.Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.Register(r.Context(), port.RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Role:     model.Role(req.Role),
		})
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				WriteError(w, http.StatusBadRequest, "Email is already registered", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not register user", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully registered user #%s", out.User.ID)
	}
}
