package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/upload"
)

// maxMultipartMemory bounds how much of the multipart body is held in RAM;
// the rest spills to temp files.
const maxMultipartMemory = 32 << 20

// UploadHandler accepts a multipart file and stores it, returning the durable
// URL. Post media requires the creator role; avatar uploads (?kind=avatar)
// are open to any authenticated user.
func UploadHandler(svc port.MediaUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		avatar := r.URL.Query().Get("kind") == "avatar"
		if !avatar {
			if role, _ := api_context.AuthRoleFromContext(r.Context()); role != string(model.RoleCreator) {
				WriteError(w, http.StatusForbidden, "Only creators can upload post media", nil)
				return
			}
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close uploaded file: %v", err)
			}
		}()

		out, err := svc.UploadMedia(r.Context(), port.UploadInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Reader:      file,
			Avatar:      avatar,
		})
		if err != nil {
			switch {
			case errors.Is(err, upload.ErrUnsupportedType):
				WriteError(w, http.StatusBadRequest, "Unsupported file type", nil)
			case errors.Is(err, upload.ErrFileTooLarge):
				WriteError(w, http.StatusBadRequest, "File exceeds the size limit", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not store file", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully stored %s upload %q", out.MediaType, header.Filename)
	}
}
