package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	photoUC "github.com/mlegrand/photoshare-go/internal/usecase/photo"
)

func TestDeletePhotoHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	userID := db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
	tests := []struct {
		name           string
		ctxID          *db.UUID
		ctxUser        *db.UUID
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			ctxID:          nil,
			ctxUser:        &userID,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "missing auth",
			ctxID:          &validID,
			ctxUser:        nil,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "authentication required",
		},
		{
			name:           "not found",
			ctxID:          &validID,
			ctxUser:        &userID,
			svcErr:         photoUC.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Photo not found",
		},
		{
			name:           "not owner",
			ctxID:          &validID,
			ctxUser:        &userID,
			svcErr:         photoUC.ErrNotOwner,
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "your own posts",
		},
		{
			name:           "service error",
			ctxID:          &validID,
			ctxUser:        &userID,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not delete photo",
		},
		{
			name:           "happy path",
			ctxID:          &validID,
			ctxUser:        &userID,
			wantStatus:     http.StatusOK,
			wantBodySubstr: "Post deleted successfully",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockPhotoDeleter{Err: tc.svcErr}
			h := DeletePhotoHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/photos/"+validID.String(), nil)
			ctx := req.Context()
			if tc.ctxID != nil {
				ctx = context.WithValue(ctx, api_context.IDKey, *tc.ctxID)
			}
			if tc.ctxUser != nil {
				ctx = context.WithValue(ctx, api_context.AuthUserIDKey, *tc.ctxUser)
			}
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("got status %d; want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantBodySubstr != "" && !strings.Contains(rr.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body %q should contain %q", rr.Body.String(), tc.wantBodySubstr)
			}
			if tc.wantStatus == http.StatusOK {
				if !mockSvc.Called || mockSvc.In.ID != validID || mockSvc.In.RequesterID != userID {
					t.Errorf("service got %+v; want id=%s requester=%s", mockSvc.In, validID, userID)
				}
			}
		})
	}
}
