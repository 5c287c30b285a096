package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/upload"
)

func newUploadRequest(t *testing.T, target, role string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "shot.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("not-really-a-jpeg")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if role != "" {
		ctx := context.WithValue(req.Context(), api_context.AuthUserIDKey, db.NewUUID())
		ctx = context.WithValue(ctx, api_context.AuthRoleKey, role)
		req = req.WithContext(ctx)
	}
	return req
}

func TestUploadHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		role       string
		svc        *mock.MockMediaUploader
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "unauthenticated",
			target:     "/upload",
			role:       "",
			svc:        &mock.MockMediaUploader{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "consumer cannot upload post media",
			target:     "/upload",
			role:       "CONSUMER",
			svc:        &mock.MockMediaUploader{},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unsupported type",
			target:     "/upload",
			role:       "CREATOR",
			svc:        &mock.MockMediaUploader{Err: upload.ErrUnsupportedType},
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "file too large",
			target:     "/upload",
			role:       "CREATOR",
			svc:        &mock.MockMediaUploader{Err: upload.ErrFileTooLarge},
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "success",
			target:     "/upload",
			role:       "CREATOR",
			svc:        &mock.MockMediaUploader{Out: &port.UploadOutput{SecureURL: "https://storage.example.com/photos/a.jpg", MediaType: "image"}},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "avatar open to consumers",
			target:     "/upload?kind=avatar",
			role:       "CONSUMER",
			svc:        &mock.MockMediaUploader{Out: &port.UploadOutput{SecureURL: "https://storage.example.com/avatars/a.jpg", MediaType: "image"}},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := UploadHandler(tc.svc)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, newUploadRequest(t, tc.target, tc.role))

			if rr.Code != tc.wantStatus {
				t.Fatalf("got status %d; want %d", rr.Code, tc.wantStatus)
			}
			if tc.svc.Called != tc.wantCalled {
				t.Errorf("service called = %v; want %v", tc.svc.Called, tc.wantCalled)
			}
		})
	}
}

func TestUploadHandler_AvatarFlagCarried(t *testing.T) {
	svc := &mock.MockMediaUploader{Out: &port.UploadOutput{SecureURL: "https://storage.example.com/avatars/a.jpg", MediaType: "image"}}
	h := UploadHandler(svc)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newUploadRequest(t, "/upload?kind=avatar", "CONSUMER"))

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d; want 200", rr.Code)
	}
	if !svc.In.Avatar {
		t.Error("expected the avatar flag to be set on the service input")
	}
	if svc.In.FileName != "shot.jpg" {
		t.Errorf("got file name %q; want %q", svc.In.FileName, "shot.jpg")
	}
}
