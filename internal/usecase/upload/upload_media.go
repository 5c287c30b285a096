package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"path"
	"strings"

	// registered decoders for the dimension sniff on uploaded images
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

const (
	MaxImageSize = 10 << 20
	MaxVideoSize = 100 << 20
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var allowedVideoTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
}

type uploaderSrv struct {
	storage      port.Storage
	genUUID      port.UUIDGen
	mediaBucket  string
	avatarBucket string
}

// NewMediaUploader returns the use case for validating and storing an
// uploaded file.
func NewMediaUploader(storage port.Storage, genUUID port.UUIDGen, mediaBucket, avatarBucket string) port.MediaUploader {
	return &uploaderSrv{storage: storage, genUUID: genUUID, mediaBucket: mediaBucket, avatarBucket: avatarBucket}
}

// compile-time check
var _ port.MediaUploader = (*uploaderSrv)(nil)

func (s *uploaderSrv) UploadMedia(ctx context.Context, in port.UploadInput) (*port.UploadOutput, error) {
	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))

	ext, isImage := allowedImageTypes[contentType]
	var kind model.MediaKind
	switch {
	case isImage:
		kind = model.MediaKindImage
	case !in.Avatar:
		var isVideo bool
		ext, isVideo = allowedVideoTypes[contentType]
		if !isVideo {
			return nil, ErrUnsupportedType
		}
		kind = model.MediaKindVideo
	default:
		// avatars are images only
		return nil, ErrUnsupportedType
	}

	maxSize := int64(MaxImageSize)
	if kind == model.MediaKindVideo {
		maxSize = MaxVideoSize
	}
	if in.SizeBytes > maxSize {
		return nil, ErrFileTooLarge
	}

	reader := in.Reader
	size := in.SizeBytes
	if kind == model.MediaKindImage {
		// Declared size and content type come from the client; buffering lets
		// us enforce the cap and confirm the bytes really decode as an image.
		buf, err := readCapped(in.Reader, maxSize)
		if err != nil {
			return nil, err
		}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(buf)); err != nil {
			return nil, ErrUnsupportedType
		} else if cfg.Width == 0 || cfg.Height == 0 {
			return nil, ErrUnsupportedType
		}
		reader = bytes.NewReader(buf)
		size = int64(len(buf))
	}

	bucket := s.mediaBucket
	if in.Avatar {
		bucket = s.avatarBucket
	}

	fileKey := s.genUUID().String() + ext
	opts := map[string]string{
		"Content-Type":      contentType,
		"original-filename": path.Base(in.FileName),
	}
	if err := s.storage.SaveFile(ctx, bucket, fileKey, reader, size, opts); err != nil {
		return nil, fmt.Errorf("error saving file %q: %w", fileKey, err)
	}
	log.Printf("saved %s upload %q to bucket %q", kind, fileKey, bucket)

	return &port.UploadOutput{
		SecureURL: s.storage.PublicURL(bucket, fileKey),
		MediaType: kind,
	}, nil
}

func readCapped(r io.Reader, max int64) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("error reading upload: %w", err)
	}
	if int64(len(buf)) > max {
		return nil, ErrFileTooLarge
	}
	return buf, nil
}
