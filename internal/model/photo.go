package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/mlegrand/photoshare-go/internal/db"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Photo is a single upload (image or video) owned by one creator.
//
// MediaKind is persisted but must never be trusted: every read path derives
// the kind from MediaURL via DetectMediaKind and overrides the stored value.
// Stored kinds can be stale or plain wrong (the upload provider's flag is
// client-influenced), the URL pattern is not.
type Photo struct {
	ID           db.UUID    `json:"id"`
	CreatorID    db.UUID    `json:"creator_id"`
	Title        string     `json:"title"`
	Caption      string     `json:"caption"`
	Location     string     `json:"location"`
	People       StringList `json:"people"`
	MediaURL     string     `json:"media_url"`
	MediaKind    MediaKind  `json:"media_kind"`
	ThumbnailURL string     `json:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var videoExtRe = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv)$`)

// DetectMediaKind derives the canonical media kind from the URL alone.
func DetectMediaKind(url string) MediaKind {
	if strings.Contains(url, "/video/upload/") {
		return MediaKindVideo
	}
	if videoExtRe.MatchString(url) {
		return MediaKindVideo
	}
	return MediaKindImage
}
