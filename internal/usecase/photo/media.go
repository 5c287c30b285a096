package photo

import "github.com/mlegrand/photoshare-go/internal/model"

// mediaSlots re-derives the canonical kind from the URL and routes the URL
// into exactly one of the image/video slots. The stored kind is never
// consulted: it may be stale or wrong, the URL pattern is authoritative.
func mediaSlots(url string) (imageURL, videoURL string, kind model.MediaKind) {
	kind = model.DetectMediaKind(url)
	if kind == model.MediaKindVideo {
		return "", url, kind
	}
	return url, "", kind
}
