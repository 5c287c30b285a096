package model

import "testing"

func TestDetectMediaKind(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want MediaKind
	}{
		{"plain image", "https://cdn.example.com/image/upload/v1/photos/cat.jpg", MediaKindImage},
		{"png", "https://cdn.example.com/photos/cat.png", MediaKindImage},
		{"video upload path", "https://cdn.example.com/video/upload/v1/clips/cat.jpg", MediaKindVideo},
		{"mp4 extension", "https://cdn.example.com/clips/cat.mp4", MediaKindVideo},
		{"uppercase extension", "https://cdn.example.com/clips/CAT.MP4", MediaKindVideo},
		{"webm", "https://cdn.example.com/clips/cat.webm", MediaKindVideo},
		{"mov", "https://cdn.example.com/clips/cat.mov", MediaKindVideo},
		{"avi", "https://cdn.example.com/clips/cat.avi", MediaKindVideo},
		{"mkv", "https://cdn.example.com/clips/cat.mkv", MediaKindVideo},
		{"mp4 not at end", "https://cdn.example.com/clips/cat.mp4.jpg", MediaKindImage},
		{"no extension", "https://cdn.example.com/clips/cat", MediaKindImage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMediaKind(tc.url); got != tc.want {
				t.Errorf("DetectMediaKind(%q) = %q; want %q", tc.url, got, tc.want)
			}
		})
	}
}
