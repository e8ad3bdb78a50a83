package service

import (
	"testing"

	"yitio/types"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform types.Platform
		want     string
	}{
		{"youtube shorts", "https://youtube.com/shorts/abc123", types.PlatformYouTube, "abc123"},
		{"youtube shorts with query", "https://youtube.com/shorts/abc123?feature=share", types.PlatformYouTube, "abc123"},
		{"youtu.be", "https://youtu.be/xyz789", types.PlatformYouTube, "xyz789"},
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1s", types.PlatformYouTube, "dQw4w9WgXcQ"},
		{"instagram reel", "https://www.instagram.com/reel/Cxyz/?igshid=1", types.PlatformInstagram, "Cxyz"},
		{"instagram post", "https://www.instagram.com/p/Babc/", types.PlatformInstagram, "Babc"},
		{"tiktok has no id extraction", "https://www.tiktok.com/@user/video/123", types.PlatformTikTok, ""},
		{"unrecognized shape", "https://example.com/v/1", types.PlatformYouTube, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url, tt.platform))
		})
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/embed/abc123?autoplay=1",
		EmbedURL("https://youtube.com/shorts/abc123", types.PlatformYouTube))

	assert.Equal(t,
		"https://www.instagram.com/p/Cxyz/embed/?autoplay=1",
		EmbedURL("https://www.instagram.com/reel/Cxyz/", types.PlatformInstagram))

	// TikTok URLs embed as-is.
	assert.Equal(t,
		"https://www.tiktok.com/@user/video/123",
		EmbedURL("https://www.tiktok.com/@user/video/123", types.PlatformTikTok))
}
