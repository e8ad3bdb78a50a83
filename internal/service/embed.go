package service

import (
	"fmt"
	"strings"

	"yitio/types"
)

// ExtractVideoID pulls the platform-specific video id out of a share URL.
// Returns an empty string when the URL does not match any known shape.
func ExtractVideoID(url string, platform types.Platform) string {
	switch platform {
	case types.PlatformYouTube:
		if _, after, ok := strings.Cut(url, "youtube.com/shorts/"); ok {
			return trimAt(after, "?")
		}
		if _, after, ok := strings.Cut(url, "youtu.be/"); ok {
			return trimAt(after, "?")
		}
		if _, after, ok := strings.Cut(url, "v="); ok {
			return trimAt(after, "&")
		}
	case types.PlatformInstagram:
		if _, after, ok := strings.Cut(url, "instagram.com/reel/"); ok {
			return trimAt(trimAt(after, "/"), "?")
		}
		if _, after, ok := strings.Cut(url, "instagram.com/p/"); ok {
			return trimAt(trimAt(after, "/"), "?")
		}
	}
	return ""
}

// EmbedURL converts a share URL into the embeddable form used by the
// front-end player. TikTok URLs embed as-is.
func EmbedURL(url string, platform types.Platform) string {
	videoID := ExtractVideoID(url, platform)

	switch platform {
	case types.PlatformYouTube:
		return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", videoID)
	case types.PlatformInstagram:
		return fmt.Sprintf("https://www.instagram.com/p/%s/embed/?autoplay=1", videoID)
	}
	return url
}

func trimAt(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}
