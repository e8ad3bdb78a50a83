package types

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
)

// Platforms lists the platforms offered by the admin upload flow, in the
// order they are presented.
var Platforms = []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram}

func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

type Video struct {
	URL       string    `json:"url"`
	Platform  Platform  `json:"platform"`
	EmbedURL  string    `json:"embed_url"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	TelegramID       int64
	Premium          bool
	PremiumExpiresAt string
	UpdatedAt        time.Time
}

type Payment struct {
	ID            uuid.UUID
	TelegramID    int64
	Provider      string
	Amount        int64
	Currency      string
	Payload       string
	TransactionID string
	Status        string
	CreatedAt     time.Time
}

type PremiumStatus struct {
	IsPremium bool    `json:"is_premium"`
	ExpiresAt *string `json:"expires_at"`
	DaysLeft  *int    `json:"days_left"`
}

type Stats struct {
	Videos  VideoStats `json:"videos"`
	Users   UserStats  `json:"users"`
	Revenue int64      `json:"revenue"`
}

type VideoStats struct {
	YouTube   int `json:"youtube"`
	TikTok    int `json:"tiktok"`
	Instagram int `json:"instagram"`
	Total     int `json:"total"`
}

type UserStats struct {
	Total             int     `json:"total"`
	Premium           int     `json:"premium"`
	PremiumPercentage float64 `json:"premium_percentage"`
}
