package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"yitio/internal/repository"
	"yitio/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrVideoExists is returned when the submitted URL is already stored.
var ErrVideoExists = errors.New("video url already exists")

// premiumDuration is the entitlement window granted per completed payment.
const premiumDuration = 30 * 24 * time.Hour

// shuffleRunSize is the window used to chunk-shuffle video listings.
const shuffleRunSize = 10

type Service struct {
	logger     *zap.Logger
	repository repository.Repository
}

func NewService(logger *zap.Logger, repo repository.Repository) *Service {
	return &Service{
		logger:     logger,
		repository: repo,
	}
}

// AddVideo persists a new video reference. The URL must not already exist;
// the creation timestamp is set here, at persist time.
func (s *Service) AddVideo(ctx context.Context, url string, platform types.Platform) (*types.Video, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}

	exists, err := s.VideoExists(ctx, url)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrVideoExists
	}

	video := &types.Video{
		URL:       url,
		Platform:  platform,
		EmbedURL:  EmbedURL(url, platform),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Service) VideoExists(ctx context.Context, url string) (bool, error) {
	_, err := s.repository.GetVideoByURL(ctx, strings.TrimSpace(url))
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListVideos returns stored videos newest first, chunk-shuffled in runs of
// ten so the top of the list varies between requests without losing coarse
// recency ordering. category "All" (or empty) disables the platform filter.
func (s *Service) ListVideos(ctx context.Context, category string, limit int) ([]*types.Video, error) {
	var platform types.Platform
	if !strings.EqualFold(category, "all") && category != "" {
		platform = types.Platform(category)
	}

	videos, err := s.repository.ListVideos(ctx, platform, 0)
	if err != nil {
		return nil, err
	}

	chunkShuffle(videos, shuffleRunSize)

	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

// chunkShuffle shuffles each contiguous run of size elements in place.
// Elements never cross run boundaries.
func chunkShuffle(videos []*types.Video, size int) {
	for start := 0; start < len(videos); start += size {
		run := videos[start:min(start+size, len(videos))]
		rand.Shuffle(len(run), func(i, j int) {
			run[i], run[j] = run[j], run[i]
		})
	}
}

// CheckPremium resolves the premium entitlement for a user. Lookup misses,
// missing expiries and unparseable timestamps all degrade to "not premium".
func (s *Service) CheckPremium(ctx context.Context, telegramID int64) *types.PremiumStatus {
	notPremium := &types.PremiumStatus{IsPremium: false}

	user, err := s.repository.GetUser(ctx, telegramID)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Error("failed to get user", zap.Int64("TelegramID", telegramID), zap.Error(err))
		}
		return notPremium
	}

	if !user.Premium || user.PremiumExpiresAt == "" {
		return notPremium
	}

	expiresAt, err := types.ParseTime(user.PremiumExpiresAt)
	if err != nil {
		s.logger.Error("unparseable premium expiry", zap.Int64("TelegramID", telegramID), zap.Error(err))
		return notPremium
	}

	now := time.Now().UTC()
	if !expiresAt.After(now) {
		return notPremium
	}

	daysLeft := int(expiresAt.Sub(now).Hours() / 24)
	expires := expiresAt.Format(time.RFC3339)
	return &types.PremiumStatus{
		IsPremium: true,
		ExpiresAt: &expires,
		DaysLeft:  &daysLeft,
	}
}

// RecordPayment appends a completed payment to the audit log and grants the
// payer a 30-day premium window starting now.
func (s *Service) RecordPayment(ctx context.Context, payment *types.Payment) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	payment.ID = id
	payment.Status = "completed"
	payment.CreatedAt = now

	if err := s.repository.CreatePayment(ctx, payment); err != nil {
		return err
	}

	user := &types.User{
		TelegramID:       payment.TelegramID,
		Premium:          true,
		PremiumExpiresAt: now.Add(premiumDuration).Format(time.RFC3339),
		UpdatedAt:        now,
	}
	return s.repository.UpsertUser(ctx, user)
}

func (s *Service) Stats(ctx context.Context) (*types.Stats, error) {
	youtube, err := s.repository.CountVideosByPlatform(ctx, types.PlatformYouTube)
	if err != nil {
		return nil, err
	}
	tiktok, err := s.repository.CountVideosByPlatform(ctx, types.PlatformTikTok)
	if err != nil {
		return nil, err
	}
	instagram, err := s.repository.CountVideosByPlatform(ctx, types.PlatformInstagram)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.repository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	premiumUsers, err := s.repository.CountPremiumUsers(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repository.SumCompletedPayments(ctx)
	if err != nil {
		return nil, err
	}

	premiumPercentage := 0.0
	if totalUsers > 0 {
		premiumPercentage = float64(premiumUsers) / float64(totalUsers) * 100
	}

	return &types.Stats{
		Videos: types.VideoStats{
			YouTube:   youtube,
			TikTok:    tiktok,
			Instagram: instagram,
			Total:     youtube + tiktok + instagram,
		},
		Users: types.UserStats{
			Total:             totalUsers,
			Premium:           premiumUsers,
			PremiumPercentage: premiumPercentage,
		},
		Revenue: revenue,
	}, nil
}
