package telegram

import (
	"context"
	"database/sql"
	"testing"

	"yitio/internal/service"
	"yitio/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	videos []*types.Video
}

func (f *fakeRepo) CreateVideo(ctx context.Context, video *types.Video) error {
	f.videos = append(f.videos, video)
	return nil
}

func (f *fakeRepo) GetVideoByURL(ctx context.Context, url string) (*types.Video, error) {
	for _, video := range f.videos {
		if video.URL == url {
			return video, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) ListVideos(ctx context.Context, platform types.Platform, limit int) ([]*types.Video, error) {
	return f.videos, nil
}

func (f *fakeRepo) CountVideosByPlatform(ctx context.Context, platform types.Platform) (int, error) {
	return len(f.videos), nil
}

func (f *fakeRepo) GetUser(ctx context.Context, telegramID int64) (*types.User, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) UpsertUser(ctx context.Context, user *types.User) error { return nil }

func (f *fakeRepo) CountUsers(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeRepo) CountPremiumUsers(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeRepo) CreatePayment(ctx context.Context, payment *types.Payment) error { return nil }

func (f *fakeRepo) SumCompletedPayments(ctx context.Context) (int64, error) { return 0, nil }

// Walks the upload flow the way the handlers drive it: begin, submit a new
// URL, pick a platform, persist exactly one record, end idle.
func TestUploadFlowScenario(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := service.NewService(zap.NewNop(), repo)
	sessions := NewSessionStore(DefaultSessionTTL)
	chatID := int64(100)

	// "Add video" pressed.
	sessions.Begin(chatID)
	require.Equal(t, StateWaitingURL, sessions.State(chatID))

	// Admin sends a brand-new TikTok URL.
	url := "https://www.tiktok.com/@creator/video/42"
	exists, err := svc.VideoExists(ctx, url)
	require.NoError(t, err)
	require.False(t, exists)
	sessions.SetURL(chatID, url)
	require.Equal(t, StateWaitingPlatform, sessions.State(chatID))

	// Admin taps "TikTok".
	pending, ok := sessions.URL(chatID)
	require.True(t, ok)
	video, err := svc.AddVideo(ctx, pending, types.PlatformTikTok)
	sessions.Clear(chatID)
	require.NoError(t, err)

	assert.Equal(t, types.PlatformTikTok, video.Platform)
	assert.Len(t, repo.videos, 1)
	assert.Equal(t, StateIdle, sessions.State(chatID))
}

func TestUploadFlowRejectsDuplicateURL(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := service.NewService(zap.NewNop(), repo)
	sessions := NewSessionStore(DefaultSessionTTL)
	chatID := int64(100)

	url := "https://youtube.com/shorts/abc123"
	_, err := svc.AddVideo(ctx, url, types.PlatformYouTube)
	require.NoError(t, err)

	// Duplicate submission: the flow ends without a second record.
	sessions.Begin(chatID)
	exists, err := svc.VideoExists(ctx, url)
	require.NoError(t, err)
	require.True(t, exists)
	sessions.Clear(chatID)

	assert.Equal(t, StateIdle, sessions.State(chatID))
	assert.Len(t, repo.videos, 1)
}

// A platform selection with no active session must be ignored by the
// state-scoped guard, producing no store write.
func TestStalePlatformCallbackIsIgnored(t *testing.T) {
	repo := &fakeRepo{}
	sessions := NewSessionStore(DefaultSessionTTL)
	chatID := int64(100)

	require.Equal(t, StateIdle, sessions.State(chatID))
	guardPassed := sessions.State(chatID) == StateWaitingPlatform

	assert.False(t, guardPassed)
	assert.Empty(t, repo.videos)
}
