package repository

import (
	"context"

	"yitio/types"
)

type Repository interface {
	repositoryVideo
	repositoryUser
	repositoryPayment
}

type repositoryVideo interface {
	CreateVideo(ctx context.Context, video *types.Video) error
	GetVideoByURL(ctx context.Context, url string) (*types.Video, error)
	ListVideos(ctx context.Context, platform types.Platform, limit int) ([]*types.Video, error)
	CountVideosByPlatform(ctx context.Context, platform types.Platform) (int, error)
}

type repositoryUser interface {
	GetUser(ctx context.Context, telegramID int64) (*types.User, error)
	UpsertUser(ctx context.Context, user *types.User) error
	CountUsers(ctx context.Context) (int, error)
	CountPremiumUsers(ctx context.Context) (int, error)
}

type repositoryPayment interface {
	CreatePayment(ctx context.Context, payment *types.Payment) error
	SumCompletedPayments(ctx context.Context) (int64, error)
}
