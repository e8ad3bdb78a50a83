package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"yitio/config"
	"yitio/types"

	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	logger *zap.Logger
	conn   *sql.DB
}

func NewSQLite(config *config.Config, logger *zap.Logger) (Repository, error) {
	configDb := config.Database
	db, err := sql.Open(
		"sqlite3",
		fmt.Sprintf("%s%s?_foreign_keys=on&cache=%s", configDb.Type, configDb.Address, configDb.Cache),
	)
	if err != nil {
		return nil, err
	}

	// Set the maximum number of open connections
	db.SetMaxOpenConns(configDb.MaxConn)

	// Ping to check if the database connection is established
	err = db.Ping()
	if err != nil {
		return nil, err
	}

	repo := &SQLite{
		conn:   db,
		logger: logger,
	}

	err = repo.migrate(configDb.Schema)
	if err != nil {
		return nil, err
	}

	return repo, nil
}

func (s *SQLite) migrate(filepath string) error {
	// Read the schema file
	schema, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	// Execute the SQL statements from the schema file
	_, err = s.conn.Exec(string(schema))
	if err != nil {
		return err
	}

	return nil
}

func (s *SQLite) CreateVideo(ctx context.Context, video *types.Video) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO videos (url, platform, embed_url, created_at) VALUES (?, ?, ?, ?)`,
		video.URL,
		string(video.Platform),
		video.EmbedURL,
		video.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLite) GetVideoByURL(ctx context.Context, url string) (*types.Video, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT url, platform, embed_url, created_at FROM videos WHERE url = ?`, url)

	return scanVideo(row)
}

func (s *SQLite) ListVideos(ctx context.Context, platform types.Platform, limit int) ([]*types.Video, error) {
	query := `SELECT url, platform, embed_url, created_at FROM videos`
	args := []any{}

	if platform != "" {
		query += ` WHERE platform = ?`
		args = append(args, string(platform))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []*types.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

func (s *SQLite) CountVideosByPlatform(ctx context.Context, platform types.Platform) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM videos WHERE platform = ?`, string(platform)).Scan(&count)
	return count, err
}

func (s *SQLite) GetUser(ctx context.Context, telegramID int64) (*types.User, error) {
	user := &types.User{}
	var expiresAt sql.NullString
	var updatedAt sql.NullString

	err := s.conn.QueryRowContext(ctx,
		`SELECT telegram_id, is_premium, premium_expires_at, updated_at FROM users WHERE telegram_id = ?`,
		telegramID,
	).Scan(&user.TelegramID, &user.Premium, &expiresAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	user.PremiumExpiresAt = expiresAt.String
	if updatedAt.Valid {
		if t, err := types.ParseTime(updatedAt.String); err == nil {
			user.UpdatedAt = t
		}
	}

	return user, nil
}

func (s *SQLite) UpsertUser(ctx context.Context, user *types.User) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO users (telegram_id, is_premium, premium_expires_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(telegram_id) DO UPDATE SET
		   is_premium = excluded.is_premium,
		   premium_expires_at = excluded.premium_expires_at,
		   updated_at = excluded.updated_at`,
		user.TelegramID,
		user.Premium,
		user.PremiumExpiresAt,
		user.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLite) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (s *SQLite) CountPremiumUsers(ctx context.Context) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE is_premium = 1`).Scan(&count)
	return count, err
}

func (s *SQLite) CreatePayment(ctx context.Context, payment *types.Payment) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO payments (id, telegram_id, provider, amount, currency, payload, transaction_id, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID.String(),
		payment.TelegramID,
		payment.Provider,
		payment.Amount,
		payment.Currency,
		payment.Payload,
		payment.TransactionID,
		payment.Status,
		payment.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLite) SumCompletedPayments(ctx context.Context) (int64, error) {
	var total int64
	err := s.conn.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed'`).Scan(&total)
	return total, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVideo(row scanner) (*types.Video, error) {
	video := &types.Video{}
	var platform string
	var createdAt string

	if err := row.Scan(&video.URL, &platform, &video.EmbedURL, &createdAt); err != nil {
		return nil, err
	}

	video.Platform = types.Platform(platform)
	if t, err := types.ParseTime(createdAt); err == nil {
		video.CreatedAt = t
	}

	return video, nil
}
