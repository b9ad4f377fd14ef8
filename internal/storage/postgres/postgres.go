// Package postgres реализует хранилище поверх pgx.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// NewStore создаёт хранилище поверх пула соединений
func NewStore(pool *pgxpool.Pool) *storage.Store {
	return &storage.Store{
		Users:         &userRepo{pool: pool},
		Cases:         &caseRepo{pool: pool},
		Likes:         &likeRepo{pool: pool},
		LikedCases:    &likedCaseRepo{pool: pool},
		Notifications: &notificationRepo{pool: pool},
		Offers:        &offerRepo{pool: pool},
		Interests:     &interestRepo{pool: pool},
		Messages:      &messageRepo{pool: pool},
	}
}
