package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/austcms/clubpay/internal/pkg/database"
	"github.com/austcms/clubpay/internal/pkg/models"
)

// ClubRepo implements club lookups and the pending-approval list on
// PostgreSQL, with a Redis read-through cache for club records.
type ClubRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewClubRepo creates a new club repository instance
func NewClubRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *ClubRepo {
	return &ClubRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
