package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/austcms/clubpay/internal/pkg/models"
)

// UserRepo implements user lookups on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
