package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/austcms/clubpay/internal/pkg/logger"
	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
)

const clubCacheTTL = 10 * time.Minute

// GetClubByID retrieves a club, preferring the cache. Club records change
// rarely, so a short TTL keeps the hot payment path off the database.
func (r *ClubRepo) GetClubByID(ctx context.Context, id string) (*models.Club, error) {
	cacheKey := clubCacheKey(id)

	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var club models.Club
		if err := json.Unmarshal([]byte(cached), &club); err == nil {
			return &club, nil
		}
	}

	query := `
		SELECT id, name, membership_fee, currency, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`

	var club models.Club
	err := r.db.GetContext(ctx, &club, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	if encoded, err := json.Marshal(&club); err == nil {
		if err := r.cache.Set(ctx, cacheKey, encoded, clubCacheTTL); err != nil {
			logger.Warn("Failed to cache club record",
				logger.String("club_id", id),
				logger.Err(err))
		}
	}

	return &club, nil
}

// AddUserToPendingList enqueues a user for admin approval. The conflict
// clause makes replays no-ops, so a duplicated success callback cannot
// enqueue the same member twice.
func (r *ClubRepo) AddUserToPendingList(ctx context.Context, clubID, userID string) error {
	query := `
		INSERT INTO club_pending_members (club_id, user_id, requested_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (club_id, user_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, clubID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to add user to pending list: %w", err)
	}

	return nil
}

// GetPendingMembers lists the users awaiting admin approval for a club
func (r *ClubRepo) GetPendingMembers(ctx context.Context, clubID string) ([]models.PendingMember, error) {
	query := `
		SELECT club_id, user_id, requested_at
		FROM club_pending_members
		WHERE club_id = $1
		ORDER BY requested_at ASC
	`

	var members []models.PendingMember
	if err := r.db.SelectContext(ctx, &members, query, clubID); err != nil {
		return nil, fmt.Errorf("failed to list pending members: %w", err)
	}

	return members, nil
}

func clubCacheKey(id string) string {
	return "club:" + id
}
