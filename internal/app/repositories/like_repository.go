package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/dberrors"
)

// ILikeRepository defines the interface for like-related database operations
type ILikeRepository interface {
	GetLike(ctx context.Context, likerID, likeeID int64) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
}

// LikeRepository handles database operations for the like graph
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// GetLike retrieves a like edge by its composite key.
// Returns ErrResourceNotFound when the edge does not exist.
func (r *LikeRepository) GetLike(ctx context.Context, likerID, likeeID int64) (*models.Like, error) {
	var like models.Like
	err := r.db.QueryRow(ctx,
		`SELECT liker_id, likee_id FROM likes WHERE liker_id = $1 AND likee_id = $2`,
		likerID, likeeID,
	).Scan(&like.LikerID, &like.LikeeID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving like: %w", err)
	}

	return &like, nil
}

// likersOf restricts a member query (alias m) to members who liked memberID
func likersOf(memberID int64) squirrel.Sqlizer {
	return squirrel.Expr(
		"EXISTS (SELECT 1 FROM likes l WHERE l.liker_id = m.id AND l.likee_id = ?)",
		memberID)
}

// likeesOf restricts a member query (alias m) to members liked by memberID
func likeesOf(memberID int64) squirrel.Sqlizer {
	return squirrel.Expr(
		"EXISTS (SELECT 1 FROM likes l WHERE l.likee_id = m.id AND l.liker_id = ?)",
		memberID)
}

// Create inserts a like edge. A duplicate edge surfaces as ErrAlreadyLiked.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO likes (liker_id, likee_id) VALUES ($1, $2)`,
		like.LikerID, like.LikeeID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "likes_pkey") {
			return apperrors.ErrAlreadyLiked
		}
		return fmt.Errorf("error creating like: %w", err)
	}

	return nil
}
