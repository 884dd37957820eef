package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
)

// IPhotoRepository defines the interface for photo-related database operations
type IPhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	HasMainPhoto(ctx context.Context, memberID int64) (bool, error)
	SetMain(ctx context.Context, memberID, photoID int64) error
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) error
	GetUnapproved(ctx context.Context) ([]*models.PhotoForModeration, error)
}

// PhotoRepository handles database operations for photos
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a new photo
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) (int64, error) {
	query := `
		INSERT INTO photos (member_id, url, description, is_main, is_approved, public_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_added
	`

	err := r.db.QueryRow(ctx, query,
		photo.MemberID,
		photo.URL,
		photo.Description,
		photo.IsMain,
		photo.IsApproved,
		photo.PublicID,
	).Scan(&photo.ID, &photo.DateAdded)
	if err != nil {
		return 0, fmt.Errorf("error creating photo: %w", err)
	}

	return photo.ID, nil
}

// GetByID retrieves a photo by ID
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	var p models.Photo
	err := r.db.QueryRow(ctx,
		`SELECT id, member_id, url, description, is_main, is_approved, public_id, date_added
		 FROM photos WHERE id = $1`, id,
	).Scan(&p.ID, &p.MemberID, &p.URL, &p.Description, &p.IsMain, &p.IsApproved, &p.PublicID, &p.DateAdded)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error retrieving photo: %w", err)
	}

	return &p, nil
}

// HasMainPhoto reports whether the member already has a main photo
func (r *PhotoRepository) HasMainPhoto(ctx context.Context, memberID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM photos WHERE member_id = $1 AND is_main = TRUE)`,
		memberID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking main photo: %w", err)
	}
	return exists, nil
}

// SetMain promotes the given photo to main and demotes the member's previous
// main photo. Both updates run in one transaction so the member never ends up
// with zero or two main photos.
func (r *PhotoRepository) SetMain(ctx context.Context, memberID, photoID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE photos SET is_main = FALSE WHERE member_id = $1 AND is_main = TRUE`,
		memberID,
	); err != nil {
		return fmt.Errorf("error demoting current main photo: %w", err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE photos SET is_main = TRUE WHERE id = $1 AND member_id = $2`,
		photoID, memberID,
	)
	if err != nil {
		return fmt.Errorf("error promoting photo to main: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing main photo change: %w", err)
	}

	return nil
}

// Delete removes a photo row
func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting photo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}

	return nil
}

// Approve marks a photo as approved
func (r *PhotoRepository) Approve(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `UPDATE photos SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error approving photo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}

	return nil
}

// GetUnapproved lists all photos awaiting moderation, oldest first,
// together with the owning member's display name
func (r *PhotoRepository) GetUnapproved(ctx context.Context) ([]*models.PhotoForModeration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.member_id, p.url, p.description, p.is_main, p.is_approved, p.public_id, p.date_added,
		        m.known_as
		 FROM photos p
		 JOIN members m ON m.id = p.member_id
		 WHERE p.is_approved = FALSE
		 ORDER BY p.date_added ASC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving unapproved photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.PhotoForModeration
	for rows.Next() {
		var p models.PhotoForModeration
		if err := rows.Scan(&p.ID, &p.MemberID, &p.URL, &p.Description, &p.IsMain, &p.IsApproved, &p.PublicID, &p.DateAdded, &p.KnownAs); err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		photos = append(photos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return photos, nil
}
