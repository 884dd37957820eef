package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/dberrors"
	"github.com/serkank/amora/internal/pkg/helpers"
	"github.com/serkank/amora/internal/pkg/logger"
)

// IMemberRepository defines the interface for member-related database operations
type IMemberRepository interface {
	Create(ctx context.Context, member *models.Member) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByIDWithPhotos(ctx context.Context, id int64, includeUnapproved bool) (*models.Member, error)
	GetByUsername(ctx context.Context, username string) (*models.Member, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	GetMembers(ctx context.Context, filter models.MemberFilter, today time.Time) ([]*models.Member, int64, error)
	UpdateProfile(ctx context.Context, member *models.Member) error
	UpdateLastActive(ctx context.Context, id int64) error
}

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const memberColumns = `id, username, password, gender, date_of_birth, known_as,
	created_profile, last_active, introduction, looking_for, interests, city, country, role`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID,
		&m.Username,
		&m.Password,
		&m.Gender,
		&m.DateOfBirth,
		&m.KnownAs,
		&m.CreatedProfile,
		&m.LastActive,
		&m.Introduction,
		&m.LookingFor,
		&m.Interests,
		&m.City,
		&m.Country,
		&m.Role,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new member
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) (int64, error) {
	query := `
		INSERT INTO members (username, password, gender, date_of_birth, known_as, city, country, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_profile, last_active
	`

	err := r.db.QueryRow(ctx, query,
		member.Username,
		member.Password,
		member.Gender,
		member.DateOfBirth,
		member.KnownAs,
		member.City,
		member.Country,
		member.Role,
	).Scan(&member.ID, &member.CreatedProfile, &member.LastActive)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "members_username_key") {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
		return 0, fmt.Errorf("error creating member: %w", err)
	}

	return member.ID, nil
}

// GetByID retrieves a member by ID, without photos
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}

	return member, nil
}

// GetByIDWithPhotos retrieves a member together with their photo collection.
// Unapproved photos are visible only when the member is viewing themselves.
func (r *MemberRepository) GetByIDWithPhotos(ctx context.Context, id int64, includeUnapproved bool) (*models.Member, error) {
	member, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photoQuery := r.sb.Select("id", "member_id", "url", "description", "is_main", "is_approved", "public_id", "date_added").
		From("photos").
		Where(squirrel.Eq{"member_id": id}).
		OrderBy("date_added ASC")
	if !includeUnapproved {
		photoQuery = photoQuery.Where(squirrel.Eq{"is_approved": true})
	}

	sql, args, err := photoQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building photo query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving member photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.MemberID, &p.URL, &p.Description, &p.IsMain, &p.IsApproved, &p.PublicID, &p.DateAdded); err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		member.Photos = append(member.Photos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return member, nil
}

// GetByUsername retrieves a member by login name
func (r *MemberRepository) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE username = $1`

	member, err := scanMember(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}

	return member, nil
}

// UsernameExists checks whether a login name is already taken
func (r *MemberRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM members WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// discoveryConditions enumerates the WHERE predicates for a discovery filter.
// Kept separate from query execution so the pipeline can be inspected in tests.
func discoveryConditions(filter models.MemberFilter, today time.Time) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{
		squirrel.NotEq{"m.id": filter.RequesterID},
		squirrel.Eq{"m.gender": string(filter.Gender)},
	}

	if filter.Likers {
		conds = append(conds, likersOf(filter.RequesterID))
	}
	if filter.Likees {
		conds = append(conds, likeesOf(filter.RequesterID))
	}

	// The dob window only kicks in when the caller moved the bounds off the
	// defaults, matching the query-parameter contract.
	if filter.MinAge != models.DefaultMinAge || filter.MaxAge != models.DefaultMaxAge {
		minDob, maxDob := helpers.DobRange(today, filter.MinAge, filter.MaxAge)
		conds = append(conds,
			squirrel.GtOrEq{"m.date_of_birth": minDob},
			squirrel.LtOrEq{"m.date_of_birth": maxDob})
	}

	return conds
}

// discoveryOrder maps the orderBy key to an ORDER BY clause
func discoveryOrder(orderBy string) string {
	switch orderBy {
	case models.OrderByCreated, models.OrderByCreatedAlt:
		return "m.created_profile DESC"
	default:
		return "m.last_active DESC"
	}
}

// GetMembers evaluates a discovery filter and returns one page of members
// plus the total match count. Each member carries their main photo, if any.
func (r *MemberRepository) GetMembers(ctx context.Context, filter models.MemberFilter, today time.Time) ([]*models.Member, int64, error) {
	conds := discoveryConditions(filter, today)

	countQuery := r.sb.Select("COUNT(*)").From("members m")
	for _, c := range conds {
		countQuery = countQuery.Where(c)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building member count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting members: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	listQuery := r.sb.Select(
		"m.id", "m.username", "m.gender", "m.date_of_birth", "m.known_as",
		"m.created_profile", "m.last_active", "m.city", "m.country",
		"p.url AS main_photo_url",
	).
		From("members m").
		LeftJoin("photos p ON p.member_id = m.id AND p.is_main = TRUE").
		OrderBy(discoveryOrder(filter.OrderBy)).
		Offset(offset).
		Limit(uint64(limit))
	for _, c := range conds {
		listQuery = listQuery.Where(c)
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building member list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing member list query: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		var m models.Member
		var mainPhotoURL *string

		err := rows.Scan(
			&m.ID,
			&m.Username,
			&m.Gender,
			&m.DateOfBirth,
			&m.KnownAs,
			&m.CreatedProfile,
			&m.LastActive,
			&m.City,
			&m.Country,
			&mainPhotoURL,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning member row: %w", err)
		}

		if mainPhotoURL != nil {
			m.Photos = []*models.Photo{{MemberID: m.ID, URL: *mainPhotoURL, IsMain: true, IsApproved: true}}
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, total, nil
}

// UpdateProfile updates the editable profile fields
func (r *MemberRepository) UpdateProfile(ctx context.Context, member *models.Member) error {
	query := `
		UPDATE members
		SET introduction = $1, looking_for = $2, interests = $3, city = $4, country = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query,
		member.Introduction,
		member.LookingFor,
		member.Interests,
		member.City,
		member.Country,
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating member profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// UpdateLastActive stamps the member's last-active timestamp
func (r *MemberRepository) UpdateLastActive(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE members SET last_active = NOW() WHERE id = $1`, id)
	if err != nil {
		logger.Warn().Err(err).Int64("memberID", id).Msg("Failed to update last active timestamp")
		return fmt.Errorf("error updating last active: %w", err)
	}
	return nil
}
