package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/serkank/amora/internal/app/models"
	appRepos "github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/auth"
)

type seedMember struct {
	username string
	knownAs  string
	gender   appModels.Gender
	dob      time.Time
	city     string
	country  string
	role     appModels.RoleType
	photoURL string
}

// CreateDefaultData seeds a handful of demo members so a fresh instance has
// something to browse. Existing usernames are skipped, so reruns are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	memberRepo := appRepos.NewMemberRepository(dbPool)
	photoRepo := appRepos.NewPhotoRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo members)...")

	seeds := []seedMember{
		{
			username: "admin",
			knownAs:  "Admin",
			gender:   appModels.GenderFemale,
			dob:      time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
			city:     "Istanbul", country: "Turkey",
			role: appModels.RoleAdmin,
		},
		{
			username: "lisa",
			knownAs:  "Lisa",
			gender:   appModels.GenderFemale,
			dob:      time.Date(1996, 6, 2, 0, 0, 0, 0, time.UTC),
			city:     "Berlin", country: "Germany",
			role:     appModels.RoleMember,
			photoURL: "https://randomuser.me/api/portraits/women/3.jpg",
		},
		{
			username: "todd",
			knownAs:  "Todd",
			gender:   appModels.GenderMale,
			dob:      time.Date(1993, 11, 20, 0, 0, 0, 0, time.UTC),
			city:     "Lisbon", country: "Portugal",
			role:     appModels.RoleMember,
			photoURL: "https://randomuser.me/api/portraits/men/4.jpg",
		},
		{
			username: "maya",
			knownAs:  "Maya",
			gender:   appModels.GenderFemale,
			dob:      time.Date(1999, 3, 9, 0, 0, 0, 0, time.UTC),
			city:     "Amsterdam", country: "Netherlands",
			role:     appModels.RoleMember,
			photoURL: "https://randomuser.me/api/portraits/women/16.jpg",
		},
	}

	// One shared demo password; this data is for local development only
	hashed, err := auth.HashPassword("Pa55w.rd")
	if err != nil {
		return err
	}

	var finalErr error
	for _, s := range seeds {
		exists, err := memberRepo.UsernameExists(ctx, s.username)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		city := s.city
		country := s.country
		member := &appModels.Member{
			Username:    s.username,
			Password:    hashed,
			Gender:      s.gender,
			DateOfBirth: s.dob,
			KnownAs:     s.knownAs,
			City:        &city,
			Country:     &country,
			Role:        s.role,
		}

		if _, err := memberRepo.Create(ctx, member); err != nil {
			if errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
				continue
			}
			lgr.Error().Err(err).Str("username", s.username).Msg("Error creating demo member")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if s.photoURL != "" {
			photo := &appModels.Photo{
				MemberID:   member.ID,
				URL:        s.photoURL,
				IsMain:     true,
				IsApproved: true,
			}
			if _, err := photoRepo.Create(ctx, photo); err != nil {
				lgr.Error().Err(err).Str("username", s.username).Msg("Error creating demo photo")
				finalErr = errors.Join(finalErr, err)
			}
		}

		lgr.Debug().Str("username", s.username).Msg("Demo member created")
	}

	return finalErr
}
