package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository  *MemberRepository
	LikeRepository    *LikeRepository
	PhotoRepository   *PhotoRepository
	MessageRepository *MessageRepository
	TokenRepository   *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		MemberRepository:  NewMemberRepository(db),
		LikeRepository:    NewLikeRepository(db),
		PhotoRepository:   NewPhotoRepository(db),
		MessageRepository: NewMessageRepository(db),
		TokenRepository:   NewTokenRepository(db),
	}
}
