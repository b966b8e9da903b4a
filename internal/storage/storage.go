// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/demeter/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f within a transaction. The profile rows touched by f are
	// locked for update, so concurrent reward grants for the same owner
	// serialize instead of losing updates.
	InTx(ctx context.Context, f func(s Storage) error) error

	GetCursor(ctx context.Context) (uint64, error)
	SetCursor(ctx context.Context, seq uint64) error

	GetProfile(ctx context.Context, owner string) (*entities.Profile, error)
	CreateProfile(ctx context.Context, p *entities.Profile) error

	SetPet(ctx context.Context, owner string, pet *entities.Pet) error
	SetPetProgress(ctx context.Context, owner string, xp uint64, level uint8) error
	SetLastDailyPost(ctx context.Context, owner string, timestamp time.Time) error
	SetUsageLimits(ctx context.Context, owner string, l entities.UsageLimits) error

	UnlockImage(ctx context.Context, owner, image string) error
	GetUnlockedImages(ctx context.Context, owner string) ([]string, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	SetReaction(ctx context.Context, postOwner, postUUID string, mood uint8, timestamp time.Time, reactedBy string) error

	ListActivities(ctx context.Context, after uint64, limit uint16) ([]*entities.Activity, error)
}

// ListPostsParams ...
type ListPostsParams struct {
	Owner *string
	After *string
	Limit uint16
}
