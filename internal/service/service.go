// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Decentr-net/demeter/internal/entities"
	"github.com/Decentr-net/demeter/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNoPet returned when a pet operation is requested for a profile without a pet.
var ErrNoPet = errors.New("no pet owned")

// ErrPetNotRetired returned when adoption is requested while the current pet
// has not reached max level yet.
var ErrPetNotRetired = errors.New("pet has not reached max level")

// ErrUnknownSpecies returned when adoption is requested for a species outside the catalog.
var ErrUnknownSpecies = errors.New("unknown species")

// GrantOptions tweaks a single reward evaluation.
type GrantOptions struct {
	// Force grants the full daily reward and a guaranteed egg even if one was
	// already granted today.
	Force bool
	// XPMultiplier scales the base reward. Zero means 1.
	XPMultiplier uint64
}

// Service ...
type Service interface {
	CreatePost(ctx context.Context, p *entities.Post) (*entities.RewardResult, error)
	ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error)
	SetReaction(ctx context.Context, postOwner, postUUID string, mood uint8, timestamp time.Time, reactedBy string) error

	GetProfile(ctx context.Context, owner string) (*entities.Profile, error)
	GetUnlockedImages(ctx context.Context, owner string) ([]string, error)
	SetUsageLimits(ctx context.Context, owner string, l entities.UsageLimits) error

	GrantPostReward(ctx context.Context, owner string, now time.Time, opts GrantOptions) (*entities.RewardResult, error)
	AdoptPet(ctx context.Context, owner string, species entities.Species) (*entities.Pet, error)
	ReleasePet(ctx context.Context, owner string) error

	// ProcessActivities drains one batch of synced post activities, granting
	// rewards and advancing the feed cursor in a single transaction.
	ProcessActivities(ctx context.Context, limit uint16) (int, error)
	GetCursor(ctx context.Context) (uint64, error)
}
