// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Decentr-net/demeter/internal/daycmp"
	"github.com/Decentr-net/demeter/internal/entities"
	"github.com/Decentr-net/demeter/internal/level"
	"github.com/Decentr-net/demeter/internal/service"
	"github.com/Decentr-net/demeter/internal/storage"
)

// baseXP is the daily reward for the first qualifying post of a day.
const baseXP = 300

// eggChance is the probability of an egg drop for an eligible profile.
const eggChance = 0.3

// Rand is a source of randomness for egg rolls and species picks.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// service ...
type srv struct {
	s   storage.Storage
	r   Rand
	loc *time.Location
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, r Rand, loc *time.Location) service.Service {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
	}
	if loc == nil {
		loc = time.Local
	}

	return srv{
		s:   s,
		r:   r,
		loc: loc,
		now: time.Now,
	}
}

func (s srv) CreatePost(ctx context.Context, p *entities.Post) (*entities.RewardResult, error) {
	var res *entities.RewardResult

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreateProfile(ctx, &entities.Profile{
			Owner:     p.Owner,
			CreatedAt: p.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		if err := tx.CreatePost(ctx, p); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		r, err := s.grant(ctx, tx, p.Owner, p.CreatedAt, service.GrantOptions{})
		if err != nil {
			return err
		}
		res = r

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to create post on storage side: %w", err)
	}

	return res, nil
}

func (s srv) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	posts, err := s.s.ListPosts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts from storage: %w", err)
	}

	return posts, nil
}

func (s srv) SetReaction(ctx context.Context, postOwner, postUUID string, mood uint8,
	timestamp time.Time, reactedBy string) error {
	if err := s.s.SetReaction(ctx, postOwner, postUUID, mood, timestamp, reactedBy); err != nil {
		return fmt.Errorf("failed to set reaction on storage side: %w", err)
	}

	return nil
}

func (s srv) GetProfile(ctx context.Context, owner string) (*entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile from storage: %w", err)
	}

	return p, nil
}

func (s srv) GetUnlockedImages(ctx context.Context, owner string) ([]string, error) {
	images, err := s.s.GetUnlockedImages(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get unlocked images from storage: %w", err)
	}

	return images, nil
}

func (s srv) SetUsageLimits(ctx context.Context, owner string, l entities.UsageLimits) error {
	if err := s.s.SetUsageLimits(ctx, owner, l); err != nil {
		return fmt.Errorf("failed to set usage limits on storage side: %w", err)
	}

	return nil
}

func (s srv) GrantPostReward(ctx context.Context, owner string, now time.Time,
	opts service.GrantOptions) (*entities.RewardResult, error) {
	var res *entities.RewardResult

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		r, err := s.grant(ctx, tx, owner, now, opts)
		if err != nil {
			return err
		}
		res = r

		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to grant reward: %w", err)
	}

	return res, nil
}

// grant evaluates a single reward within the caller's transaction. The profile
// row is locked for update by GetProfile, so concurrent evaluations for the
// same owner serialize instead of losing xp.
func (s srv) grant(ctx context.Context, tx storage.Storage, owner string, now time.Time,
	opts service.GrantOptions) (*entities.RewardResult, error) {
	var res entities.RewardResult

	p, err := tx.GetProfile(ctx, owner)
	if err != nil {
		// nothing to reward, not a failure
		if errors.Is(err, storage.ErrNotFound) {
			return &res, nil
		}

		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	multiplier := opts.XPMultiplier
	if multiplier == 0 {
		multiplier = 1
	}

	// at most one full grant per calendar day
	if !daycmp.SameDay(p.LastDailyPost, now, s.loc) || opts.Force {
		res.XPGained = baseXP * multiplier
	}

	// stamped on every evaluation, so a later call today sees the day as spent
	if err := tx.SetLastDailyPost(ctx, owner, now); err != nil {
		return nil, fmt.Errorf("failed to set last daily post: %w", err)
	}

	if p.Pet != nil {
		res.NewLevel = p.Pet.Level

		if p.Pet.Level < entities.MaxPetLevel {
			newXP := p.Pet.XP + res.XPGained

			newLevel := level.FromXP(newXP)
			if newLevel > entities.MaxPetLevel {
				newLevel = entities.MaxPetLevel
			}

			res.LeveledUp = res.XPGained > 0 && newLevel > p.Pet.Level
			res.NewLevel = newLevel

			if err := tx.SetPetProgress(ctx, owner, newXP, newLevel); err != nil {
				return nil, fmt.Errorf("failed to set pet progress: %w", err)
			}

			image := fmt.Sprintf("%s_%d", p.Pet.Species, level.Stage(newLevel))
			if err := tx.UnlockImage(ctx, owner, image); err != nil {
				return nil, fmt.Errorf("failed to unlock image: %w", err)
			}
			res.UnlockedImage = image
		}
	}

	// an egg can drop only when there is nothing to grow
	if p.Pet == nil || p.Pet.Retired() {
		if s.r.Float64() < eggChance || opts.Force {
			res.EggFound = true
			res.CandidateSpecies = entities.Catalog[s.r.Intn(len(entities.Catalog))]
		}
	}

	return &res, nil
}

func (s srv) AdoptPet(ctx context.Context, owner string, species entities.Species) (*entities.Pet, error) {
	if !entities.IsKnownSpecies(species) {
		return nil, service.ErrUnknownSpecies
	}

	var pet *entities.Pet

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetProfile(ctx, owner)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}

		if p.Pet != nil && !p.Pet.Retired() {
			return service.ErrPetNotRetired
		}

		pet = &entities.Pet{
			Species:   species,
			Level:     1,
			XP:        0,
			StartDate: s.now(),
		}

		if err := tx.SetPet(ctx, owner, pet); err != nil {
			return fmt.Errorf("failed to set pet: %w", err)
		}

		if err := tx.UnlockImage(ctx, owner, fmt.Sprintf("%s_0", species)); err != nil {
			return fmt.Errorf("failed to unlock image: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, service.ErrPetNotRetired) || errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to adopt pet: %w", err)
	}

	return pet, nil
}

func (s srv) ReleasePet(ctx context.Context, owner string) error {
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetProfile(ctx, owner)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}

		if p.Pet == nil {
			return service.ErrNoPet
		}

		// unlocked images are permanent history, release keeps them
		if err := tx.SetPet(ctx, owner, nil); err != nil {
			return fmt.Errorf("failed to clear pet: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, service.ErrNoPet) || errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to release pet: %w", err)
	}

	return nil
}

func (s srv) ProcessActivities(ctx context.Context, limit uint16) (int, error) {
	var processed int

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		cursor, err := tx.GetCursor(ctx)
		if err != nil {
			return fmt.Errorf("failed to get cursor: %w", err)
		}

		activities, err := tx.ListActivities(ctx, cursor, limit)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		for _, a := range activities {
			if _, err := s.grant(ctx, tx, a.Owner, a.CreatedAt, service.GrantOptions{}); err != nil {
				return fmt.Errorf("failed to grant reward for activity %d: %w", a.Seq, err)
			}

			cursor = a.Seq
		}

		if len(activities) > 0 {
			if err := tx.SetCursor(ctx, cursor); err != nil {
				return fmt.Errorf("failed to set cursor: %w", err)
			}
		}

		processed = len(activities)

		return nil
	}); err != nil {
		return 0, err
	}

	return processed, nil
}

func (s srv) GetCursor(ctx context.Context) (uint64, error) {
	c, err := s.s.GetCursor(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get cursor from storage: %w", err)
	}

	return c, nil
}
