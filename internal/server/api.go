package server

import (
	"github.com/Decentr-net/demeter/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20
const maxMood = 9
const maxTextLength = 512

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Post ...
type Post struct {
	UUID      string `json:"uuid"`
	Owner     string `json:"owner"`
	Mood      uint8  `json:"mood"`
	Text      string `json:"text"`
	CreatedAt uint64 `json:"created_at"`
}

// Pet ...
type Pet struct {
	Species   string `json:"species"`
	Level     uint8  `json:"level"`
	XP        uint64 `json:"xp"`
	NextLevel uint64 `json:"next_level_xp"`
	Stage     uint8  `json:"stage"`
	StartDate uint64 `json:"start_date"`
}

// UsageLimits ...
type UsageLimits struct {
	SessionMinutes  uint32 `json:"session_minutes"`
	DailyMinutes    uint32 `json:"daily_minutes"`
	BlackoutEnabled bool   `json:"blackout_enabled"`
	BlackoutStart   string `json:"blackout_start"`
	BlackoutEnd     string `json:"blackout_end"`
}

// Reward ...
type Reward struct {
	XPGained         uint64 `json:"xp_gained"`
	LeveledUp        bool   `json:"leveled_up"`
	NewLevel         uint8  `json:"new_level"`
	EggFound         bool   `json:"egg_found"`
	CandidateSpecies string `json:"candidate_species,omitempty"`
	UnlockedImage    string `json:"unlocked_image,omitempty"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	UUID  string `json:"uuid"`
	Owner string `json:"owner"`
	Mood  uint8  `json:"mood"`
	Text  string `json:"text"`
}

// CreatePostResponse ...
// swagger:model
type CreatePostResponse struct {
	Post   Post   `json:"post"`
	Reward Reward `json:"reward"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

// SetReactionRequest ...
type SetReactionRequest struct {
	Mood      uint8  `json:"mood"`
	ReactedBy string `json:"reacted_by"`
}

// ProfileResponse ...
// swagger:model
type ProfileResponse struct {
	Owner          string      `json:"owner"`
	Pet            *Pet        `json:"pet,omitempty"`
	UnlockedImages []string    `json:"unlocked_images"`
	Limits         UsageLimits `json:"limits"`
	CreatedAt      uint64      `json:"created_at"`
}

// AdoptPetRequest ...
type AdoptPetRequest struct {
	Species string `json:"species"`
}

// SpeciesResponse ...
// swagger:model
type SpeciesResponse struct {
	Species []string `json:"species"`
}

func toAPIPost(p *entities.Post) *Post {
	return &Post{
		UUID:      p.UUID,
		Owner:     p.Owner,
		Mood:      p.Mood,
		Text:      p.Text,
		CreatedAt: uint64(p.CreatedAt.Unix()),
	}
}

func toAPIReward(r *entities.RewardResult) Reward {
	return Reward{
		XPGained:         r.XPGained,
		LeveledUp:        r.LeveledUp,
		NewLevel:         r.NewLevel,
		EggFound:         r.EggFound,
		CandidateSpecies: string(r.CandidateSpecies),
		UnlockedImage:    r.UnlockedImage,
	}
}

func toAPILimits(l entities.UsageLimits) UsageLimits {
	return UsageLimits{
		SessionMinutes:  l.SessionMinutes,
		DailyMinutes:    l.DailyMinutes,
		BlackoutEnabled: l.BlackoutEnabled,
		BlackoutStart:   l.BlackoutStart,
		BlackoutEnd:     l.BlackoutEnd,
	}
}
