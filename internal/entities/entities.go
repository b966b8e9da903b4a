// Package entities contains main entities of service.
package entities

import (
	"time"
)

// MaxPetLevel is the level at which a pet stops progressing.
const MaxPetLevel = 70

// Species ...
type Species string

// Catalog is the fixed set of adoptable species.
// nolint:gochecknoglobals
var Catalog = []Species{"pet01", "pet02", "pet03", "pet04", "pet05"}

// IsKnownSpecies reports whether s belongs to the catalog.
func IsKnownSpecies(s Species) bool {
	for _, v := range Catalog {
		if v == s {
			return true
		}
	}

	return false
}

// Pet is a live pet instance owned by a profile. Absence means no pet adopted.
type Pet struct {
	Species   Species
	Level     uint8
	XP        uint64
	StartDate time.Time
}

// Retired reports whether the pet reached max level and a new adoption is allowed.
func (p Pet) Retired() bool {
	return p.Level >= MaxPetLevel
}

// UsageLimits holds parental play-time settings. Zero minutes means unlimited.
type UsageLimits struct {
	SessionMinutes uint32
	DailyMinutes   uint32

	BlackoutEnabled bool
	BlackoutStart   string // HH:MM
	BlackoutEnd     string // HH:MM
}

// Profile ...
type Profile struct {
	Owner         string
	Pet           *Pet
	LastDailyPost time.Time
	Limits        UsageLimits
	CreatedAt     time.Time
}

// Post is a mood post.
type Post struct {
	UUID      string
	Owner     string
	Mood      uint8
	Text      string
	CreatedAt time.Time
}

// RewardResult is an outcome of a single reward evaluation.
type RewardResult struct {
	XPGained         uint64
	LeveledUp        bool
	NewLevel         uint8
	EggFound         bool
	CandidateSpecies Species
	UnlockedImage    string
}

// Activity is a post event synced from the hosted backend feed.
type Activity struct {
	Seq       uint64
	Owner     string
	PostUUID  string
	CreatedAt time.Time
}
