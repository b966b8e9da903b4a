// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/demeter/internal/entities"
	"github.com/Decentr-net/demeter/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const foreignKeyViolation = "23503"
const uniqueViolation = "23505"

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	Owner string `db:"owner"`

	PetSpecies   sql.NullString `db:"pet_species"`
	PetLevel     uint8          `db:"pet_level"`
	PetXP        uint64         `db:"pet_xp"`
	PetStartDate sql.NullTime   `db:"pet_start_date"`

	LastDailyPost time.Time `db:"last_daily_post"`

	SessionMinutes  uint32 `db:"session_minutes"`
	DailyMinutes    uint32 `db:"daily_minutes"`
	BlackoutEnabled bool   `db:"blackout_enabled"`
	BlackoutStart   string `db:"blackout_start"`
	BlackoutEnd     string `db:"blackout_end"`

	CreatedAt time.Time `db:"created_at"`
}

type postDTO struct {
	UUID      string    `db:"uuid"`
	Owner     string    `db:"owner"`
	Mood      uint8     `db:"mood"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type activityDTO struct {
	Seq       uint64    `db:"seq"`
	Owner     string    `db:"owner"`
	PostUUID  string    `db:"post_uuid"`
	CreatedAt time.Time `db:"created_at"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) inTx() bool {
	_, ok := s.ext.(*sqlx.Tx)
	return ok
}

func (s pg) GetCursor(ctx context.Context) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT seq FROM feed_cursor FOR KEY SHARE`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) SetCursor(ctx context.Context, seq uint64) error {
	if _, err := s.ext.ExecContext(ctx, `UPDATE feed_cursor SET seq=$1`, seq); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, owner string) (*entities.Profile, error) {
	query := `
		SELECT owner, pet_species, pet_level, pet_xp, pet_start_date, last_daily_post,
			session_minutes, daily_minutes, blackout_enabled, blackout_start, blackout_end, created_at
		FROM profile
		WHERE owner = $1
	`

	// reward grants run in a tx, the profile row has to be locked until commit
	if s.inTx() {
		query += ` FOR UPDATE`
	}

	var p profileDTO
	if err := sqlx.GetContext(ctx, s.ext, &p, query, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := entities.Profile{
		Owner:         p.Owner,
		LastDailyPost: p.LastDailyPost,
		Limits: entities.UsageLimits{
			SessionMinutes:  p.SessionMinutes,
			DailyMinutes:    p.DailyMinutes,
			BlackoutEnabled: p.BlackoutEnabled,
			BlackoutStart:   p.BlackoutStart,
			BlackoutEnd:     p.BlackoutEnd,
		},
		CreatedAt: p.CreatedAt,
	}

	if p.PetSpecies.Valid {
		out.Pet = &entities.Pet{
			Species:   entities.Species(p.PetSpecies.String),
			Level:     p.PetLevel,
			XP:        p.PetXP,
			StartDate: p.PetStartDate.Time,
		}
	}

	return &out, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO profile(owner, last_daily_post, created_at) VALUES($1, $2, $3)
			ON CONFLICT(owner) DO NOTHING
		`, p.Owner, p.LastDailyPost.UTC(), p.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) SetPet(ctx context.Context, owner string, pet *entities.Pet) error {
	var (
		species   sql.NullString
		startDate sql.NullTime
		lvl       uint8
		xp        uint64
	)

	if pet != nil {
		species = sql.NullString{String: string(pet.Species), Valid: true}
		startDate = sql.NullTime{Time: pet.StartDate.UTC(), Valid: true}
		lvl, xp = pet.Level, pet.XP
	}

	res, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET pet_species=$2, pet_level=$3, pet_xp=$4, pet_start_date=$5 WHERE owner=$1`,
		owner, species, lvl, xp, startDate,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetPetProgress(ctx context.Context, owner string, xp uint64, lvl uint8) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET pet_xp=$2, pet_level=$3 WHERE owner=$1 AND pet_species IS NOT NULL`,
		owner, xp, lvl,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetLastDailyPost(ctx context.Context, owner string, timestamp time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET last_daily_post=$2 WHERE owner=$1`,
		owner, timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetUsageLimits(ctx context.Context, owner string, l entities.UsageLimits) error {
	res, err := s.ext.ExecContext(ctx,
		`
			UPDATE profile SET session_minutes=$2, daily_minutes=$3,
				blackout_enabled=$4, blackout_start=$5, blackout_end=$6
			WHERE owner=$1
		`,
		owner, l.SessionMinutes, l.DailyMinutes, l.BlackoutEnabled, l.BlackoutStart, l.BlackoutEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) UnlockImage(ctx context.Context, owner, image string) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO unlocked_image(owner, image) VALUES($1, $2) ON CONFLICT DO NOTHING
		`, owner, image,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetUnlockedImages(ctx context.Context, owner string) ([]string, error) {
	out := []string{}

	if err := sqlx.SelectContext(ctx, s.ext, &out,
		`SELECT image FROM unlocked_image WHERE owner=$1 ORDER BY image`, owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		UUID:      p.UUID,
		Owner:     p.Owner,
		Mood:      p.Mood,
		Text:      p.Text,
		CreatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(owner, uuid, mood, text, created_at)
			VALUES(:owner, :uuid, :mood, :text, :created_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case foreignKeyViolation:
				return storage.ErrNotFound
			case uniqueViolation:
				return storage.ErrAlreadyExists
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `SELECT owner, uuid, mood, text, created_at FROM post WHERE 1=1`
	args := make([]interface{}, 0, 3)

	if params.Owner != nil {
		args = append(args, *params.Owner)
		query += fmt.Sprintf(` AND owner=$%d`, len(args))
	}

	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < (SELECT created_at FROM post WHERE uuid=$%d)`, len(args))
	}

	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	var p []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &p, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(p))
	for i, v := range p {
		out[i] = &entities.Post{
			UUID:      v.UUID,
			Owner:     v.Owner,
			Mood:      v.Mood,
			Text:      v.Text,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) SetReaction(ctx context.Context, postOwner, postUUID string, mood uint8,
	timestamp time.Time, reactedBy string) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO reaction(post_owner, post_uuid, reacted_by, mood, reacted_at)
				VALUES($1, $2, $3, $4, $5)
			ON CONFLICT(post_owner, post_uuid, reacted_by) DO UPDATE SET
				mood=excluded.mood, reacted_at=excluded.reacted_at`,
		postOwner, postUUID, reactedBy, mood, timestamp.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListActivities(ctx context.Context, after uint64, limit uint16) ([]*entities.Activity, error) {
	var a []*activityDTO

	if err := sqlx.SelectContext(ctx, s.ext, &a,
		`SELECT seq, owner, post_uuid, created_at FROM activity WHERE seq > $1 ORDER BY seq LIMIT $2`,
		after, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Activity, len(a))
	for i, v := range a {
		out[i] = &entities.Activity{
			Seq:       v.Seq,
			Owner:     v.Owner,
			PostUUID:  v.PostUUID,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}
