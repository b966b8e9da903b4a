package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/demeter/internal/entities"
	"github.com/Decentr-net/demeter/internal/service"
	"github.com/Decentr-net/demeter/internal/storage"
	storagemock "github.com/Decentr-net/demeter/internal/storage/mock"
)

var errTest = errors.New("test")

// fixedRand always returns the configured draw and pick.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(_ int) int   { return r.n }

func newTestSrv(s storage.Storage, r Rand) srv {
	return srv{
		s:   s,
		r:   r,
		loc: time.UTC,
		now: func() time.Time { return time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC) },
	}
}

func expectInTx(s *storagemock.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, f func(s storage.Storage) error) error {
			return f(s)
		})
}

func TestSrv_GrantPostReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet01", Level: 5, XP: 50},
		LastDailyPost: yesterday,
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)
	s.EXPECT().SetPetProgress(gomock.Any(), "owner", uint64(350), uint8(14)).Return(nil)
	s.EXPECT().UnlockImage(gomock.Any(), "owner", "pet01_1").Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, 300, res.XPGained)
	assert.True(t, res.LeveledUp)
	assert.EqualValues(t, 14, res.NewLevel)
	assert.False(t, res.EggFound)
	assert.Equal(t, "pet01_1", res.UnlockedImage)
}

func TestSrv_GrantPostReward_SameDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	now := time.Date(2021, 3, 4, 18, 0, 0, 0, time.UTC)
	morning := time.Date(2021, 3, 4, 8, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet01", Level: 14, XP: 350},
		LastDailyPost: morning,
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)
	// the evaluation still runs, it just grants nothing
	s.EXPECT().SetPetProgress(gomock.Any(), "owner", uint64(350), uint8(14)).Return(nil)
	s.EXPECT().UnlockImage(gomock.Any(), "owner", "pet01_1").Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, 0, res.XPGained)
	assert.False(t, res.LeveledUp)
	assert.EqualValues(t, 14, res.NewLevel)
}

func TestSrv_GrantPostReward_Forced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1, n: 2})

	now := time.Date(2021, 3, 4, 18, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		LastDailyPost: now.Add(-time.Hour),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{
		Force:        true,
		XPMultiplier: 2,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 600, res.XPGained)
	// forced grant guarantees the egg for an eligible profile
	assert.True(t, res.EggFound)
	assert.Equal(t, entities.Species("pet03"), res.CandidateSpecies)
}

func TestSrv_GrantPostReward_LevelClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet02", Level: 69, XP: 9643},
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)
	s.EXPECT().SetPetProgress(gomock.Any(), "owner", uint64(9943), uint8(70)).Return(nil)
	s.EXPECT().UnlockImage(gomock.Any(), "owner", "pet02_7").Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.True(t, res.LeveledUp)
	assert.EqualValues(t, 70, res.NewLevel)
}

func TestSrv_GrantPostReward_MaxedPet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 0.1, n: 0})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	expectInTx(s)
	// maxed pet: no progress writes at all, but the egg roll happens
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet02", Level: 70, XP: 10000},
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, 300, res.XPGained)
	assert.False(t, res.LeveledUp)
	assert.EqualValues(t, 70, res.NewLevel)
	assert.True(t, res.EggFound)
	assert.Equal(t, entities.Species("pet01"), res.CandidateSpecies)
}

func TestSrv_GrantPostReward_NoEggBelowMaxLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	// the draw would always succeed, eligibility must gate it anyway
	srv := newTestSrv(s, fixedRand{f: 0})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet05", Level: 50, XP: 4900},
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)
	s.EXPECT().SetPetProgress(gomock.Any(), "owner", uint64(5200), uint8(51)).Return(nil)
	s.EXPECT().UnlockImage(gomock.Any(), "owner", "pet05_5").Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.False(t, res.EggFound)
}

func TestSrv_GrantPostReward_NoPet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 0.29, n: 4})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)

	res, err := srv.GrantPostReward(context.Background(), "owner", now, service.GrantOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, 300, res.XPGained)
	assert.True(t, res.EggFound)
	assert.Equal(t, entities.Species("pet05"), res.CandidateSpecies)
}

func TestSrv_GrantPostReward_ProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(nil, storage.ErrNotFound)

	res, err := srv.GrantPostReward(context.Background(), "owner", time.Now(), service.GrantOptions{})
	require.NoError(t, err)

	assert.Equal(t, entities.RewardResult{}, *res)
}

func TestSrv_GrantPostReward_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(nil, errTest)

	_, err := srv.GrantPostReward(context.Background(), "owner", time.Now(), service.GrantOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTest))
}

func TestSrv_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	post := &entities.Post{
		UUID:      "uuid",
		Owner:     "owner",
		Mood:      3,
		Text:      "text",
		CreatedAt: now,
	}

	expectInTx(s)
	s.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CreatePost(gomock.Any(), post).Return(nil)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		Pet:           &entities.Pet{Species: "pet01", Level: 1, XP: 0},
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)
	s.EXPECT().SetPetProgress(gomock.Any(), "owner", uint64(300), uint8(13)).Return(nil)
	s.EXPECT().UnlockImage(gomock.Any(), "owner", "pet01_1").Return(nil)

	res, err := srv.CreatePost(context.Background(), post)
	require.NoError(t, err)

	assert.EqualValues(t, 300, res.XPGained)
	assert.True(t, res.LeveledUp)
	assert.EqualValues(t, 13, res.NewLevel)
}

func TestSrv_AdoptPet(t *testing.T) {
	tt := []struct {
		name    string
		pet     *entities.Pet
		species entities.Species
		err     error
	}{
		{
			name:    "no pet",
			species: "pet02",
		},
		{
			name:    "retired pet replaced",
			pet:     &entities.Pet{Species: "pet01", Level: 70, XP: 10000},
			species: "pet03",
		},
		{
			name:    "young pet",
			pet:     &entities.Pet{Species: "pet01", Level: 5, XP: 50},
			species: "pet03",
			err:     service.ErrPetNotRetired,
		},
		{
			name:    "unknown species",
			species: "dragon",
			err:     service.ErrUnknownSpecies,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := storagemock.NewMockStorage(ctrl)
			srv := newTestSrv(s, fixedRand{f: 1})

			if tc.err != service.ErrUnknownSpecies {
				expectInTx(s)
				s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
					Owner: "owner",
					Pet:   tc.pet,
				}, nil)

				if tc.err == nil {
					s.EXPECT().SetPet(gomock.Any(), "owner", gomock.Any()).DoAndReturn(
						func(_ context.Context, _ string, pet *entities.Pet) error {
							assert.Equal(t, tc.species, pet.Species)
							assert.EqualValues(t, 1, pet.Level)
							assert.EqualValues(t, 0, pet.XP)
							return nil
						})
					s.EXPECT().UnlockImage(gomock.Any(), "owner", string(tc.species)+"_0").Return(nil)
				}
			}

			pet, err := srv.AdoptPet(context.Background(), "owner", tc.species)

			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.species, pet.Species)
		})
	}
}

func TestSrv_ReleasePet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner: "owner",
		Pet:   &entities.Pet{Species: "pet01", Level: 5, XP: 50},
	}, nil)
	s.EXPECT().SetPet(gomock.Any(), "owner", nil).Return(nil)

	require.NoError(t, srv.ReleasePet(context.Background(), "owner"))
}

func TestSrv_ReleasePet_NoPet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{Owner: "owner"}, nil)

	assert.True(t, errors.Is(srv.ReleasePet(context.Background(), "owner"), service.ErrNoPet))
}

func TestSrv_ProcessActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	now := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	expectInTx(s)
	s.EXPECT().GetCursor(gomock.Any()).Return(uint64(10), nil)
	s.EXPECT().ListActivities(gomock.Any(), uint64(10), uint16(100)).Return([]*entities.Activity{
		{Seq: 11, Owner: "owner", PostUUID: "uuid", CreatedAt: now},
		{Seq: 12, Owner: "owner2", PostUUID: "uuid2", CreatedAt: now},
	}, nil)

	s.EXPECT().GetProfile(gomock.Any(), "owner").Return(&entities.Profile{
		Owner:         "owner",
		LastDailyPost: now.AddDate(0, 0, -1),
	}, nil)
	s.EXPECT().SetLastDailyPost(gomock.Any(), "owner", now).Return(nil)

	// second owner is unknown, the activity is skipped without failing the batch
	s.EXPECT().GetProfile(gomock.Any(), "owner2").Return(nil, storage.ErrNotFound)

	s.EXPECT().SetCursor(gomock.Any(), uint64(12)).Return(nil)

	n, err := srv.ProcessActivities(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSrv_ProcessActivities_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	srv := newTestSrv(s, fixedRand{f: 1})

	expectInTx(s)
	s.EXPECT().GetCursor(gomock.Any()).Return(uint64(10), nil)
	s.EXPECT().ListActivities(gomock.Any(), uint64(10), uint16(100)).Return(nil, nil)

	n, err := srv.ProcessActivities(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, n)
}
