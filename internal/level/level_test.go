package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromXP(t *testing.T) {
	tt := []struct {
		xp    uint64
		level uint8
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{7, 2},
		{8, 3},
		{50, 6},
		{350, 14},
		{9800, 71},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.level, FromXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestFromXP_Monotonic(t *testing.T) {
	prev := FromXP(0)
	for xp := uint64(1); xp < 20000; xp++ {
		cur := FromXP(xp)
		require.GreaterOrEqual(t, cur, prev, "xp=%d", xp)
		prev = cur
	}
}

func TestThreshold_PairedWithFromXP(t *testing.T) {
	for l := uint8(1); l < 100; l++ {
		th := Threshold(l)

		require.GreaterOrEqual(t, FromXP(th), l+1, "level=%d", l)
		require.LessOrEqual(t, FromXP(th-1), l, "level=%d", l)
	}
}

func TestStage(t *testing.T) {
	tt := []struct {
		level uint8
		stage uint8
	}{
		{1, 0},
		{9, 0},
		{10, 1},
		{14, 1},
		{69, 6},
		{70, 7},
		{255, 7},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.stage, Stage(tc.level), "level=%d", tc.level)
	}
}
