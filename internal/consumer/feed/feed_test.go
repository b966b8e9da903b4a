package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servicemock "github.com/Decentr-net/demeter/internal/service/mock"
)

var errTest = errors.New("test")

func TestFeed_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := servicemock.NewMockService(ctrl)
	f := New(s, time.Nanosecond, time.Nanosecond, 100)

	ctx, cancel := context.WithCancel(context.Background())

	s.EXPECT().ProcessActivities(gomock.Any(), uint16(100)).Return(2, nil)
	s.EXPECT().ProcessActivities(gomock.Any(), uint16(100)).DoAndReturn(
		func(_ context.Context, _ uint16) (int, error) {
			cancel()
			return 0, nil
		})

	require.NoError(t, f.Run(ctx))
}

func TestFeed_Run_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := servicemock.NewMockService(ctrl)
	f := New(s, time.Nanosecond, time.Nanosecond, 100)

	ctx, cancel := context.WithCancel(context.Background())

	// an error is retried, not propagated
	s.EXPECT().ProcessActivities(gomock.Any(), uint16(100)).Return(0, errTest)
	s.EXPECT().ProcessActivities(gomock.Any(), uint16(100)).DoAndReturn(
		func(_ context.Context, _ uint16) (int, error) {
			cancel()
			return 0, nil
		})

	require.NoError(t, f.Run(ctx))
}

func TestFeed_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := servicemock.NewMockService(ctrl)
	f := New(s, time.Nanosecond, time.Nanosecond, 100)

	s.EXPECT().GetCursor(gomock.Any()).Return(uint64(42), nil)

	meta, err := f.Ping(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, meta)

	assert.Equal(t, "feed", f.Name())
}
