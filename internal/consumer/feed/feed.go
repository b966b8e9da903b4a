// Package feed is implementation of consumer interface. It drains the
// activity feed filled by the hosted backend sync and grants post rewards,
// advancing a persistent cursor so every activity is rewarded exactly once.
package feed

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/demeter/internal/consumer"
	"github.com/Decentr-net/demeter/internal/service"
)

var log = logrus.WithField("package", "feed")

type feed struct {
	s service.Service

	pollInterval  time.Duration
	retryInterval time.Duration
	batchSize     uint16
}

// New creates new instance of feed consumer.
func New(s service.Service, pollInterval, retryInterval time.Duration, batchSize uint16) consumer.Consumer {
	return feed{
		s:             s,
		pollInterval:  pollInterval,
		retryInterval: retryInterval,
		batchSize:     batchSize,
	}
}

func (f feed) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := f.s.ProcessActivities(ctx, f.batchSize)
		if err != nil {
			log.WithError(err).Error("failed to process activities")

			if !sleep(ctx, f.retryInterval) {
				return nil
			}
			continue
		}

		if n > 0 {
			log.WithField("count", n).Debug("activities processed")
			continue
		}

		if !sleep(ctx, f.pollInterval) {
			return nil
		}
	}
}

// Ping returns the feed cursor position.
func (f feed) Ping(ctx context.Context) (interface{}, error) {
	cursor, err := f.s.GetCursor(ctx)
	if err != nil {
		return nil, err
	}

	return struct {
		Cursor uint64 `json:"cursor"`
	}{Cursor: cursor}, nil
}

func (f feed) Name() string {
	return "feed"
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
