// Package consumer contains interface of activities consumer.
package consumer

import (
	"context"

	"github.com/Decentr-net/go-api/health"
)

//go:generate mockgen -destination=./mock/consumer.go -package=consumer -source=consumer.go

// Consumer consumes post activities synced from the hosted backend.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
