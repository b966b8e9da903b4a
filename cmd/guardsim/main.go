// Command guardsim runs the play-time guard against a local counter store.
// It emulates the embedded mini-game page: settings come in the same form the
// page receives them (query string plus a host attribute), the session runs
// until it is blocked or interrupted, and warnings are printed as they fire.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/demeter/internal/daycmp"
	"github.com/Decentr-net/demeter/internal/guard"
	"github.com/Decentr-net/demeter/internal/guard/sqlite"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Query    string `long:"query" env:"QUERY" default:"" description:"activity url query string, e.g. timeLimit=15&totalLimit=60"`
	HostAttr string `long:"host_attr" env:"HOST_ATTR" default:"" description:"session limit attribute as set by the host page"`

	BlackoutStart string `long:"blackout.start" env:"BLACKOUT_START" default:"" description:"blackout window start, HH:MM"`
	BlackoutEnd   string `long:"blackout.end" env:"BLACKOUT_END" default:"" description:"blackout window end, HH:MM"`

	DB string `long:"db" env:"DB" default:"guardsim.db" description:"path to the counter database"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

type logSink struct{}

func (logSink) Warn(w guard.Warning) {
	logrus.WithField("reason", w.Reason).WithField("auto_dismiss", w.AutoDismiss).Warn("warning fired")
}

func (logSink) Blocked(r guard.Reason) {
	logrus.WithField("reason", r).Info("blocked")
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "guardsim"
	parser.LongDescription = "guardsim"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	query, err := url.ParseQuery(opts.Query)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse query")
	}

	cfg := guard.ResolveConfig(query, opts.HostAttr)

	if opts.BlackoutStart != "" || opts.BlackoutEnd != "" {
		w, err := guard.ParseWindow(opts.BlackoutStart, opts.BlackoutEnd)
		if err != nil {
			logrus.WithError(err).Fatal("failed to parse blackout window")
		}
		cfg.Blackout = &w
	}

	store, err := sqlite.Open(opts.DB)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open counter store")
	}
	defer store.Close() // nolint:errcheck

	g := guard.New(cfg, store, logSink{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()
	}()

	logrus.Infof("session limit: %d min, daily limit: %d min", cfg.SessionLimitMinutes, cfg.TotalLimitMinutes)

	if err := g.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("guard failed")
	}

	used, err := store.Get(context.Background(), daycmp.Key(time.Now(), nil))
	if err != nil {
		logrus.WithError(err).Fatal("failed to read daily usage")
	}

	fmt.Printf("session over, blocked=%t, used today: %d min\n", g.IsBlocked(), used)
}
