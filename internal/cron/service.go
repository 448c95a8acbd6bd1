// Package cron runs config-declared schedules that invoke tools on a timer.
//
// A schedule names a preset; when it fires, the preset's tool is invoked with
// the preset's parameters and the result flows through the same I/O side
// channel as any other invocation.
package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/firegate-ai/firegate/internal/config"
)

// RunFunc executes the named preset and returns the tool output.
type RunFunc func(ctx context.Context, presetName string) (string, error)

// Service arms the configured schedules and fires them until stopped.
type Service struct {
	schedules []config.ScheduleConfig
	run       RunFunc
	cron      *robfigcron.Cron
	armed     int
}

func NewService(schedules []config.ScheduleConfig, run RunFunc) *Service {
	return &Service{
		schedules: schedules,
		run:       run,
		cron:      robfigcron.New(robfigcron.WithSeconds()),
	}
}

// Start arms all enabled schedules and blocks until ctx is cancelled.
// A schedule that fails to arm is skipped with a warning; one bad entry must
// not take down the rest.
func (s *Service) Start(ctx context.Context) error {
	for _, sc := range s.schedules {
		if !sc.Enabled {
			continue
		}
		spec, err := cronSpec(sc)
		if err != nil {
			slog.Warn("cron: skipping schedule", "name", sc.Name, "err", err)
			continue
		}
		sc := sc
		if _, err := s.cron.AddFunc(spec, func() { s.fire(ctx, sc) }); err != nil {
			slog.Warn("cron: bad schedule spec", "name", sc.Name, "spec", spec, "err", err)
			continue
		}
		s.armed++
		slog.Info("cron: armed", "name", sc.Name, "spec", spec, "preset", sc.Preset)
	}

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return ctx.Err()
}

// Armed returns the number of schedules successfully armed by Start.
func (s *Service) Armed() int { return s.armed }

func (s *Service) fire(ctx context.Context, sc config.ScheduleConfig) {
	out, err := s.run(ctx, sc.Preset)
	if err != nil {
		slog.Error("cron: run failed", "name", sc.Name, "preset", sc.Preset, "err", err)
		return
	}
	slog.Info("cron: run complete", "name", sc.Name, "preset", sc.Preset, "bytes", len(out))
}

// cronSpec converts a schedule to a robfig spec string: either the cron
// expression verbatim or "@every <duration>".
func cronSpec(sc config.ScheduleConfig) (string, error) {
	switch {
	case sc.Expr != "" && sc.Every != "":
		return "", fmt.Errorf("schedule %q sets both expr and every", sc.Name)
	case sc.Expr != "":
		return sc.Expr, nil
	case sc.Every != "":
		if _, err := time.ParseDuration(sc.Every); err != nil {
			return "", fmt.Errorf("schedule %q: bad every %q: %w", sc.Name, sc.Every, err)
		}
		return "@every " + sc.Every, nil
	}
	return "", fmt.Errorf("schedule %q sets neither expr nor every", sc.Name)
}
