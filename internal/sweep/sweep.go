package sweep

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// StepFunc is invoked for every cursor position of a sweep.
type StepFunc func(ctx context.Context, cursor time.Time) error

// Options tune sweep behaviour.
type Options struct {
	Interval     time.Duration
	AlignToStart bool
}

// Sweeper moves a cursor across a time range at a fixed interval,
// replaying the pointer-move events of a chart.
type Sweeper struct {
	opts   Options
	logger zerolog.Logger
}

// New constructs a Sweeper instance.
func New(opts Options, logger zerolog.Logger) *Sweeper {
	if opts.Interval <= 0 {
		panic("sweep interval must be positive")
	}
	return &Sweeper{opts: opts, logger: logger.With().Str("component", "sweep").Logger()}
}

// Run invokes step for each cursor in [from, to] and reports how many steps
// ran. Failed steps are logged and the sweep continues; it stops early only
// when ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, from, to time.Time, step StepFunc) (int, error) {
	steps := 0
	for cursor := s.firstCursor(from); !cursor.After(to); cursor = cursor.Add(s.opts.Interval) {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		s.logger.Debug().Time("cursor", cursor).Msg("sweep step")
		if err := step(ctx, cursor); err != nil {
			s.logger.Error().Err(err).Time("cursor", cursor).Msg("sweep step failed")
		}
		steps++
	}
	return steps, nil
}

func (s *Sweeper) firstCursor(from time.Time) time.Time {
	if !s.opts.AlignToStart {
		return from
	}
	cursor := from.Truncate(s.opts.Interval)
	if cursor.Before(from) {
		cursor = cursor.Add(s.opts.Interval)
	}
	return cursor
}
