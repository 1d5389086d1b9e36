package notifications

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Pass func(ctx context.Context) error

// Loop runs a pass, sleeps for the interval and repeats until the context is
// cancelled. Pass errors and panics are logged and do not stop the loop.
type Loop struct {
	name     string
	interval time.Duration
	pass     Pass
	logger   *zap.SugaredLogger
}

func NewLoop(name string, interval time.Duration, logger *zap.SugaredLogger, pass Pass) *Loop {
	return &Loop{
		name:     name,
		interval: interval,
		pass:     pass,
		logger:   logger,
	}
}

func (l *Loop) Run(ctx context.Context) {
	l.logger.Infow("loop started", "loop", l.name, "interval", l.interval)
	defer l.logger.Infow("loop stopped", "loop", l.name)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		l.runPass(ctx)
		timer.Reset(l.interval)
	}
}

func (l *Loop) runPass(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Errorw("loop pass panicked", "loop", l.name, "panic", r)
		}
	}()

	if err := l.pass(ctx); err != nil {
		l.logger.Errorw("loop pass failed", "loop", l.name, "err", err)
	}
}
