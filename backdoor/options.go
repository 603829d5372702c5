// SPDX-License-Identifier: MIT
package backdoor

import (
	"io"
	"log/slog"
)

// Option customizes a Puzzle before its first turn.
type Option func(*Puzzle)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Puzzle) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithNotifier adds a notification sink; may be given several times.
func WithNotifier(n Notifier) Option {
	return func(p *Puzzle) {
		if n != nil {
			p.notifiers = append(p.notifiers, n)
		}
	}
}

// WithStrictTurns toggles the one-cut-per-advance rule of Sever
// (enabled by default).
func WithStrictTurns(strict bool) Option {
	return func(p *Puzzle) { p.strict = strict }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
