package toast

import (
	"time"

	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/logging"
)

// Option configures a Store.
type Option func(*Store)

// WithLimit sets how many toasts are held at once. Values < 1 are ignored.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.limit = n
		}
	}
}

// WithDefaultDuration sets the auto-dismiss delay used when Props.Duration
// is nil. A value <= 0 keeps toasts open until dismissed.
func WithDefaultDuration(d time.Duration) Option {
	return func(s *Store) {
		s.defaultDuration = d
	}
}

// WithRemoveDelay sets how long a dismissed toast stays in the list.
func WithRemoveDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.removeDelay = d
		}
	}
}

// WithClock sets the clock used for both timers.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// OptionsFromConfig reads toast_limit, toast_duration_ms and
// toast_remove_delay_ms from the loaded configuration.
func OptionsFromConfig() []Option {
	return []Option{
		WithLimit(config.GetInt("toast_limit", DefaultLimit)),
		WithDefaultDuration(time.Duration(config.GetInt("toast_duration_ms", int(DefaultDuration/time.Millisecond))) * time.Millisecond),
		WithRemoveDelay(time.Duration(config.GetInt("toast_remove_delay_ms", int(DefaultRemoveDelay/time.Millisecond))) * time.Millisecond),
	}
}
