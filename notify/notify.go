// Package notify is the user-facing notification surface, the terminal
// equivalent of the web client's transient toasts.
package notify

import "github.com/rs/zerolog"

// Notifier surfaces outcome messages to the user. Expected failures
// (validation, network) arrive here as Error; mutations report Success.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Console writes notifications through a zerolog console logger.
type Console struct {
	log zerolog.Logger
}

var _ Notifier = Console{}

func NewConsole(logger zerolog.Logger) Console {
	return Console{log: logger.With().Str("component", "notify").Logger()}
}

func (c Console) Success(msg string) {
	c.log.Info().Msg(msg)
}

func (c Console) Error(msg string) {
	c.log.Error().Msg(msg)
}

// Recorder captures notifications for tests.
type Recorder struct {
	Successes []string
	Errors    []string
}

var _ Notifier = (*Recorder)(nil)

func (r *Recorder) Success(msg string) { r.Successes = append(r.Successes, msg) }
func (r *Recorder) Error(msg string)   { r.Errors = append(r.Errors, msg) }
