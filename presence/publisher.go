// Package presence publishes the monitored server's state to a Discord bot
// profile, as the bot's activity text and avatar image.
package presence

import "fmt"

// PublishError reports a rejected profile update. Callers log these and move
// on; a failed publish never aborts a cycle.
type PublishError struct {
	Op  string
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s: %v", e.Op, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
