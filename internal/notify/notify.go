// Package notify sends desktop notifications when a countdown completes.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a completion notice.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the platform notification service.
type Desktop struct {
	send func(title, message string) error
}

// NewDesktop returns a Notifier backed by beeep.
func NewDesktop() *Desktop {
	return &Desktop{send: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
}

// Notify implements Notifier.
func (d *Desktop) Notify(title, message string) error {
	if err := d.send(title, message); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// Nop discards notifications.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(string, string) error { return nil }
