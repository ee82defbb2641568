package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesktopNotify(t *testing.T) {
	var gotTitle, gotMessage string
	d := &Desktop{send: func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	}}

	assert.NoError(t, d.Notify("Timer", "Time is up"))
	assert.Equal(t, "Timer", gotTitle)
	assert.Equal(t, "Time is up", gotMessage)
}

func TestDesktopNotifyError(t *testing.T) {
	want := errors.New("no notification daemon")
	d := &Desktop{send: func(string, string) error { return want }}

	err := d.Notify("Timer", "Time is up")
	assert.ErrorIs(t, err, want)
	assert.Contains(t, err.Error(), "desktop notification")
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.Notify("a", "b"))
}
