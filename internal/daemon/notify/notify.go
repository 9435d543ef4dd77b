// Package notify shows desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"
)

// Desktop sends notifications through the OS notification center.
type Desktop struct {
	enabled bool
	log     logrus.FieldLogger
}

// New creates a Desktop notifier. A disabled notifier only logs.
func New(enabled bool, log logrus.FieldLogger) *Desktop {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Desktop{enabled: enabled, log: log}
}

// Notify shows a notification. Failures are logged.
func (d *Desktop) Notify(title, message string) {
	d.log.WithField("title", title).Info(message)
	if !d.enabled {
		return
	}
	if err := beeep.Notify(title, message, ""); err != nil {
		d.log.WithError(err).Debug("desktop notification failed")
	}
}
