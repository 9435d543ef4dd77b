// Package sysproxy reads and writes the operating system's HTTP proxy
// setting. Platform specifics live behind Backend.
package sysproxy

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/models"
)

var (
	ErrSettingsAccessDenied = errors.New("access to system proxy settings denied")
	ErrSettingsWriteFailed  = errors.New("failed to write system proxy settings")
	ErrUnsupported          = errors.New("system proxy is not supported on this platform")
)

// Setting is the OS proxy state as far as this package cares.
type Setting struct {
	Enabled  bool   `json:"enabled"`
	Endpoint string `json:"endpoint"`
}

// Backend talks to one platform's proxy settings store.
type Backend interface {
	// Enable points the system proxy at endpoint and turns it on.
	Enable(endpoint string) error
	// Disable turns the system proxy off and clears the endpoint where it can.
	Disable() error
	Read() (Setting, error)
	// Notify tells running applications that the settings changed.
	Notify() error
	// Reassert disables the proxy again through an independent pathway.
	Reassert() error
}

// Controller applies proxy changes through a Backend with the notify and
// re-assert steps every caller needs.
type Controller struct {
	backend Backend
	log     logrus.FieldLogger
}

// NewController creates a Controller over backend.
func NewController(backend Backend, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{backend: backend, log: log}
}

// NewSystemController creates a Controller over the host's backend.
func NewSystemController(log logrus.FieldLogger) *Controller {
	return NewController(NewSystemBackend(), log)
}

// Enable points the system proxy at host:port.
func (c *Controller) Enable(host string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", models.ErrInvalidConfig, port)
	}
	return c.enable(net.JoinHostPort(host, strconv.Itoa(port)))
}

// EnableListen points the system proxy at a worker listen address. A
// wildcard host becomes the loopback address.
func (c *Controller) EnableListen(listen string) error {
	host, port, err := models.SplitListen(listen)
	if err != nil {
		return err
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "127.0.0.1"
	}
	return c.enable(net.JoinHostPort(host, port))
}

func (c *Controller) enable(endpoint string) error {
	if err := c.backend.Enable(endpoint); err != nil {
		return err
	}
	if err := c.backend.Notify(); err != nil {
		c.log.WithError(err).Warn("proxy change broadcast failed")
	}
	c.log.WithField("endpoint", endpoint).Info("system proxy enabled")
	return nil
}

// Disable turns the system proxy off. Only the primary write can fail the
// call; notify and re-assert errors are logged.
func (c *Controller) Disable() error {
	if err := c.backend.Disable(); err != nil {
		return err
	}
	if err := c.backend.Notify(); err != nil {
		c.log.WithError(err).Warn("proxy change broadcast failed")
	}
	if err := c.backend.Reassert(); err != nil {
		c.log.WithError(err).Warn("secondary proxy disable failed")
	}
	c.log.Info("system proxy disabled")
	return nil
}

// IsEnabled reports the OS proxy flag.
func (c *Controller) IsEnabled() (bool, error) {
	s, err := c.backend.Read()
	if err != nil {
		return false, err
	}
	return s.Enabled, nil
}

// Current returns the OS proxy setting.
func (c *Controller) Current() (Setting, error) {
	return c.backend.Read()
}
