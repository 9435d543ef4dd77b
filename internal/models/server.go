package models

import "github.com/google/uuid"

// ServerProfile is a named ProxyConfig stored in config.yaml.
type ServerProfile struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	ProxyConfig    `yaml:",inline"`
	TokenInKeyring bool `yaml:"token_in_keyring,omitempty" json:"-"`
}

// NewServerProfile creates a profile with a fresh id.
func NewServerProfile(name string, cfg ProxyConfig) ServerProfile {
	return ServerProfile{
		ID:          NewServerID(),
		Name:        name,
		ProxyConfig: cfg,
	}
}

// NewServerID returns a new opaque profile id.
func NewServerID() string {
	return "server_" + uuid.NewString()
}
