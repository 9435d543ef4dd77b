package config

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name tokens are stored under.
const KeyringService = "ech-client"

// SecretStore keeps per-server auth tokens outside config.yaml.
type SecretStore interface {
	Get(id string) (string, error)
	Set(id, secret string) error
	Delete(id string) error
}

// KeyringSecrets stores tokens in the OS credential store.
type KeyringSecrets struct {
	Service string
}

// NewKeyringSecrets returns a SecretStore backed by the OS keyring.
func NewKeyringSecrets() *KeyringSecrets {
	return &KeyringSecrets{Service: KeyringService}
}

// Get returns the token for id, or "" if none is stored.
func (k *KeyringSecrets) Get(id string) (string, error) {
	secret, err := keyring.Get(k.Service, id)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return secret, err
}

// Set stores the token for id.
func (k *KeyringSecrets) Set(id, secret string) error {
	return keyring.Set(k.Service, id, secret)
}

// Delete removes the token for id. Missing entries are not an error.
func (k *KeyringSecrets) Delete(id string) error {
	err := keyring.Delete(k.Service, id)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
