package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ech-workers/ech-client/internal/models"
)

// ErrServerNotFound is returned for unknown server profile ids.
var ErrServerNotFound = errors.New("server not found")

// DefaultServerName names the profile created for a fresh install.
const DefaultServerName = "Default"

// fileModel is the on-disk layout of config.yaml.
type fileModel struct {
	Version         int                    `yaml:"version"`
	CurrentServerID string                 `yaml:"current_server_id"`
	Servers         []models.ServerProfile `yaml:"servers"`
	LastState       models.LastState       `yaml:"last_state"`
}

// Store is the mutex-guarded config store: server profiles, the current
// selection and LastState. Mutations only touch memory; Save persists.
type Store struct {
	path    string
	secrets SecretStore
	log     logrus.FieldLogger

	mu             sync.RWMutex
	data           fileModel
	deletedSecrets []string

	saveMu      sync.Mutex
	lastWritten []byte
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSecrets moves auth tokens into s on Save.
func WithSecrets(s SecretStore) StoreOption {
	return func(st *Store) { st.secrets = s }
}

// WithLogger sets the store's logger.
func WithLogger(l logrus.FieldLogger) StoreOption {
	return func(st *Store) { st.log = l }
}

// OpenStore loads the store at path. Read and parse failures are logged and
// fall back to defaults so the daemon can always start.
func OpenStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path: path,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, raw, err := s.read()
	if err != nil {
		s.log.WithError(err).Warn("config: falling back to defaults")
		data = fileModel{}
		raw = nil
	}
	s.ensureDefaults(&data)
	s.data = data
	s.lastWritten = raw
	return s
}

// OpenGlobalStore opens ~/.ech-client/config.yaml.
func OpenGlobalStore(opts ...StoreOption) (*Store, error) {
	path, err := GlobalConfigFile()
	if err != nil {
		return nil, err
	}
	return OpenStore(path, opts...), nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) read() (fileModel, []byte, error) {
	var data fileModel
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil, nil
	}
	if err != nil {
		return data, nil, fmt.Errorf("%w: failed to read file %s: %w", ErrIO, s.path, err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, nil, fmt.Errorf("failed to parse YAML from %s: %w", s.path, err)
	}
	s.restoreTokens(&data)
	return data, raw, nil
}

func (s *Store) restoreTokens(data *fileModel) {
	if s.secrets == nil {
		return
	}
	for i := range data.Servers {
		srv := &data.Servers[i]
		if !srv.TokenInKeyring {
			continue
		}
		token, err := s.secrets.Get(srv.ID)
		if err != nil {
			s.log.WithError(err).WithField("server", srv.ID).Warn("config: failed to read token from keyring")
			continue
		}
		srv.Token = token
	}
}

func (s *Store) ensureDefaults(data *fileModel) {
	if data.Version == 0 {
		data.Version = 1
	}
	if len(data.Servers) == 0 {
		p := models.NewServerProfile(DefaultServerName, models.DefaultProxyConfig())
		data.Servers = append(data.Servers, p)
		data.CurrentServerID = p.ID
		return
	}
	if indexOf(data.Servers, data.CurrentServerID) < 0 {
		data.CurrentServerID = data.Servers[0].ID
	}
}

func indexOf(servers []models.ServerProfile, id string) int {
	if id == "" {
		return -1
	}
	for i := range servers {
		if servers[i].ID == id {
			return i
		}
	}
	return -1
}

// Reload re-reads the file when it differs from what this store last wrote.
// It reports whether the in-memory state changed.
func (s *Store) Reload() (bool, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	data, raw, err := s.read()
	if err != nil {
		return false, err
	}
	if raw == nil || bytes.Equal(raw, s.lastWritten) {
		return false, nil
	}
	s.ensureDefaults(&data)

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	s.lastWritten = raw
	return true, nil
}

// Save writes the store to disk.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	snapshot := s.data
	snapshot.Servers = append([]models.ServerProfile(nil), s.data.Servers...)
	deleted := s.deletedSecrets
	s.deletedSecrets = nil
	s.mu.Unlock()

	if s.secrets != nil {
		for _, id := range deleted {
			if err := s.secrets.Delete(id); err != nil {
				s.log.WithError(err).WithField("server", id).Warn("config: failed to delete token from keyring")
			}
		}
		s.stashTokens(snapshot.Servers)
	}

	raw, err := yaml.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := writeFileAtomic(s.path, raw, 0600); err != nil {
		return err
	}
	s.lastWritten = raw
	return nil
}

// stashTokens moves tokens into the keyring, blanking them in servers.
// Keyring failures leave the token in the file.
func (s *Store) stashTokens(servers []models.ServerProfile) {
	for i := range servers {
		srv := &servers[i]
		if srv.Token == "" {
			if srv.TokenInKeyring {
				_ = s.secrets.Delete(srv.ID)
				srv.TokenInKeyring = false
			}
			continue
		}
		if err := s.secrets.Set(srv.ID, srv.Token); err != nil {
			s.log.WithError(err).WithField("server", srv.ID).Warn("config: keyring unavailable, keeping token in config file")
			srv.TokenInKeyring = false
			continue
		}
		srv.Token = ""
		srv.TokenInKeyring = true
	}
}

// GetProxyConfig returns the current server's config, or the defaults when
// no server is selected.
func (s *Store) GetProxyConfig() models.ProxyConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.data.Servers, s.data.CurrentServerID); i >= 0 {
		return s.data.Servers[i].ProxyConfig
	}
	return models.DefaultProxyConfig()
}

// SetProxyConfig writes cfg into the current server, creating one if needed.
func (s *Store) SetProxyConfig(cfg models.ProxyConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.data.Servers, s.data.CurrentServerID); i >= 0 {
		s.data.Servers[i].ProxyConfig = cfg
		return
	}
	p := models.NewServerProfile(DefaultServerName, cfg)
	s.data.Servers = append(s.data.Servers, p)
	s.data.CurrentServerID = p.ID
}

// GetLastState returns the persisted LastState.
func (s *Store) GetLastState() models.LastState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.LastState
}

// SetLastState replaces LastState.
func (s *Store) SetLastState(ls models.LastState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LastState = ls
}

// UpdateLastState applies fn to LastState atomically and returns the result.
func (s *Store) UpdateLastState(fn func(*models.LastState)) models.LastState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data.LastState)
	return s.data.LastState
}

// ListServers returns a copy of all server profiles.
func (s *Store) ListServers() []models.ServerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServerProfile(nil), s.data.Servers...)
}

// GetServer returns the profile with the given id.
func (s *Store) GetServer(id string) (models.ServerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.data.Servers, id); i >= 0 {
		return s.data.Servers[i], true
	}
	return models.ServerProfile{}, false
}

// CurrentServer returns the selected profile.
func (s *Store) CurrentServer() (models.ServerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.data.Servers, s.data.CurrentServerID); i >= 0 {
		return s.data.Servers[i], true
	}
	return models.ServerProfile{}, false
}

// SetCurrentServer selects the profile with the given id.
func (s *Store) SetCurrentServer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.data.Servers, id) < 0 {
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	s.data.CurrentServerID = id
	return nil
}

// UpsertServer inserts or replaces a profile. A profile without an id gets
// a new one. The first profile stored becomes the current selection.
func (s *Store) UpsertServer(p models.ServerProfile) models.ServerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = models.NewServerID()
	}
	if i := indexOf(s.data.Servers, p.ID); i >= 0 {
		p.TokenInKeyring = s.data.Servers[i].TokenInKeyring
		s.data.Servers[i] = p
	} else {
		s.data.Servers = append(s.data.Servers, p)
	}
	if indexOf(s.data.Servers, s.data.CurrentServerID) < 0 {
		s.data.CurrentServerID = p.ID
	}
	return p
}

// DeleteServer removes a profile. Deleting the current one selects the
// first remaining profile.
func (s *Store) DeleteServer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.data.Servers, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	if s.secrets != nil {
		s.deletedSecrets = append(s.deletedSecrets, id)
	}
	s.data.Servers = append(s.data.Servers[:i], s.data.Servers[i+1:]...)

	if s.data.CurrentServerID == id {
		s.data.CurrentServerID = ""
		if len(s.data.Servers) > 0 {
			s.data.CurrentServerID = s.data.Servers[0].ID
		}
	}
	return nil
}
