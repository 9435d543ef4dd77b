package sysproxy

import "sync"

// MemoryBackend keeps the setting in memory. It never touches the OS.
type MemoryBackend struct {
	mu          sync.Mutex
	setting     Setting
	notifies    int
	reasserts   int
	EnableErr   error
	DisableErr  error
	NotifyErr   error
	ReassertErr error
}

// NewMemoryBackend returns a disabled MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Enable(endpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EnableErr != nil {
		return m.EnableErr
	}
	m.setting = Setting{Enabled: true, Endpoint: endpoint}
	return nil
}

func (m *MemoryBackend) Disable() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DisableErr != nil {
		return m.DisableErr
	}
	m.setting.Enabled = false
	m.setting.Endpoint = ""
	return nil
}

func (m *MemoryBackend) Read() (Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setting, nil
}

func (m *MemoryBackend) Notify() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifies++
	return m.NotifyErr
}

func (m *MemoryBackend) Reassert() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reasserts++
	if m.ReassertErr != nil {
		return m.ReassertErr
	}
	m.setting.Enabled = false
	return nil
}

// Counts returns how many times Notify and Reassert ran.
func (m *MemoryBackend) Counts() (notifies, reasserts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifies, m.reasserts
}
