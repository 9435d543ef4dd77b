package models

// Preferred run modes recorded in LastState. Only ModeExternal is
// implemented; the field is persisted so a future embedded mode can read it.
const (
	ModeAuto     = 0
	ModeEmbedded = 1
	ModeExternal = 2
)

// LastState is the durable snapshot used to resume after a restart.
// It is advisory and is reconciled against the live process table and
// OS proxy settings whenever it is acted on.
type LastState struct {
	WasRunning         bool `yaml:"was_running" json:"was_running"`
	SystemProxyEnabled bool `yaml:"system_proxy_enabled" json:"system_proxy_enabled"`
	AutoStartChecked   bool `yaml:"auto_start_checked" json:"auto_start_checked"`
	PreferredMode      int  `yaml:"preferred_mode" json:"preferred_mode"`
}
