//go:build linux

package sysproxy

// NewSystemBackend returns the GNOME backend, or an unsupported backend when
// gsettings is not installed.
func NewSystemBackend() Backend {
	if !commandExists("gsettings") {
		return unsupportedBackend{}
	}
	return &gnomeBackend{run: runCommand}
}
