//go:build darwin

package sysproxy

// NewSystemBackend returns the networksetup backend.
func NewSystemBackend() Backend {
	if !commandExists("networksetup") {
		return unsupportedBackend{}
	}
	return &networksetupBackend{run: runCommand}
}
