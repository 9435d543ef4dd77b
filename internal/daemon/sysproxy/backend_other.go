//go:build !linux && !windows && !darwin

package sysproxy

// NewSystemBackend returns a backend that refuses to enable the proxy.
func NewSystemBackend() Backend {
	return unsupportedBackend{}
}
