package sysproxy

import (
	"bufio"
	"net"
	"strings"
)

var macBypassDomains = []string{"localhost", "127.0.0.1", "*.local", "169.254/16", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

// networksetupBackend applies the proxy to every macOS network service.
type networksetupBackend struct {
	run commandRunner
}

func (n *networksetupBackend) services() ([]string, error) {
	out, err := n.run("networksetup", "-listallnetworkservices")
	if err != nil {
		return nil, err
	}
	return parseNetworkServices(out), nil
}

func (n *networksetupBackend) Enable(endpoint string) error {
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil {
		return err
	}
	services, err := n.services()
	if err != nil {
		return err
	}
	for _, svc := range services {
		steps := [][]string{
			{"-setwebproxy", svc, host, port},
			{"-setsecurewebproxy", svc, host, port},
			append([]string{"-setproxybypassdomains", svc}, macBypassDomains...),
			{"-setwebproxystate", svc, "on"},
			{"-setsecurewebproxystate", svc, "on"},
		}
		for _, args := range steps {
			if _, err := n.run("networksetup", args...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *networksetupBackend) Disable() error {
	services, err := n.services()
	if err != nil {
		return err
	}
	for _, svc := range services {
		if _, err := n.run("networksetup", "-setwebproxystate", svc, "off"); err != nil {
			return err
		}
		_, _ = n.run("networksetup", "-setsecurewebproxystate", svc, "off")
	}
	return nil
}

// Read reports the first service's web proxy.
func (n *networksetupBackend) Read() (Setting, error) {
	services, err := n.services()
	if err != nil || len(services) == 0 {
		return Setting{}, err
	}
	out, err := n.run("networksetup", "-getwebproxy", services[0])
	if err != nil {
		return Setting{}, err
	}
	return parseWebProxy(out), nil
}

func (n *networksetupBackend) Notify() error {
	return nil
}

func (n *networksetupBackend) Reassert() error {
	services, err := n.services()
	if err != nil {
		return err
	}
	var firstErr error
	for _, svc := range services {
		for _, flag := range []string{"-setautoproxystate", "-setwebproxystate", "-setsecurewebproxystate"} {
			if _, err := n.run("networksetup", flag, svc, "off"); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// parseNetworkServices parses `networksetup -listallnetworkservices`.
// Disabled services carry a leading asterisk.
func parseNetworkServices(out string) []string {
	var services []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "An asterisk") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			services = append(services, line)
		}
	}
	return services
}

// parseWebProxy parses `networksetup -getwebproxy <service>`.
func parseWebProxy(out string) Setting {
	var s Setting
	var host, port string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Enabled":
			s.Enabled = strings.EqualFold(value, "yes")
		case "Server":
			host = value
		case "Port":
			port = value
		}
	}
	if host != "" && port != "" && port != "0" {
		s.Endpoint = net.JoinHostPort(host, port)
	}
	return s
}
