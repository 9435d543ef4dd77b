package sysproxy

import (
	"net"
	"strings"
)

const gnomeSchema = "org.gnome.system.proxy"

// gnomeIgnoreHosts keeps local and private traffic off the proxy.
var gnomeIgnoreHosts = []string{"localhost", "127.0.0.0/8", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

// gnomeBackend drives GNOME's proxy settings with gsettings, and dconf for
// the re-assert.
type gnomeBackend struct {
	run commandRunner
}

func (g *gnomeBackend) set(schema, key, value string) error {
	_, err := g.run("gsettings", "set", schema, key, value)
	return err
}

func (g *gnomeBackend) get(schema, key string) (string, error) {
	return g.run("gsettings", "get", schema, key)
}

func (g *gnomeBackend) Enable(endpoint string) error {
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil {
		return err
	}
	for _, section := range []string{"http", "https"} {
		schema := gnomeSchema + "." + section
		if err := g.set(schema, "host", quoteGVariant(host)); err != nil {
			return err
		}
		if err := g.set(schema, "port", port); err != nil {
			return err
		}
	}
	if err := g.set(gnomeSchema, "ignore-hosts", formatGVariantList(gnomeIgnoreHosts)); err != nil {
		return err
	}
	return g.set(gnomeSchema, "mode", "'manual'")
}

func (g *gnomeBackend) Disable() error {
	if err := g.set(gnomeSchema, "mode", "'none'"); err != nil {
		return err
	}
	_ = g.set(gnomeSchema+".http", "host", "''")
	_ = g.set(gnomeSchema+".http", "port", "0")
	_ = g.set(gnomeSchema+".https", "host", "''")
	_ = g.set(gnomeSchema+".https", "port", "0")
	_ = g.set(gnomeSchema, "autoconfig-url", "''")
	return nil
}

func (g *gnomeBackend) Read() (Setting, error) {
	mode, err := g.get(gnomeSchema, "mode")
	if err != nil {
		return Setting{}, err
	}
	s := Setting{Enabled: unquoteGVariant(mode) == "manual"}

	host, err := g.get(gnomeSchema+".http", "host")
	if err != nil {
		return s, nil
	}
	port, err := g.get(gnomeSchema+".http", "port")
	if err != nil {
		return s, nil
	}
	host = unquoteGVariant(host)
	if host != "" && port != "0" {
		s.Endpoint = net.JoinHostPort(host, port)
	}
	return s, nil
}

// Notify is a no-op: dconf signals its own subscribers.
func (g *gnomeBackend) Notify() error {
	return nil
}

func (g *gnomeBackend) Reassert() error {
	_, err := g.run("dconf", "write", "/system/proxy/mode", "'none'")
	return err
}

func quoteGVariant(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}

func unquoteGVariant(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "\\'", "'")
}

func formatGVariantList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = quoteGVariant(it)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
