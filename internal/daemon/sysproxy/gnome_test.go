package sysproxy

import (
	"strings"
	"testing"
)

// fakeGSettings is a key/value store answering gsettings and dconf calls.
type fakeGSettings struct {
	values map[string]string
	calls  []string
}

func newFakeGSettings() *fakeGSettings {
	return &fakeGSettings{values: map[string]string{
		"org.gnome.system.proxy mode":      "'none'",
		"org.gnome.system.proxy.http host": "''",
		"org.gnome.system.proxy.http port": "0",
	}}
}

func (f *fakeGSettings) run(name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	switch {
	case name == "gsettings" && args[0] == "set":
		f.values[args[1]+" "+args[2]] = args[3]
	case name == "gsettings" && args[0] == "get":
		return f.values[args[1]+" "+args[2]], nil
	case name == "dconf":
		f.values["org.gnome.system.proxy mode"] = args[2]
	}
	return "", nil
}

func TestGnomeBackendRoundTrip(t *testing.T) {
	fake := newFakeGSettings()
	g := &gnomeBackend{run: fake.run}

	if err := g.Enable("127.0.0.1:30000"); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	s, err := g.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !s.Enabled || s.Endpoint != "127.0.0.1:30000" {
		t.Errorf("Read() = %+v, want enabled at 127.0.0.1:30000", s)
	}
	if got := fake.values["org.gnome.system.proxy.https port"]; got != "30000" {
		t.Errorf("https port = %q, want 30000", got)
	}

	if err := g.Disable(); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	s, _ = g.Read()
	if s.Enabled || s.Endpoint != "" {
		t.Errorf("Read() after Disable = %+v, want zero", s)
	}
}

func TestGnomeBackendReassert(t *testing.T) {
	fake := newFakeGSettings()
	fake.values["org.gnome.system.proxy mode"] = "'manual'"
	g := &gnomeBackend{run: fake.run}

	if err := g.Reassert(); err != nil {
		t.Fatalf("Reassert() error = %v", err)
	}
	if got := fake.values["org.gnome.system.proxy mode"]; got != "'none'" {
		t.Errorf("mode = %q, want 'none'", got)
	}
}

func TestFormatGVariantList(t *testing.T) {
	got := formatGVariantList([]string{"localhost", "it's"})
	want := `['localhost', 'it\'s']`
	if got != want {
		t.Errorf("formatGVariantList() = %s, want %s", got, want)
	}
}
