package tray

import "testing"

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{"stopped", Snapshot{}, "Stopped"},
		{"busy wins", Snapshot{Running: true, Busy: true}, "Working..."},
		{"external", Snapshot{Running: true, External: true}, "Running (external process)"},
		{"listen", Snapshot{Running: true, Listen: "127.0.0.1:30000"}, "Running on 127.0.0.1:30000"},
		{"running", Snapshot{Running: true}, "Running"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStatus(tt.snap); got != tt.want {
				t.Errorf("formatStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTooltip(t *testing.T) {
	snap := Snapshot{Running: true, Listen: "127.0.0.1:30000", Server: "a.example:443", SystemProxy: true}
	want := "ECH Client: Running on 127.0.0.1:30000 via a.example:443 (system proxy on)"
	if got := formatTooltip(snap); got != want {
		t.Errorf("formatTooltip() = %q, want %q", got, want)
	}

	if got := formatTooltip(Snapshot{Server: "a.example:443"}); got != "ECH Client: Stopped" {
		t.Errorf("formatTooltip(stopped) = %q", got)
	}
}

func TestUpdateBeforeReadyIsIgnored(t *testing.T) {
	// No menu items exist yet; this must not panic.
	Update(Snapshot{Running: true}, []ServerInfo{{ID: "a", Name: "A"}})
}
