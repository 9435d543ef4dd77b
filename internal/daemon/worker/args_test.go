package worker

import (
	"reflect"
	"testing"

	"github.com/ech-workers/ech-client/internal/models"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.ProxyConfig
		want []string
	}{
		{
			name: "server only",
			cfg:  models.ProxyConfig{Server: "a.example:443"},
			want: []string{"-f", "a.example:443"},
		},
		{
			name: "defaults",
			cfg:  models.DefaultProxyConfig(),
			want: []string{
				"-f", models.DefaultServer,
				"-l", models.DefaultListen,
				"-dns", models.DefaultDNS,
				"-ech", models.DefaultECH,
				"-routing", models.RoutingGlobal,
			},
		},
		{
			name: "all fields",
			cfg: models.ProxyConfig{
				Listen:   "127.0.0.1:1080",
				Server:   "b.example:443",
				ServerIP: "1.2.3.4",
				Token:    "t",
				DNS:      "doh",
				ECH:      "ech",
				Routing:  models.RoutingNone,
			},
			want: []string{
				"-f", "b.example:443",
				"-l", "127.0.0.1:1080",
				"-token", "t",
				"-ip", "1.2.3.4",
				"-dns", "doh",
				"-ech", "ech",
				"-routing", "none",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildArgs(tt.cfg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRedactArgs(t *testing.T) {
	args := []string{"-f", "s", "-token", "secret"}
	got := RedactArgs(args)
	if got[3] != "***" {
		t.Errorf("token not redacted: %v", got)
	}
	if args[3] != "secret" {
		t.Errorf("RedactArgs modified its input")
	}
}
