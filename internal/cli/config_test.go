package cli

import (
	"testing"

	"google.golang.org/protobuf/proto"

	pb "github.com/ech-workers/ech-client/proto"
)

func TestApplyConfigArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *pb.ProxyConfig
		wantErr bool
	}{
		{
			name: "single key",
			args: []string{"listen=127.0.0.1:1081"},
			want: &pb.ProxyConfig{Listen: "127.0.0.1:1081", Server: "old.example.com"},
		},
		{
			name: "dash and case normalized",
			args: []string{"Server-IP=1.2.3.4", "TOKEN = secret "},
			want: &pb.ProxyConfig{Server: "old.example.com", ServerIp: "1.2.3.4", Token: "secret"},
		},
		{
			name: "empty value clears",
			args: []string{"server="},
			want: &pb.ProxyConfig{},
		},
		{
			name: "value may contain equals",
			args: []string{"ech=a=b"},
			want: &pb.ProxyConfig{Server: "old.example.com", Ech: "a=b"},
		},
		{
			name:    "missing equals",
			args:    []string{"listen"},
			wantErr: true,
		},
		{
			name:    "unknown key",
			args:    []string{"color=red"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &pb.ProxyConfig{Server: "old.example.com"}
			err := applyConfigArgs(cfg, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyConfigArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !proto.Equal(cfg, tt.want) {
				t.Errorf("config = %v, want %v", cfg, tt.want)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "****"},
		{"abcd", "****"},
		{"abcdef", "ab**ef"},
		{"secret-token", "se********en"},
	}
	for _, tt := range tests {
		if got := maskToken(tt.in); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOutputLine(t *testing.T) {
	plain := plainOutput
	plainOutput = true
	defer func() { plainOutput = plain }()

	tests := []struct {
		in, want string
	}{
		{"[STDOUT] listening on 127.0.0.1:1080", "[STDOUT] listening on 127.0.0.1:1080"},
		{"dial failed", "dial failed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatOutputLine(tt.in); got != tt.want {
			t.Errorf("formatOutputLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
