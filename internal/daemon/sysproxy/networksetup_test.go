package sysproxy

import (
	"reflect"
	"testing"
)

func TestParseNetworkServices(t *testing.T) {
	out := `An asterisk (*) denotes that a network service is disabled.
Wi-Fi
*Thunderbolt Bridge
USB 10/100/1000 LAN
`
	got := parseNetworkServices(out)
	want := []string{"Wi-Fi", "Thunderbolt Bridge", "USB 10/100/1000 LAN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseNetworkServices() = %v, want %v", got, want)
	}
}

func TestParseWebProxy(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Setting
	}{
		{
			name: "enabled",
			out:  "Enabled: Yes\nServer: 127.0.0.1\nPort: 30000\nAuthenticated Proxy Enabled: 0\n",
			want: Setting{Enabled: true, Endpoint: "127.0.0.1:30000"},
		},
		{
			name: "disabled and empty",
			out:  "Enabled: No\nServer: \nPort: 0\n",
			want: Setting{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseWebProxy(tt.out); got != tt.want {
				t.Errorf("parseWebProxy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
