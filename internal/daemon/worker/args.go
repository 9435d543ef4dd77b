package worker

import "github.com/ech-workers/ech-client/internal/models"

// BuildArgs translates cfg into the worker's flag vocabulary. Empty optional
// fields omit their flag pair entirely.
func BuildArgs(cfg models.ProxyConfig) []string {
	args := []string{"-f", cfg.Server}

	optional := []struct {
		flag, value string
	}{
		{"-l", cfg.Listen},
		{"-token", cfg.Token},
		{"-ip", cfg.ServerIP},
		{"-dns", cfg.DNS},
		{"-ech", cfg.ECH},
		{"-routing", cfg.Routing},
	}
	for _, o := range optional {
		if o.value != "" {
			args = append(args, o.flag, o.value)
		}
	}
	return args
}

// RedactArgs returns a copy of args with the token value masked for logging.
func RedactArgs(args []string) []string {
	out := append([]string(nil), args...)
	for i := 0; i+1 < len(out); i++ {
		if out[i] == "-token" {
			out[i+1] = "***"
		}
	}
	return out
}
