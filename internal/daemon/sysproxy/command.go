package sysproxy

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// commandRunner runs an external tool and returns its trimmed stdout.
type commandRunner func(name string, args ...string) (string, error)

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "unknown error"
		}
		return "", classify(fmt.Errorf("%s %s failed: %w (%s)", name, strings.Join(args, " "), err, msg), msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func classify(err error, msg string) error {
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "denied") || strings.Contains(lower, "not permitted") || strings.Contains(lower, "requires admin") {
		return fmt.Errorf("%w: %w", ErrSettingsAccessDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrSettingsWriteFailed, err)
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
