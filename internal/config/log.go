package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ech-workers/ech-client/internal/models"
)

// WriteSessionLog writes a worker session log to disk with a YAML header
// followed by the captured output lines.
func WriteSessionLog(entry models.LogEntry, lines []string) (*models.LogEntry, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}

	dir, err := GlobalSessionsDir()
	if err != nil {
		return nil, err
	}

	startedAt, err := time.Parse(time.RFC3339, entry.StartedAt)
	if err != nil {
		startedAt = time.Now().UTC()
	}
	if entry.EndedAt == "" {
		entry.EndedAt = time.Now().UTC().Format(time.RFC3339)
	}
	entry.LogID = fmt.Sprintf("%s-%d", startedAt.UTC().Format("2006-01-02T15-04-05"), entry.PID)

	f, err := os.Create(filepath.Join(dir, entry.LogID+".log"))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "log_id: %s\n", entry.LogID)
	fmt.Fprintf(w, "pid: %d\n", entry.PID)
	fmt.Fprintf(w, "server: %s\n", entry.Server)
	fmt.Fprintf(w, "started_at: %s\n", entry.StartedAt)
	fmt.Fprintf(w, "ended_at: %s\n", entry.EndedAt)
	fmt.Fprintf(w, "exit_code: %d\n", entry.ExitCode)
	fmt.Fprintf(w, "status: %s\n", entry.Status)
	fmt.Fprintln(w, "---")

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	return &entry, w.Flush()
}

// ListSessionLogs returns the metadata of every session log, newest first.
func ListSessionLogs() ([]*models.LogEntry, error) {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []*models.LogEntry
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		entry, err := parseLogHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].StartedAt > logs[j].StartedAt
	})
	return logs, nil
}

// ReadSessionLog reads a session log and returns metadata + content.
func ReadSessionLog(logID string) (*models.LogEntry, string, error) {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(logID)+".log"))
	if err != nil {
		return nil, "", fmt.Errorf("log not found: %w", err)
	}

	entry, body := parseLogContent(string(data))
	if entry == nil {
		return nil, "", fmt.Errorf("invalid log format")
	}
	return entry, body, nil
}

func parseLogHeader(path string) (*models.LogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	entry := &models.LogEntry{}
	inHeader := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			break
		}
		if inHeader {
			parseLogHeaderLine(entry, line)
		}
	}

	if entry.LogID == "" {
		entry.LogID = strings.TrimSuffix(filepath.Base(path), ".log")
	}
	return entry, nil
}

func parseLogContent(content string) (*models.LogEntry, string) {
	lines := strings.Split(content, "\n")
	entry := &models.LogEntry{}
	headerEnd := -1
	inHeader := false

	for i, line := range lines {
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			headerEnd = i
			break
		}
		if inHeader {
			parseLogHeaderLine(entry, line)
		}
	}

	if headerEnd < 0 {
		return nil, ""
	}
	return entry, strings.Join(lines[headerEnd+1:], "\n")
}

func parseLogHeaderLine(entry *models.LogEntry, line string) {
	key, value, ok := strings.Cut(line, ": ")
	if !ok {
		return
	}
	switch key {
	case "log_id":
		entry.LogID = value
	case "pid":
		entry.PID, _ = strconv.Atoi(value)
	case "server":
		entry.Server = value
	case "started_at":
		entry.StartedAt = value
	case "ended_at":
		entry.EndedAt = value
	case "exit_code":
		entry.ExitCode, _ = strconv.Atoi(value)
	case "status":
		entry.Status = value
	}
}
