package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads the full training corpus as text. "-" reads from stdin.
func Load(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus from stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	return string(b), nil
}

type Entry struct {
	Word  string
	Count int
}

// LoadFrequencyDict reads a pre-counted frequency dictionary, one
// "word count" pair per line. Blank and malformed lines are skipped.
func LoadFrequencyDict(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency dictionary %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Word: strings.ToLower(parts[0]), Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan frequency dictionary %s: %w", path, err)
	}
	return entries, nil
}
