package parser

import (
	"bufio"
	"fmt"
	"iiwa-config/internal/models"
	"io"
	"sort"
	"strings"
)

// maxLineSize bounds a single configuration line.
const maxLineSize = 1 << 20

// RawConfig is the key/value mapping read from a configuration stream.
type RawConfig map[string]string

// Parse reads "key: value" lines from r. Trailing empty fields are dropped
// after splitting on ':', so "key:" has one part and "a:b:" has two; lines
// that do not end up with exactly two parts are skipped. Later keys overwrite earlier ones. The caller
// owns r and is responsible for closing it.
func Parse(r io.Reader) (RawConfig, error) {
	if r == nil {
		return nil, models.ErrNullInput
	}

	raw := make(RawConfig)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		parts := splitFields(scanner.Text())
		if len(parts) != 2 {
			continue
		}
		raw[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return raw, nil
}

// splitFields splits line on ':' and removes trailing empty fields.
func splitFields(line string) []string {
	parts := strings.Split(line, ":")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Format writes raw in the line format accepted by Parse, keys sorted.
func Format(w io.Writer, raw RawConfig) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", k, raw[k]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
