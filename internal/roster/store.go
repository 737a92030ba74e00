// Package roster reads and writes the player pool file.
//
// The file holds one record per line as name,score,role. Loading is lenient:
// lines that cannot be turned into a valid Participant are skipped and
// reported as Diagnostics so the caller can surface them. A missing file is
// fatal and yields no participants at all.
package roster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const fieldCount = 3

// ErrRosterNotFound is returned by Load when the roster file does not exist.
var ErrRosterNotFound = errors.New("roster file not found")

// Diagnostic describes one skipped line.
type Diagnostic struct {
	Line   int
	Text   string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Reason, d.Text)
}

// Result is the outcome of a successful Load.
type Result struct {
	Path         string
	Participants []Participant
	Diagnostics  []Diagnostic
}

// Load reads the roster file at path.
//
// Malformed lines (wrong field count, non-integer score, empty name or role,
// repeated name) are skipped with a Diagnostic; the first record for a name
// wins. Blank lines are ignored silently.
func Load(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("roster: open %s: %w: %w", path, ErrRosterNotFound, err)
		}
		return Result{}, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer file.Close()

	result, err := Parse(file)
	if err != nil {
		return Result{}, fmt.Errorf("roster: read %s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

// Parse decodes roster records from r. See Load for the skipping rules.
func Parse(r io.Reader) (Result, error) {
	var result Result
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		participant, reason := parseLine(raw)
		if reason == "" {
			if _, dup := seen[participant.Name]; dup {
				reason = "duplicate name"
			}
		}
		if reason != "" {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Line:   lineNo,
				Text:   raw,
				Reason: reason,
			})
			continue
		}
		seen[participant.Name] = struct{}{}
		result.Participants = append(result.Participants, participant)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, err
	}
	return result, nil
}

func parseLine(raw string) (Participant, string) {
	fields := strings.Split(strings.TrimSpace(raw), ",")
	if len(fields) != fieldCount {
		return Participant{}, fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields))
	}
	score, err := strconv.Atoi(normalizeField(fields[1]))
	if err != nil {
		return Participant{}, "score is not an integer"
	}
	p := Participant{
		Name:  normalizeField(fields[0]),
		Score: score,
		Role:  normalizeField(fields[2]),
	}
	if err := p.Validate(); err != nil {
		return Participant{}, "name and role are required"
	}
	return p, ""
}

// Save overwrites path with participants sorted ascending by name.
func Save(path string, participants []Participant) error {
	sorted := slices.Clone(participants)
	slices.SortStableFunc(sorted, func(a, b Participant) int {
		return strings.Compare(a.Name, b.Name)
	})
	var buf bytes.Buffer
	for _, p := range sorted {
		buf.WriteString(p.String())
		buf.WriteByte('\n')
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("roster: ensure dir: %w", err)
		}
	}
	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so a failed write never leaves a truncated roster behind.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("roster: create temp for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("roster: write %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("roster: chmod %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("roster: write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("roster: replace %s: %w", path, err)
	}
	return nil
}
