package present

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/roster"
)

// TeamRecord is one team inside an exported draft.
type TeamRecord struct {
	Name    string               `yaml:"name"`
	Score   int                  `yaml:"score"`
	Members []roster.Participant `yaml:"members"`
}

// Record is the on-disk form of a finished draft.
type Record struct {
	ID          string       `yaml:"id"`
	CreatedAt   time.Time    `yaml:"created_at"`
	Seed        int64        `yaml:"seed"`
	ScoreDiff   int          `yaml:"score_diff"`
	RoleBalance int          `yaml:"role_balance"`
	Teams       []TeamRecord `yaml:"teams"`
	Summary     string       `yaml:"summary"`
}

// NewRecord snapshots split under a fresh id.
func NewRecord(split balance.TeamSplit, now time.Time) Record {
	return Record{
		ID:          uuid.NewString(),
		CreatedAt:   now.UTC(),
		Seed:        split.Seed,
		ScoreDiff:   split.ScoreDiff(),
		RoleBalance: split.RoleBalance,
		Teams: []TeamRecord{
			{Name: TeamLabel(1), Score: split.ScoreA, Members: split.TeamA},
			{Name: TeamLabel(2), Score: split.ScoreB, Members: split.TeamB},
		},
		Summary: Summary(split),
	}
}

// Export writes rec to dir/<id>.yaml and returns the file path.
func Export(dir string, rec Record) (string, error) {
	if rec.ID == "" {
		return "", fmt.Errorf("present: export: record id is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("present: ensure export dir: %w", err)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("present: encode record: %w", err)
	}
	path := filepath.Join(dir, rec.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("present: write record: %w", err)
	}
	return path, nil
}

// LoadRecord reads an exported draft.
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("present: read %s: %w", path, err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("present: parse %s: %w", path, err)
	}
	return rec, nil
}
