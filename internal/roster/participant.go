package roster

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Participant is one player record from the roster file. Values are never
// mutated after loading; pass them by value.
type Participant struct {
	Name  string `yaml:"name" validate:"required"`
	Score int    `yaml:"score"`
	Role  string `yaml:"role" validate:"required"`
}

// Validate rejects records with missing fields.
func (p Participant) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid participant %q: %w", p.Name, err)
	}
	return nil
}

// String renders the record in the roster file format.
func (p Participant) String() string {
	return fmt.Sprintf("%s,%d,%s", p.Name, p.Score, p.Role)
}

// Names returns the participant names in order.
func Names(participants []Participant) []string {
	return lo.Map(participants, func(p Participant, _ int) string {
		return p.Name
	})
}

// TotalScore sums the scores of the given participants.
func TotalScore(participants []Participant) int {
	return lo.SumBy(participants, func(p Participant) int {
		return p.Score
	})
}

// DistinctRoles counts how many different roles appear among participants.
func DistinctRoles(participants []Participant) int {
	return len(lo.UniqBy(participants, func(p Participant) string {
		return p.Role
	}))
}

// Find looks a participant up by exact name.
func Find(participants []Participant, name string) (Participant, bool) {
	return lo.Find(participants, func(p Participant) bool {
		return p.Name == name
	})
}

// DuplicateNames reports names that appear more than once, in first-seen order.
func DuplicateNames(participants []Participant) []string {
	return lo.FindDuplicates(Names(participants))
}

func normalizeField(value string) string {
	return strings.TrimSpace(value)
}
