package balance

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteSelection matches any roster that is not exactly RosterSize
	// distinctly named players.
	ErrIncompleteSelection = errors.New("incomplete selection")
	// ErrDuplicateName matches an IncompleteSelectionError for a roster where
	// two entries share a name.
	ErrDuplicateName = errors.New("duplicate participant name")
)

// IncompleteSelectionError carries the roster size that was rejected and,
// when the size was right, the first name that appeared twice.
type IncompleteSelectionError struct {
	Count     int
	Duplicate string
}

func (e *IncompleteSelectionError) Error() string {
	if e.Duplicate != "" {
		return fmt.Sprintf("balance: %s: %s: %s", ErrIncompleteSelection, ErrDuplicateName, e.Duplicate)
	}
	return fmt.Sprintf("balance: %s: need exactly %d players, got %d", ErrIncompleteSelection, RosterSize, e.Count)
}

// Is matches ErrIncompleteSelection, and ErrDuplicateName when Duplicate is set.
func (e *IncompleteSelectionError) Is(target error) bool {
	switch target {
	case ErrIncompleteSelection:
		return true
	case ErrDuplicateName:
		return e.Duplicate != ""
	}
	return false
}
