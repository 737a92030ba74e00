package present

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned on systems without a clipboard tool.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// CopyFunc writes text to some clipboard.
type CopyFunc func(text string) error

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("present: copy to clipboard: %w", err)
	}
	return nil
}
