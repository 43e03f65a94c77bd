package export

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// WriteFile writes the rendered document to path. The document lands
// in a uniquely named sibling file first and is renamed into place, so
// readers of path never observe a half-written export.
func WriteFile(doc *Document, path string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String())
	if err := os.WriteFile(tmp, []byte(doc.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s into place: %w", tmp, err)
	}
	return nil
}
