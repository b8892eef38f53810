package export

import (
	"fmt"
	"io"

	"github.com/joshuapare/memkit/pool/fit"
)

// WriteMemoryMap writes holes to w in the diagnostic text form
// "[pos, size]" joined by " - ", or the literal "No holes" when the
// free list is empty. The format is for eyeballs, not round-tripping.
func WriteMemoryMap(w io.Writer, holes []fit.Hole) error {
	if len(holes) == 0 {
		_, err := io.WriteString(w, "No holes")
		return err
	}
	for i, h := range holes {
		if i > 0 {
			if _, err := io.WriteString(w, " - "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d, %d]", h.Pos, h.Extent); err != nil {
			return err
		}
	}
	return nil
}
