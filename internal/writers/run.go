// internal/writers/run.go
package writers

import (
	"io"

	"fizzbuzz/internal/output"
)

// RenderRun prints the full two-pass report for one label sequence: the
// counted pass (positions from 1) followed by the indexed pass (positions
// from 0). The counted pass runs to completion before the indexed pass
// starts, and both read the same slice.
func RenderRun(w io.Writer, labels []string) error {
	if err := output.WriteCounted(w, labels); err != nil {
		return err
	}
	return output.WriteIndexed(w, labels)
}
