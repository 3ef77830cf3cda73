// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// LineFormat is the canonical shape of every output line: position, colon,
// single space, label, newline. Keep this as the single source of truth;
// both passes must go through it.
const LineFormat = "%d: %s\n"

func writeLine(w io.Writer, position int, label string) error {
	_, err := fmt.Fprintf(w, LineFormat, position, label)
	return err
}

// WriteCounted prints one line per label, numbering lines with an explicit
// counter that starts at 1, so the printed position equals the index the
// label was computed from.
func WriteCounted(w io.Writer, labels []string) error {
	idx := 1
	for _, label := range labels {
		if err := writeLine(w, idx, label); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// WriteIndexed prints one line per label, numbering lines with the slice
// position itself. Printed positions are 0-based and sit one below
// WriteCounted's for the same element; the mismatch is part of the output
// contract, so the two must never be reconciled.
func WriteIndexed(w io.Writer, labels []string) error {
	for i, label := range labels {
		if err := writeLine(w, i, label); err != nil {
			return err
		}
	}
	return nil
}
