package diagram

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// WriteTo writes the diagram as one "birth death" pair per line. Infinite
// death values are written as "inf".
func (d *Diagram) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range d.points {
		death := "inf"
		if !p.Unpaired() {
			death = formatValue(p.Death)
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", formatValue(p.Birth), death); err != nil {
			return errors.Wrap(err, "writing persistence diagram")
		}
	}
	return errors.Wrap(bw.Flush(), "writing persistence diagram")
}

// String renders the diagram in the format used by WriteTo.
func (d *Diagram) String() string {
	var sb strings.Builder
	_ = d.WriteTo(&sb)
	return sb.String()
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
