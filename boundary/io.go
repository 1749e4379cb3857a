package boundary

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load reads a boundary matrix from its plain-text form. Every non-empty
// line describes one column as whitespace-separated integers: the column
// dimension first, then the non-zero rows. Lines starting with '#' and
// blank lines are ignored. Columns appear in index order.
func Load(r io.Reader, opts ...Option) (*Matrix, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	type column struct {
		dim  int
		rows []int
	}
	var columns []column

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrBadFormat, "line %d: %q", line, f)
			}
			values[i] = v
		}

		rows := values[1:]
		slices.Sort(rows)
		columns = append(columns, column{dim: values[0], rows: rows})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading boundary matrix")
	}

	rep := o.newRep(len(columns))
	for j, c := range columns {
		rep.SetColumn(j, c.rows)
		rep.SetDimension(j, c.dim)
	}
	return &Matrix{rep: rep}, nil
}

// Store writes the matrix in the plain-text form understood by Load.
func (m *Matrix) Store(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for j := 0; j < m.rep.NumColumns(); j++ {
		if _, err := fmt.Fprintf(bw, "%d", m.rep.Dimension(j)); err != nil {
			return errors.Wrap(err, "writing boundary matrix")
		}
		for _, r := range m.rep.Column(j) {
			if _, err := fmt.Fprintf(bw, " %d", r); err != nil {
				return errors.Wrap(err, "writing boundary matrix")
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return errors.Wrap(err, "writing boundary matrix")
		}
	}
	return errors.Wrap(bw.Flush(), "writing boundary matrix")
}
