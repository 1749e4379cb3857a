package distance

// munkres solves the square assignment problem with the Munkres
// (Hungarian) algorithm. It works on a private copy of the cost matrix
// and returns a star mask marking the optimal assignment.
type munkres struct {
	n       int
	cost    [][]float64
	stars   [][]bool
	primes  [][]bool
	rowMask []bool
	colMask []bool
}

func solveAssignment(cost [][]float64) [][]bool {
	n := len(cost)

	m := &munkres{
		n:       n,
		cost:    make([][]float64, n),
		stars:   make([][]bool, n),
		primes:  make([][]bool, n),
		rowMask: make([]bool, n),
		colMask: make([]bool, n),
	}
	for i := range cost {
		m.cost[i] = append([]float64(nil), cost[i]...)
		m.stars[i] = make([]bool, n)
		m.primes[i] = make([]bool, n)
	}

	m.subtractRowMinimum()

	step := 1
	var row, col int
	for step != 0 {
		switch step {
		case 1:
			step = m.step1()
		case 2:
			step = m.step2()
		case 3:
			step = m.step3(&row, &col)
		case 4:
			step = m.step4(row, col)
		case 5:
			step = m.step5()
		}
	}

	return m.stars
}

func (m *munkres) subtractRowMinimum() {
	for row := 0; row < m.n; row++ {
		min := m.cost[row][0]
		for col := 0; col < m.n; col++ {
			if m.cost[row][col] < min {
				min = m.cost[row][col]
			}
		}
		for col := 0; col < m.n; col++ {
			m.cost[row][col] -= min
		}
	}
}

func (m *munkres) findUncoveredZero(row, col *int) bool {
	for r := 0; r < m.n; r++ {
		if m.rowMask[r] {
			continue
		}
		for c := 0; c < m.n; c++ {
			if !m.colMask[c] && m.cost[r][c] == 0 {
				*row, *col = r, c
				return true
			}
		}
	}
	return false
}

// step1 stars every zero whose row and column contain no starred zero yet.
func (m *munkres) step1() int {
row:
	for r := 0; r < m.n; r++ {
	col:
		for c := 0; c < m.n; c++ {
			if m.cost[r][c] != 0 {
				continue
			}
			for i := 0; i < m.n; i++ {
				if m.stars[i][c] {
					continue col
				}
			}
			for i := 0; i < m.n; i++ {
				if m.stars[r][i] {
					continue row
				}
			}
			m.stars[r][c] = true
			m.primes[r][c] = false
		}
	}
	return 2
}

// step2 covers every column containing a starred zero. Once all columns
// are covered, the stars form a complete assignment.
func (m *munkres) step2() int {
	covered := 0
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			if m.stars[r][c] {
				m.colMask[c] = true
				covered++
			}
		}
	}
	if covered >= m.n {
		return 0
	}
	return 3
}

// step3 primes an uncovered zero. If its row holds a starred zero, the
// row is covered and the star's column uncovered; otherwise the primed
// zero starts an augmenting path in step 4.
func (m *munkres) step3(row, col *int) int {
	if !m.findUncoveredZero(row, col) {
		return 5
	}

	m.primes[*row][*col] = true
	m.stars[*row][*col] = false

	for c := 0; c < m.n; c++ {
		if m.stars[*row][c] {
			m.rowMask[*row] = true
			m.colMask[c] = false
			return 3
		}
	}
	return 4
}

// step4 builds the alternating path of primed and starred zeroes that
// starts at the given primed zero, flips it, then resets primes and
// covers.
func (m *munkres) step4(row, col int) int {
	type cell struct{ r, c int }

	sequence := []cell{{row, col}}
	contains := func(p cell) bool {
		for _, q := range sequence {
			if q == p {
				return true
			}
		}
		return false
	}

	r, c := 0, col
	for {
		havePair := false
		for r = 0; r < m.n; r++ {
			if m.stars[r][c] && !contains(cell{r, c}) {
				sequence = append(sequence, cell{r, c})
				havePair = true
				break
			}
		}
		if !havePair {
			break
		}

		havePair = false
		for c = 0; c < m.n; c++ {
			if m.primes[r][c] && !contains(cell{r, c}) {
				sequence = append(sequence, cell{r, c})
				havePair = true
				break
			}
		}
		if !havePair {
			break
		}
	}

	for _, p := range sequence {
		if m.stars[p.r][p.c] {
			m.stars[p.r][p.c] = false
			m.primes[p.r][p.c] = false
		}
		if m.primes[p.r][p.c] {
			m.stars[p.r][p.c] = true
			m.primes[p.r][p.c] = false
		}
	}

	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			if m.primes[r][c] {
				m.primes[r][c] = false
				m.stars[r][c] = false
			}
		}
		m.rowMask[r] = false
		m.colMask[r] = false
	}
	return 2
}

// step5 finds the smallest uncovered value, adds it to covered rows and
// subtracts it from uncovered columns, creating new zeroes to work with.
func (m *munkres) step5() int {
	v := maxCost
	for r := 0; r < m.n; r++ {
		if m.rowMask[r] {
			continue
		}
		for c := 0; c < m.n; c++ {
			if !m.colMask[c] && m.cost[r][c] != 0 && m.cost[r][c] < v {
				v = m.cost[r][c]
			}
		}
	}

	for r := 0; r < m.n; r++ {
		if m.rowMask[r] {
			for c := 0; c < m.n; c++ {
				m.cost[r][c] += v
			}
		}
	}
	for c := 0; c < m.n; c++ {
		if !m.colMask[c] {
			for r := 0; r < m.n; r++ {
				m.cost[r][c] -= v
			}
		}
	}
	return 3
}
