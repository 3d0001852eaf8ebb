// Package interp evaluates tabulated functions between their grid points.
//
// Cross-section tables are smooth in log-log space, so the default rule
// is piecewise linear interpolation of ln(value) against ln(energy).
// Points outside the table continue the slope of the end segment.
package interp

import (
	"errors"
	"math"
	"sort"
)

// floor replaces non-positive values before taking logarithms.
const floor = 1e-99

// scanLimit is the table size at or below which brackets are found by a
// linear scan instead of a binary search.
const scanLimit = 8

var (
	ErrLength    = errors.New("interp: energy and value grids differ in length")
	ErrEmpty     = errors.New("interp: empty table")
	ErrNotSorted = errors.New("interp: energy grid not strictly increasing")
)

// Log returns ln(v), flooring non-positive v to a tiny positive value.
func Log(v float64) float64 {
	if v <= 0 {
		v = floor
	}
	return math.Log(v)
}

// LogSpace maps every value through Log.
func LogSpace(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Log(x)
	}
	return out
}

// Table is a prepared log-log interpolation table. It is read-only after
// NewTable and safe for concurrent use.
type Table struct {
	x, y       []float64
	logX, logY []float64
}

// NewTable prepares xp, fp for log-log interpolation. xp must be strictly
// increasing. The slices are retained, not copied.
func NewTable(xp, fp []float64) (*Table, error) {
	if len(xp) != len(fp) {
		return nil, ErrLength
	}
	if len(xp) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(xp); i++ {
		if xp[i] <= xp[i-1] {
			return nil, ErrNotSorted
		}
	}
	return &Table{x: xp, y: fp, logX: LogSpace(xp), logY: LogSpace(fp)}, nil
}

// Len returns the number of table points.
func (t *Table) Len() int { return len(t.x) }

// Min and Max return the first and last table energies.
func (t *Table) Min() float64 { return t.x[0] }
func (t *Table) Max() float64 { return t.x[len(t.x)-1] }

// At interpolates the table at x.
func (t *Table) At(x float64) float64 {
	return t.AtLog(Log(x))
}

// AtLog interpolates the table at a point already in log space.
func (t *Table) AtLog(lx float64) float64 {
	n := len(t.logX)
	if n == 1 {
		return t.y[0]
	}

	i := t.search(lx)
	if t.logX[i] == lx {
		return t.y[i]
	}
	// segment [i, i+1], clamped to the end segments for extrapolation
	if i > n-2 {
		i = n - 2
	}
	x0, x1 := t.logX[i], t.logX[i+1]
	y0, y1 := t.logY[i], t.logY[i+1]
	return math.Exp(y0 + (lx-x0)*(y1-y0)/(x1-x0))
}

// Eval interpolates the table at every x.
func (t *Table) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.At(x)
	}
	return out
}

// EvalLog interpolates the table at points already in log space.
func (t *Table) EvalLog(lxs []float64) []float64 {
	out := make([]float64, len(lxs))
	for i, lx := range lxs {
		out[i] = t.AtLog(lx)
	}
	return out
}

// search returns the largest i with logX[i] <= lx, or 0 when lx lies
// below the table.
func (t *Table) search(lx float64) int {
	n := len(t.logX)
	if n <= scanLimit {
		i := 0
		for i < n-1 && t.logX[i+1] <= lx {
			i++
		}
		return i
	}
	i := sort.Search(n, func(j int) bool { return t.logX[j] > lx }) - 1
	if i < 0 {
		return 0
	}
	return i
}

// LogLog interpolates fp(xp) at every x in log-log space. Malformed
// tables yield a nil result.
func LogLog(x, xp, fp []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	t, err := NewTable(xp, fp)
	if err != nil {
		return nil
	}
	return t.Eval(x)
}

// Linear interpolates fp(xp) at every x on linear axes, clamping to the
// end values outside the table. Used for quantities that change sign.
func Linear(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	n := len(xp)
	if n == 0 || len(fp) != n {
		return out
	}
	for k, v := range x {
		switch {
		case v <= xp[0]:
			out[k] = fp[0]
		case v >= xp[n-1]:
			out[k] = fp[n-1]
		default:
			i := sort.SearchFloat64s(xp, v)
			if xp[i] == v {
				out[k] = fp[i]
				continue
			}
			x0, x1 := xp[i-1], xp[i]
			out[k] = fp[i-1] + (v-x0)*(fp[i]-fp[i-1])/(x1-x0)
		}
	}
	return out
}
