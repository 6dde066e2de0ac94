package strategy

import "github.com/katalvlaran/graphcodec/internal/xmath"

// Entry is one cell of the strategy table: the codeword order k, the
// vertex-blowup redundancy r, and the annealing score coefficient
// alpha.
type Entry struct {
	K     int
	R     int
	Alpha float64
}

// table holds the decoded 91x41 grid, row-major: table[m-tableMinM][eps].
var table [tableMaxM - tableMinM + 1][tableMaxEps + 1]Entry

func init() {
	cursor := 0
	for row := range table {
		for col := range table[row] {
			k, err := xmath.DecodeHexRun(tableHex[cursor : cursor+1])
			if err != nil {
				panic("strategy: corrupt table data: " + err.Error())
			}
			cursor++

			r, err := xmath.DecodeHexRun(tableHex[cursor : cursor+2])
			if err != nil {
				panic("strategy: corrupt table data: " + err.Error())
			}
			cursor += 2

			alphaTenths, err := xmath.DecodeHexRun(tableHex[cursor : cursor+1])
			if err != nil {
				panic("strategy: corrupt table data: " + err.Error())
			}
			cursor++

			table[row][col] = Entry{
				K:     int(k),
				R:     int(r),
				Alpha: float64(alphaTenths)*0.1 + 1.0,
			}
		}
	}
}

// Lookup returns the strategy entry for m transmitted symbols under a
// channel noise rate eps. m is clamped to the table's covered range
// [10, 100]; eps is truncated to a whole percentage point (after a +0.1
// guard, below) and clamped to column 40, matching how the table is keyed.
func Lookup(m int, eps float64) (Entry, error) {
	if m <= 0 {
		return Entry{}, ErrInvalidM
	}
	if eps < 0.0 || eps >= 1.0 {
		return Entry{}, ErrInvalidEpsilon
	}

	row := m
	if row < tableMinM {
		row = tableMinM
	}
	if row > tableMaxM {
		row = tableMaxM
	}

	// +0.1 guards against binary64 rounding (e.g. 0.29 stores as
	// 28.999999999999996), matching the reference's own
	// "(error_ratio * 100.0 + 0.1) as usize" correction.
	col := int(eps*100.0 + 0.1)
	if col > tableMaxEps {
		col = tableMaxEps
	}

	return table[row-tableMinM][col], nil
}
