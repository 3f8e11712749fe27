package proteome

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Percentage is a share of a reference proteome, rounded to two places.
type Percentage float64

// MarshalCSV always renders two decimals, so 25 is written as 25.00.
func (p Percentage) MarshalCSV() (string, error) {
	return p.String(), nil
}

func (p Percentage) String() string {
	return fmt.Sprintf("%.2f", float64(p))
}

// CoveragePercentage is covered / referenceSize * 100, rounded to 2 places.
func CoveragePercentage(covered, referenceSize int) (Percentage, error) {
	if referenceSize == 0 {
		return 0, fmt.Errorf("%w: cannot express %d proteins as a share of nothing", ErrDivisionByZero, covered)
	}

	rounded, err := stats.Round(float64(covered)/float64(referenceSize)*100, 2)
	if err != nil {
		return 0, err
	}

	return Percentage(rounded), nil
}
