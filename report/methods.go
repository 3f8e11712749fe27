package report

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carbocation/interactomestats/graphsource"
)

// MethodRow is the number of binary interactions detected by one method.
type MethodRow struct {
	MethodID string `csv:"Method_ID"`
	Label    string `csv:"label"`
	Amount   int64  `csv:"amount"`
}

// MethodDistribution lists interaction detection methods in the order the
// query ranks them.
func MethodDistribution(ctx context.Context, src graphsource.Source) ([]MethodRow, error) {
	records, err := fetch(ctx, src, QueryMethodDistribution)
	if err != nil {
		return nil, err
	}

	out := make([]MethodRow, 0, len(records))
	for i, rec := range records {
		id, err := rec.Text(0)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryMethodDistribution, i, err)
		}
		name, err := rec.Text(1)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryMethodDistribution, i, err)
		}
		amount, err := rec.Int(2)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryMethodDistribution, i, err)
		}

		out = append(out, MethodRow{MethodID: id, Label: Capitalize(name), Amount: amount})
	}

	return out, nil
}

// Capitalize upper-cases the first letter of s and lower-cases the rest, so
// "two hybrid ARRAY" becomes "Two hybrid array".
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
