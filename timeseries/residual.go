package timeseries

import "fmt"

// DeriveResidual returns a copy of row in which the column at total is
// replaced by total minus the sum of the subtract columns. A negative residual
// is reported, never clamped: it means a named category outgrew the aggregate
// it is supposed to be part of.
func DeriveResidual(row Row, total int, subtract []int) (Row, error) {
	if total < 0 || total >= len(row.Values) {
		return Row{}, fmt.Errorf("%w: total column %d does not exist in a row of %d values", ErrInvariantViolation, total, len(row.Values))
	}

	var parts int64
	for _, idx := range subtract {
		if idx < 0 || idx >= len(row.Values) || idx == total {
			return Row{}, fmt.Errorf("%w: cannot subtract column %d from column %d in a row of %d values", ErrInvariantViolation, idx, total, len(row.Values))
		}
		parts += row.Values[idx]
	}

	residual := row.Values[total] - parts
	if residual < 0 {
		return Row{}, fmt.Errorf("%w: on %v the total %d is smaller than its parts %d", ErrInvariantViolation, row.Date, row.Values[total], parts)
	}

	out := Row{
		Date:   row.Date,
		Values: append([]int64(nil), row.Values...),
	}
	out.Values[total] = residual

	return out, nil
}

// DeriveResiduals applies DeriveResidual to every row, stopping at the first
// violation.
func DeriveResiduals(rows []Row, total int, subtract []int) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		derived, err := DeriveResidual(row, total, subtract)
		if err != nil {
			return nil, err
		}
		out = append(out, derived)
	}

	return out, nil
}
