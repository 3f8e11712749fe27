package graphsource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/araddon/dateparse"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

var (
	// ErrFieldIndex means a record has fewer fields than the query contract
	// promises.
	ErrFieldIndex = errors.New("record field index out of range")

	// ErrFieldType means a field could not be read as the requested type.
	ErrFieldType = errors.New("record field has unexpected type")
)

// ListSeparator joins list-valued fields in text exports.
const ListSeparator = "|"

// Record is one result row. Values come either as native driver types or as
// text read back from an export; the accessors accept both.
type Record struct {
	Keys   []string
	Values []interface{}
}

func (r Record) field(i int) (interface{}, error) {
	if i < 0 || i >= len(r.Values) {
		return nil, fmt.Errorf("%w: field %d of a %d-field record", ErrFieldIndex, i, len(r.Values))
	}
	return r.Values[i], nil
}

// Date reads field i as a calendar day.
func (r Record) Date(i int) (civil.Date, error) {
	v, err := r.field(i)
	if err != nil {
		return civil.Date{}, err
	}

	switch x := v.(type) {
	case civil.Date:
		return x, nil
	case dbtype.Date:
		return civil.DateOf(x.Time()), nil
	case dbtype.LocalDateTime:
		return civil.DateOf(x.Time()), nil
	case time.Time:
		return civil.DateOf(x), nil
	case string:
		if d, err := civil.ParseDate(strings.TrimSpace(x)); err == nil {
			return d, nil
		}
		// Exports from other tools write dates in whatever layout they like
		t, err := dateparse.ParseAny(strings.TrimSpace(x))
		if err != nil {
			return civil.Date{}, fmt.Errorf("%w: field %d (%q) is not a date: %v", ErrFieldType, i, x, err)
		}
		return civil.DateOf(t), nil
	}

	return civil.Date{}, fmt.Errorf("%w: field %d is %T, not a date", ErrFieldType, i, v)
}

// Int reads field i as an integer count.
func (r Record) Int(i int) (int64, error) {
	v, err := r.field(i)
	if err != nil {
		return 0, err
	}

	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: field %d (%q) is not an integer", ErrFieldType, i, x)
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w: field %d is %T, not an integer", ErrFieldType, i, v)
}

// Text reads field i as a string.
func (r Record) Text(i int) (string, error) {
	v, err := r.field(i)
	if err != nil {
		return "", err
	}

	x, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %d is %T, not a string", ErrFieldType, i, v)
	}

	return x, nil
}

// List reads field i as a list of strings. In text form the items are joined
// with ListSeparator and an empty cell is an empty list.
func (r Record) List(i int) ([]string, error) {
	v, err := r.field(i)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case []string:
		return x, nil
	case []interface{}:
		out := make([]string, 0, len(x))
		for j, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: item %d of field %d is %T, not a string", ErrFieldType, j, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		if x == "" {
			return []string{}, nil
		}
		return strings.Split(x, ListSeparator), nil
	}

	return nil, fmt.Errorf("%w: field %d is %T, not a list", ErrFieldType, i, v)
}

// formatValue renders a native value the way the accessors read it back.
func formatValue(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case civil.Date:
		return x.String(), nil
	case dbtype.Date:
		return civil.DateOf(x.Time()).String(), nil
	case dbtype.LocalDateTime:
		return civil.DateOf(x.Time()).String(), nil
	case time.Time:
		return civil.DateOf(x).String(), nil
	case []string:
		return strings.Join(x, ListSeparator), nil
	case []interface{}:
		items := make([]string, 0, len(x))
		for _, item := range x {
			s, err := formatValue(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return strings.Join(items, ListSeparator), nil
	}

	return "", fmt.Errorf("%w: cannot export a %T", ErrFieldType, v)
}
