package interactomestats

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// preferredDelimiters break ties between candidates. Dates and accessions put
// '-' and '_' on every line with the same regularity as the real delimiter.
var preferredDelimiters = []string{"\t", ",", ";", "|"}

// DetermineDelimiter returns the most likely field delimiter of a CSV-like
// payload. Query exports and reference listings are tab-delimited unless the
// sample clearly says otherwise, so tab is the fallback.
func DetermineDelimiter(payload []byte) rune {
	if len(bytes.TrimSpace(payload)) == 0 {
		return '\t'
	}

	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(payload), '"')

	for _, preferred := range preferredDelimiters {
		for _, candidate := range delimiters {
			if candidate == preferred {
				return rune(candidate[0])
			}
		}
	}

	for _, candidate := range delimiters {
		if candidate != "" {
			return rune(candidate[0])
		}
	}

	return '\t'
}
