// Package proteome measures how much of an organism's reference proteome is
// represented among the proteins observed in the interaction graph.
package proteome

import (
	"regexp"
	"strings"
)

const byteOrderMark = "\ufeff"

// isoformSuffix matches UniProt isoform markers such as P12345-2 at the end of
// an accession, including stacked markers.
var isoformSuffix = regexp.MustCompile(`(-[0-9]+)+$`)

// Normalize reduces an accession to its canonical entry: byte-order marks are
// removed and isoform suffixes are stripped.
func Normalize(accession string) string {
	accession = strings.ReplaceAll(accession, byteOrderMark, "")
	return isoformSuffix.ReplaceAllString(accession, "")
}

// CompareCoverage counts the distinct normalized observed accessions that
// appear in reference.
func CompareCoverage(observed []string, reference map[string]struct{}) int {
	seen := make(map[string]struct{}, len(observed))
	for _, acc := range observed {
		seen[Normalize(acc)] = struct{}{}
	}

	covered := 0
	for acc := range seen {
		if _, exists := reference[acc]; exists {
			covered++
		}
	}

	return covered
}
