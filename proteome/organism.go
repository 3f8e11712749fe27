package proteome

import (
	"fmt"
	"strings"
)

// verbatimNames are organisms whose display name is kept as-is.
var verbatimNames = map[string]string{
	"SARS-CoV-2": "SARS-CoV-2",
}

// verbatimGenera are genera whose species epithet would be ambiguous once the
// genus is abbreviated, so "Genus species" is printed in full.
var verbatimGenera = map[string]struct{}{
	"Synechocystis": {},
}

// CleanOrganismName drops the slashes that strain designations carry in the
// graph store but not in the reference catalog.
func CleanOrganismName(name string) string {
	return strings.ReplaceAll(name, "/", "")
}

// ShortName abbreviates a scientific name for display: "Homo sapiens" becomes
// "H. sapiens".
func ShortName(fullName string) (string, error) {
	if short, ok := verbatimNames[fullName]; ok {
		return short, nil
	}

	tokens := strings.Fields(fullName)
	if len(tokens) < 2 {
		return "", fmt.Errorf("%w: %q does not have a genus and a species", ErrFormat, fullName)
	}

	if _, ok := verbatimGenera[tokens[0]]; ok {
		return tokens[0] + " " + tokens[1], nil
	}

	initial := []rune(tokens[0])[0]

	return fmt.Sprintf("%c. %s", initial, tokens[1]), nil
}
