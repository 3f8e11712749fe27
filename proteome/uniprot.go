package proteome

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/interactomestats"
)

// UniProtReviewedProteome lists the reviewed (Swiss-Prot) entries of a
// reference proteome, one accession per line after a header.
const UniProtReviewedProteome = "https://rest.uniprot.org/uniprotkb/stream?query=proteome:%s+AND+reviewed:true&format=tsv&fields=accession"

// UniProt fetches reference proteomes from a tab-delimited listing whose first
// column is the accession. Location is a URL, local path or gs:// path with a
// single %s that is replaced by the proteome identifier, so that a directory
// of previously downloaded listings can stand in for the live service.
type UniProt struct {
	Location string

	// Storage is only needed when Location is a gs:// path.
	Storage *storage.Client
}

// FetchReferenceAccessions makes a single attempt to read the listing for
// catalogID. Every failure is reported as ErrLookupFailure.
func (u UniProt) FetchReferenceAccessions(ctx context.Context, catalogID string) (map[string]struct{}, error) {
	location := u.Location
	if location == "" {
		location = UniProtReviewedProteome
	}
	if strings.Count(location, "%s") != 1 {
		return nil, fmt.Errorf("%w: location %q must contain exactly one %%s", ErrLookupFailure, location)
	}
	source := fmt.Sprintf(location, catalogID)

	payload, err := interactomestats.OpenFileOrURL(ctx, source, u.Storage)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLookupFailure, catalogID, err)
	}

	accessions, err := parseListing(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLookupFailure, catalogID, err)
	}

	return accessions, nil
}

func parseListing(payload []byte) (map[string]struct{}, error) {
	r := csv.NewReader(bytes.NewReader(payload))
	r.Comma = interactomestats.DetermineDelimiter(payload)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	out := make(map[string]struct{})

	// The first line is the header
	if _, err := r.Read(); err == io.EOF {
		return out, nil
	} else if err != nil {
		return nil, err
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		acc := strings.TrimSpace(rec[0])
		if acc == "" {
			continue
		}
		out[acc] = struct{}{}
	}

	return out, nil
}
