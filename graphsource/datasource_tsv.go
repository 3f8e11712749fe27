package graphsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/interactomestats"
	"github.com/carbocation/pfx"
)

// TSVReplay answers queries from files previously written by Recorder (or by
// any tool that exports a header row plus one line per result row). The file
// for a query is <Dir>/<Name>.tsv; Dir may be a gs:// prefix.
type TSVReplay struct {
	Dir     string
	Storage *storage.Client
}

// RunQuery reads the export for q. Every value is returned as text; the
// Record accessors convert on access.
func (t TSVReplay) RunQuery(ctx context.Context, q QuerySpec) ([]Record, error) {
	path := exportPath(t.Dir, q.Name)

	payload, err := interactomestats.MaybeOpenFromGoogleStorage(ctx, path, t.Storage)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(payload))
	r.Comma = interactomestats.DetermineDelimiter(payload)
	r.LazyQuotes = true

	// A query that matched nothing is exported as an empty file
	header, err := r.Read()
	if err == io.EOF {
		log.Printf("Replayed 0 rows for query %s from %s\n", q.Name, path)
		return []Record{}, nil
	} else if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	out := []Record{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
		}

		values := make([]interface{}, len(row))
		for i, cell := range row {
			values[i] = cell
		}
		out = append(out, Record{Keys: header, Values: values})
	}

	log.Printf("Replayed %d rows for query %s from %s\n", len(out), q.Name, path)

	return out, nil
}

// Recorder passes queries through to Source and writes each result to
// <Dir>/<Name>.tsv so that the run can later be repeated with TSVReplay.
type Recorder struct {
	Source  Source
	Dir     string
	Storage *storage.Client
}

func (r Recorder) RunQuery(ctx context.Context, q QuerySpec) ([]Record, error) {
	records, err := r.Source.RunQuery(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := r.write(ctx, q, records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r Recorder) write(ctx context.Context, q QuerySpec, records []Record) error {
	path := exportPath(r.Dir, q.Name)

	w, err := interactomestats.MaybeCreateOnGoogleStorage(ctx, path, r.Storage)
	if err != nil {
		return err
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	if len(records) > 0 {
		if err := tsv.Write(headerOf(records[0])); err != nil {
			w.Close()
			return pfx.Err(err)
		}
	}

	for _, rec := range records {
		line := make([]string, len(rec.Values))
		for i, v := range rec.Values {
			if line[i], err = formatValue(v); err != nil {
				w.Close()
				return pfx.Err(fmt.Errorf("query %s: %v", q.Name, err))
			}
		}
		if err := tsv.Write(line); err != nil {
			w.Close()
			return pfx.Err(err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		w.Close()
		return pfx.Err(err)
	}

	if err := w.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// headerOf names the columns of rec, falling back to positional names when the
// source did not report any.
func headerOf(rec Record) []string {
	if len(rec.Keys) == len(rec.Values) {
		return rec.Keys
	}

	out := make([]string, len(rec.Values))
	for i := range out {
		out[i] = fmt.Sprintf("field%d", i)
	}
	return out
}

func exportPath(dir, name string) string {
	if interactomestats.IsGoogleStoragePath(dir) {
		return strings.TrimSuffix(dir, "/") + "/" + name + ".tsv"
	}
	return filepath.Join(dir, name+".tsv")
}
