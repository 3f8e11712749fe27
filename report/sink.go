package report

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/interactomestats"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Sink stores one artifact. rows is a slice of csv-tagged structs.
type Sink interface {
	WriteArtifact(ctx context.Context, name string, rows interface{}) error
}

// FileSink writes <Root>/<name> as CSV. Root is a local directory or a
// gs://bucket/prefix, in which case Storage must be set.
type FileSink struct {
	Root    string
	Storage *storage.Client
}

func (f FileSink) WriteArtifact(ctx context.Context, name string, rows interface{}) error {
	path := strings.TrimSuffix(f.Root, "/") + "/" + name

	w, err := interactomestats.MaybeCreateOnGoogleStorage(ctx, path, f.Storage)
	if err != nil {
		return err
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		w.Close()
		return pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	if err := w.Close(); err != nil {
		return pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return nil
}
