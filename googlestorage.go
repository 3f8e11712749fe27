package interactomestats

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path addresses a Google Storage object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/object into its bucket and object
// name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d part(s): %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeCreateOnGoogleStorage opens path for writing. gs:// paths are written
// through client, which must then be non-nil; anything else is created on the
// local filesystem. The object only becomes visible once Close succeeds.
func MaybeCreateOnGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.WriteCloser, error) {
	if !IsGoogleStoragePath(path) {
		f, err := os.Create(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return f, nil
	}

	if client == nil {
		return nil, pfx.Err(fmt.Errorf("%s: no google storage client was configured", path))
	}

	bucketName, objectName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = "text/csv"

	return w, nil
}

// MaybeOpenFromGoogleStorage reads the whole object at path, either from
// Google Storage (gs://) or from the local filesystem.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) ([]byte, error) {
	if !IsGoogleStoragePath(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return b, nil
	}

	if client == nil {
		return nil, pfx.Err(fmt.Errorf("%s: no google storage client was configured", path))
	}

	bucketName, objectName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}
	defer rdr.Close()

	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return b, nil
}
