package interactomestats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// OpenFileOrURL fetches input in full. http(s) URLs are fetched with a single
// GET, gs:// paths go through client, and anything else is read from disk.
// A non-200 HTTP status is an error.
func OpenFileOrURL(ctx context.Context, input string, client *storage.Client) ([]byte, error) {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return MaybeOpenFromGoogleStorage(ctx, input, client)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input, nil)
	if err != nil {
		return nil, pfx.Err(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pfx.Err(fmt.Errorf("%s: unexpected status %s", input, resp.Status))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return b, nil
}
