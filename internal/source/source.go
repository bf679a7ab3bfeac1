// Package source opens evidence documents from the local filesystem or from
// S3-compatible object storage.
package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// Opener returns a reader over the document at location.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Files opens local paths.
type Files struct{}

func (Files) Open(_ context.Context, location string) (io.ReadCloser, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, err)
	}
	return f, nil
}

// ObjectURL is a parsed s3://bucket/key location.
type ObjectURL struct {
	Bucket string
	Key    string
}

func (u ObjectURL) String() string {
	return "s3://" + u.Bucket + "/" + u.Key
}

// IsObjectURL reports whether location names an S3 object.
func IsObjectURL(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// ParseObjectURL splits an s3:// location into bucket and key.
func ParseObjectURL(location string) (ObjectURL, error) {
	u, err := url.Parse(location)
	if err != nil {
		return ObjectURL{}, fmt.Errorf("invalid object url %q: %w", location, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return ObjectURL{}, fmt.Errorf("invalid object url %q: want s3://bucket/key", location)
	}
	return ObjectURL{Bucket: u.Host, Key: key}, nil
}

// Router sends s3:// locations to Objects and everything else to Local.
type Router struct {
	Local   Opener
	Objects Opener
}

func (r Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsObjectURL(location) {
		if r.Objects == nil {
			return nil, fmt.Errorf("cannot open %s: object storage is not configured", location)
		}
		return r.Objects.Open(ctx, location)
	}
	local := r.Local
	if local == nil {
		local = Files{}
	}
	return local.Open(ctx, location)
}
