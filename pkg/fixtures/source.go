package fixtures

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"diet-diary/internal/utils/storage"
)

// Source opens a fixture file by name. A missing file yields an error
// wrapping fs.ErrNotExist.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	String() string
}

type dirSource struct {
	dir string
}

func NewDirSource(dir string) Source {
	return &dirSource{dir: dir}
}

func (s *dirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *dirSource) String() string {
	return s.dir
}

type s3Source struct {
	s3     storage.AwsS3
	prefix string
}

func NewS3Source(s3 storage.AwsS3, prefix string) Source {
	return &s3Source{s3: s3, prefix: prefix}
}

func (s *s3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.s3.GetObject(ctx, path.Join(s.prefix, name))
}

func (s *s3Source) String() string {
	return "s3://" + path.Join(s.s3.Bucket(), s.prefix)
}
