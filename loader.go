package tilescroll

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

type imageRequest struct {
	key string
	src string
}

// Loader decodes named image assets. Requests are queued with LoadImage and
// resolved together by Load; images become visible only when every request
// succeeded.
type Loader struct {
	fsys     fs.FS
	requests []imageRequest
	images   map[string]image.Image
}

// NewLoader returns a loader that reads from the local filesystem. A leading
// "~" in a source path is expanded to the user's home directory.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]image.Image)}
}

// NewLoaderFS returns a loader that reads sources from fsys.
func NewLoaderFS(fsys fs.FS) *Loader {
	l := NewLoader()
	l.fsys = fsys
	return l
}

// LoadImage queues src to be decoded and stored under key.
func (l *Loader) LoadImage(key, src string) {
	l.requests = append(l.requests, imageRequest{key: key, src: src})
}

// Pending returns the number of queued requests.
func (l *Loader) Pending() int {
	return len(l.requests)
}

// Image returns the image stored under key, or nil.
func (l *Loader) Image(key string) image.Image {
	return l.images[key]
}

// Load decodes all queued requests concurrently. The first failure cancels
// the rest and is returned; nothing is stored in that case.
func (l *Loader) Load(ctx context.Context) error {
	reqs := l.requests
	l.requests = nil

	decoded := make([]image.Image, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.decode(req.src)
			if err != nil {
				return fmt.Errorf("could not load image: %s: %w", req.src, err)
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, req := range reqs {
		l.images[req.key] = decoded[i]
	}
	return nil
}

// Start runs Load on a new goroutine. The returned channel receives exactly
// one value: nil on success or the load error.
func (l *Loader) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- l.Load(ctx)
	}()
	return done
}

func (l *Loader) open(src string) (io.ReadCloser, error) {
	if l.fsys != nil {
		return l.fsys.Open(src)
	}
	path, err := homedir.Expand(src)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (l *Loader) decode(src string) (image.Image, error) {
	f, err := l.open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
