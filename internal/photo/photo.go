// Package photo resolves user-chosen photos into URIs stored on a post.
package photo

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNotFound    = errors.New("photo not found")
	ErrNotAnImage  = errors.New("not a supported image")
	ErrIsDirectory = errors.New("photo path is a directory")
)

//go:generate go run go.uber.org/mock/mockgen -source=photo.go -destination=mocks/mock.go
type Picker interface {
	// Pick resolves ref into a URI. ok is false when the user canceled
	// (empty ref); err is set when ref cannot be used as a photo.
	Pick(ctx context.Context, ref string) (uri string, ok bool, err error)
}

// Info describes a picked image.
type Info struct {
	URI    string
	Format string
	Width  int
	Height int
}

// FilePicker picks photos from the local filesystem. Relative paths are
// resolved against Dir (or the working directory when Dir is empty).
type FilePicker struct {
	Dir string
}

func (p FilePicker) Pick(ctx context.Context, ref string) (string, bool, error) {
	info, ok, err := p.Inspect(ctx, ref)
	if err != nil || !ok {
		return "", ok, err
	}
	return info.URI, true, nil
}

// Inspect is Pick plus the decoded header.
func (p FilePicker) Inspect(ctx context.Context, ref string) (Info, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Info{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return Info{}, false, err
	}
	// Already a remote URI: accepted as-is.
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return Info{URI: ref}, true, nil
	}

	path := strings.TrimPrefix(ref, "file://")
	path = expandHome(path)
	if !filepath.IsAbs(path) && p.Dir != "" {
		path = filepath.Join(p.Dir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Info{}, false, fmt.Errorf("resolve %q: %w", ref, err)
	}

	st, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, false, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return Info{}, false, err
	}
	if st.IsDir() {
		return Info{}, false, fmt.Errorf("%w: %s", ErrIsDirectory, abs)
	}

	f, err := os.Open(abs)
	if err != nil {
		return Info{}, false, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, false, fmt.Errorf("%w: %s (%v)", ErrNotAnImage, abs, err)
	}
	return Info{
		URI:    (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, true, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
