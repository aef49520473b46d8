package photo_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lostfound-cli/internal/photo"
	mock_photo "lostfound-cli/internal/photo/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, dir, name string, enc func(*os.File, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, enc(f, img))
	return path
}

func TestFilePicker_Formats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pngPath := writeImage(t, dir, "wallet.png", func(f *os.File, m image.Image) error { return png.Encode(f, m) })
	bmpPath := writeImage(t, dir, "keys.bmp", func(f *os.File, m image.Image) error { return bmp.Encode(f, m) })

	p := photo.FilePicker{}
	for _, tc := range []struct {
		path   string
		format string
	}{
		{path: pngPath, format: "png"},
		{path: bmpPath, format: "bmp"},
	} {
		info, ok, err := p.Inspect(context.Background(), tc.path)
		require.NoError(t, err, tc.path)
		require.True(t, ok)
		assert.Equal(t, tc.format, info.Format)
		assert.Equal(t, 4, info.Width)
		assert.Equal(t, 3, info.Height)
		assert.True(t, strings.HasPrefix(info.URI, "file:///"), info.URI)
		assert.True(t, strings.HasSuffix(info.URI, filepath.Base(tc.path)), info.URI)
	}
}

func TestFilePicker_RelativeToDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeImage(t, dir, "bag.png", func(f *os.File, m image.Image) error { return png.Encode(f, m) })

	uri, ok, err := photo.FilePicker{Dir: dir}.Pick(context.Background(), "bag.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, uri, "bag.png")
}

func TestFilePicker_Rejections(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("not an image"), 0o644))

	p := photo.FilePicker{}
	ctx := context.Background()

	_, ok, err := p.Pick(ctx, "   ")
	assert.NoError(t, err)
	assert.False(t, ok, "blank ref is a cancel")

	_, _, err = p.Pick(ctx, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, photo.ErrNotFound)

	_, _, err = p.Pick(ctx, txt)
	assert.ErrorIs(t, err, photo.ErrNotAnImage)

	_, _, err = p.Pick(ctx, dir)
	assert.ErrorIs(t, err, photo.ErrIsDirectory)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = p.Pick(canceled, txt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilePicker_RemoteURIPassesThrough(t *testing.T) {
	t.Parallel()

	const ref = "https://images.unsplash.com/photo-1582139329536-e7284fece509"
	uri, ok, err := photo.FilePicker{}.Pick(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ref, uri)
}

func TestMockPicker_SatisfiesInterface(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := mock_photo.NewMockPicker(ctrl)
	m.EXPECT().Pick(gomock.Any(), "wallet.jpg").Return("file:///tmp/wallet.jpg", true, nil)

	var p photo.Picker = m
	uri, ok, err := p.Pick(context.Background(), "wallet.jpg")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///tmp/wallet.jpg", uri)
}
