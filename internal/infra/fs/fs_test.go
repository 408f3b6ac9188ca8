package fs

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpool_WritePNGAndRemove(t *testing.T) {
	s := NewSpool(t.TempDir())
	assert.Empty(t, s.Dir())

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path, err := s.WritePNG("Bar Chart/../x", img)
	require.NoError(t, err)
	assert.Equal(t, s.Dir(), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.NotContains(t, filepath.Base(path), "/")

	f, err := os.Open(path)
	require.NoError(t, err)
	decoded, err := png.Decode(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	dir := s.Dir()
	require.NoError(t, s.Remove())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, s.Remove())
}

func TestWaitForFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.png")

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = os.WriteFile(path, []byte("x"), 0644)
	}()

	require.NoError(t, WaitForFile(context.Background(), path, 2*time.Second))
}

func TestWaitForFile_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")
	err := WaitForFile(context.Background(), path, 20*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout waiting for file")
}

func TestWaitForFile_EmptyFileIsNotReady(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	require.Error(t, WaitForFile(context.Background(), path, 20*time.Millisecond))
}

func TestWaitForFile_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WaitForFile(ctx, filepath.Join(t.TempDir(), "x"), time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
