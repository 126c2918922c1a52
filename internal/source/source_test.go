package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n"), 0o644))

	buf, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, []byte("hello world\n"), buf.Bytes())
	assert.Equal(t, path, buf.Label())
}

func TestOpenEmptyFile(t *testing.T) {
	// empty files cannot be mapped and must fall back to a plain read
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	buf, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Empty(t, buf.Bytes())
	assert.Equal(t, path, buf.Label())
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := Open(context.Background(), path)
	require.Error(t, err)

	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, KindNotFound, srcErr.Kind)
	assert.Equal(t, path, srcErr.Name)
	assert.Contains(t, srcErr.Error(), "not found")
}

func TestOpenStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = orig })

	_, err = w.WriteString("piped input\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	buf, err := Open(context.Background(), StdinName)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, []byte("piped input\n"), buf.Bytes())
	assert.Equal(t, StdinName, buf.Label())
}

func TestOpenCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, "anything.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBufferClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	buf, err := Open(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, buf.Close())
	assert.Nil(t, buf.Bytes())
	require.NoError(t, buf.Close())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "permission denied", KindPermission.String())
	assert.Equal(t, "i/o error", KindIO.String())
}
