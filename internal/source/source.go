// Package source acquires whole input buffers for the counting engine;
// it yields a zero-copy read-only view of a file's bytes via memory
// mapping, or a fully-buffered read of standard input.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/edsrzf/mmap-go"
)

// StdinName is the source name denoting standard input.
const StdinName = "-"

// Buffer is a read-only view of one source's complete bytes. The data
// must not be accessed after Close; it may be backed by a memory mapping.
type Buffer struct {
	data  []byte
	label string
	mm    mmap.MMap
	file  *os.File
}

// Bytes returns the buffer contents. Callers must treat the slice as
// read-only; it may be shared by any number of concurrent scans.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Label returns the source name the buffer was opened from.
func (b *Buffer) Label() string {
	return b.label
}

// Close releases the mapping or backing file, if any.
func (b *Buffer) Close() error {
	b.data = nil
	var err error
	if b.mm != nil {
		err = b.mm.Unmap()
		b.mm = nil
	}
	if b.file != nil {
		if closeErr := b.file.Close(); err == nil {
			err = closeErr
		}
		b.file = nil
	}
	return err
}

// Open acquires the complete bytes of one source. The name "-" denotes
// standard input, which is read to completion before returning since it
// has no random-access mapping; anything else is treated as a file path.
func Open(ctx context.Context, name string) (*Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == StdinName {
		return readStdin()
	}
	return openFile(name)
}

func readStdin() (*Buffer, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, &Error{Name: StdinName, Kind: KindIO, Err: fmt.Errorf("read stdin: %w", err)}
	}
	return &Buffer{data: data, label: StdinName}, nil
}

// openFile maps the file into memory for a zero-copy view. Empty and
// irregular files (pipes, devices) cannot be mapped and fall back to a
// buffered read.
func openFile(path string) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, classify(path, err)
	}

	if !info.Mode().IsRegular() || info.Size() == 0 {
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, classify(path, err)
		}
		return &Buffer{data: data, label: path}, nil
	}

	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		// mapping can fail on some filesystems; a plain read still works
		slog.Debug("mmap failed, falling back to read", "path", path, "error", err)
		data, readErr := os.ReadFile(path)
		file.Close()
		if readErr != nil {
			return nil, classify(path, readErr)
		}
		return &Buffer{data: data, label: path}, nil
	}

	return &Buffer{data: mm, label: path, mm: mm, file: file}, nil
}
