// Package input holds the benchmark input for the lifetime of a run.
package input

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrLoad is returned when the input cannot be read.
	ErrLoad = errors.New("load input")
	// ErrInvalidText is returned when a text view is requested over bytes
	// that are not valid UTF-8.
	ErrInvalidText = errors.New("input is not valid UTF-8")
)

// Input is an immutable byte buffer owned by the harness until the process
// exits. Views handed out by Bytes and Text alias the same memory and must
// not be modified.
type Input struct {
	data []byte

	text    string
	textErr error
	checked bool
}

// Stabilize takes ownership of raw. The caller must not retain or modify
// raw afterwards. No copy is made.
func Stabilize(raw []byte) *Input {
	return &Input{data: raw}
}

// Load reads the file at path and stabilizes its contents.
func Load(path string) (*Input, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no input path provided", ErrLoad)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}

	return Stabilize(raw), nil
}

// Bytes returns the input as a read-only byte slice.
func (in *Input) Bytes() []byte {
	return in.data
}

// Len returns the input size in bytes.
func (in *Input) Len() int {
	return len(in.data)
}

// Text returns the input as a string sharing the underlying bytes. The
// UTF-8 check runs on the first call only; call Text before timing starts.
func (in *Input) Text() (string, error) {
	if !in.checked {
		in.checked = true

		switch {
		case !utf8.Valid(in.data):
			in.textErr = ErrInvalidText
		case len(in.data) > 0:
			in.text = unsafe.String(&in.data[0], len(in.data))
		}
	}

	return in.text, in.textErr
}
