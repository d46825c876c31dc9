package solution

import (
	"bytes"
	"hash/fnv"
	"strconv"
	"strings"
)

// Builtin returns a registry holding the bundled demo solutions. They exist
// to exercise the harness end to end; real puzzle solutions are registered
// by the binary that embeds the harness.
func Builtin() *Registry {
	r := NewRegistry()

	for _, s := range []Solution{
		FromBytes("answer", Answer),
		FromBytes("lines", Lines),
		FromBytes("checksum", Checksum),
		FromText("sum", Sum),
	} {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}

	return r
}

// Answer ignores its input and returns 42.
func Answer([]byte) int {
	return 42
}

// Lines counts the non-empty lines of the input.
func Lines(b []byte) int {
	n := 0
	for len(b) > 0 {
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i], b[i+1:]
		} else {
			b = nil
		}

		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}

	return n
}

// Checksum returns the FNV-1a 64-bit hash of the input as hex.
func Checksum(b []byte) string {
	h := fnv.New64a()
	h.Write(b)

	return strconv.FormatUint(h.Sum64(), 16)
}

// Sum adds up every whitespace-separated integer in the input. Tokens that
// are not integers are ignored.
func Sum(s string) int64 {
	var total int64

	for field := range strings.FieldsSeq(s) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}

		total += n
	}

	return total
}
