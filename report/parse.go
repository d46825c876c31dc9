package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrMalformed is returned when protocol output is incomplete or invalid.
var ErrMalformed = errors.New("malformed report")

// Parse reads protocol lines from r. Lines that do not start with a
// protocol key are skipped so that output preceded by other text still
// parses. All five keys must be present.
func Parse(r io.Reader) (*Report, error) {
	var (
		rep  Report
		seen = make(map[string]bool, 5)
	)

	durations := map[string]*time.Duration{
		KeyMedian:  &rep.Median,
		KeyAverage: &rep.Average,
		KeyMin:     &rep.Min,
		KeyMax:     &rep.Max,
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		key, value, _ := strings.Cut(sc.Text(), " ")

		if key == KeyAnswer {
			rep.Answer = value
			seen[key] = true

			continue
		}

		dst, ok := durations[key]
		if !ok {
			continue
		}

		ns, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || ns < 0 {
			return nil, fmt.Errorf("%w: %s has value %q", ErrMalformed, key, value)
		}

		*dst = time.Duration(ns)
		seen[key] = true
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	for _, key := range []string{KeyAnswer, KeyMedian, KeyAverage, KeyMin, KeyMax} {
		if !seen[key] {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformed, key)
		}
	}

	return &rep, nil
}
