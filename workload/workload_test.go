package workload

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{
		NumLines:     200,
		MinValue:     1,
		MaxValue:     9999,
		Distribution: "uniform",
		Seed:         42,
	}

	var buf1, buf2 bytes.Buffer

	sum1, err := NewGenerator(cfg).Generate(&buf1)
	require.NoError(t, err)

	sum2, err := NewGenerator(cfg).Generate(&buf2)
	require.NoError(t, err)

	assert.Equal(t, buf1.String(), buf2.String(), "inputs are not deterministic for same seed")
	assert.Equal(t, sum1, sum2)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	cfg := Config{NumLines: 50, MinValue: 0, MaxValue: 1 << 20, Seed: 1}

	var buf1, buf2 bytes.Buffer
	_, err := NewGenerator(cfg).Generate(&buf1)
	require.NoError(t, err)

	cfg.Seed = 2
	_, err = NewGenerator(cfg).Generate(&buf2)
	require.NoError(t, err)

	assert.NotEqual(t, buf1.String(), buf2.String())
}

func TestGenerateSummaryMatchesOutput(t *testing.T) {
	for _, dist := range []string{"uniform", "power-law", "exponential", "unknown"} {
		t.Run(dist, func(t *testing.T) {
			cfg := Config{
				NumLines:     500,
				MinValue:     10,
				MaxValue:     1000,
				Distribution: dist,
				Seed:         7,
			}

			var buf bytes.Buffer
			summary, err := NewGenerator(cfg).Generate(&buf)
			require.NoError(t, err)

			assert.Equal(t, 500, summary.Lines)
			assert.Equal(t, buf.Len(), summary.Bytes)

			var (
				lines int
				sum   int64
			)

			sc := bufio.NewScanner(strings.NewReader(buf.String()))
			for sc.Scan() {
				v, err := strconv.Atoi(sc.Text())
				require.NoError(t, err)
				assert.GreaterOrEqual(t, v, cfg.MinValue)
				assert.LessOrEqual(t, v, cfg.MaxValue)

				lines++
				sum += int64(v)
			}

			assert.Equal(t, summary.Lines, lines)
			assert.Equal(t, summary.Sum, sum)
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	summary, err := NewGenerator(Config{Seed: 3}).Generate(&buf)
	require.NoError(t, err)

	assert.Zero(t, summary)
	assert.Zero(t, buf.Len())
}

func TestGenerateInvalidRange(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewGenerator(Config{NumLines: 1, MinValue: 5, MaxValue: 1}).Generate(&buf)
	assert.Error(t, err)
}
