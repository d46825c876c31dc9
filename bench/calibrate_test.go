package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchSize(t *testing.T) {
	tests := []struct {
		iterations uint64
		want       uint64
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 1},
		{199, 1},
		{200, 2},
		{12345, 123},
		{5_000_000, 50_000},
		{^uint64(0), ^uint64(0) / 100},
	}

	for _, tt := range tests {
		got := BatchSize(tt.iterations)
		if got != tt.want {
			t.Errorf("BatchSize(%d) = %d, want %d", tt.iterations, got, tt.want)
		}
	}
}

func TestBatchSizeNeverZero(t *testing.T) {
	for i := uint64(0); i < 10_000; i++ {
		if BatchSize(i) == 0 {
			t.Fatalf("BatchSize(%d) = 0", i)
		}
	}
}

func TestCalibrate(t *testing.T) {
	cal := Calibrate(5*time.Second, 5000)

	assert.Equal(t, 5*time.Second, cal.Budget)
	assert.Equal(t, uint64(5000), cal.Iterations)
	assert.Equal(t, uint64(50), cal.BatchSize)
	assert.Equal(t, time.Millisecond, cal.Estimate())
}

func TestCalibrationEstimateZero(t *testing.T) {
	assert.Zero(t, Calibration{Budget: time.Second}.Estimate())
}
