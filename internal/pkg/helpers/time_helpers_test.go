package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, ParseDuration("15m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestDobRange(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	minDob, maxDob := DobRange(today, 18, 99)

	assert.Equal(t, time.Date(1924, 6, 15, 0, 0, 0, 0, time.UTC), minDob)
	assert.Equal(t, time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC), maxDob)
}

func TestDobRange_SingleAge(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Everyone aged exactly 25: born after today-26y and on or before today-25y
	minDob, maxDob := DobRange(today, 25, 25)

	assert.Equal(t, time.Date(1998, 6, 15, 0, 0, 0, 0, time.UTC), minDob)
	assert.Equal(t, time.Date(1999, 6, 15, 0, 0, 0, 0, time.UTC), maxDob)
}
