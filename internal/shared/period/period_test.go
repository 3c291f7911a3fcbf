package period_test

import (
	"testing"
	"time"

	"speed-hrm/internal/shared/period"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got, err := period.Normalize("2024-03")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03", got)

	_, err = period.Normalize("2024-3")
	assert.Error(t, err)

	_, err = period.Normalize("2024-13")
	assert.Error(t, err)

	_, err = period.Normalize("")
	assert.Error(t, err)
}

func TestOfAndCurrent(t *testing.T) {
	assert.Equal(t, "2024-01", period.Of(1, 2024))
	assert.Equal(t, "2025-12", period.Current(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)))
}
