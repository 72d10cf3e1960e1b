package offline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/rng"
)

func TestNegativeElapsedYieldsEmptyReport(t *testing.T) {
	level := uint32(5)
	xp := uint64(10)
	attrs := attributes.New()
	r := rng.New(1)

	report := Apply(-100, 0, 0, 0, 0, &level, &xp, &attrs, r)

	assert.Equal(t, Report{}, report)
	assert.Equal(t, uint32(5), level)
	assert.Equal(t, uint64(10), xp)
}

func TestElapsedSecondsClampedToMax(t *testing.T) {
	level := uint32(1)
	xp := uint64(0)
	attrs := attributes.New()
	r := rng.New(1)

	report := Apply(constants.MaxOfflineSeconds*10, 0, 0, 0, 0, &level, &xp, &attrs, r)

	assert.Equal(t, int64(constants.MaxOfflineSeconds), report.ElapsedSeconds)
}

func TestXPGainedFormula(t *testing.T) {
	level := uint32(1)
	xp := uint64(0)
	attrs := attributes.New()
	r := rng.New(1)

	elapsed := int64(3600)
	report := Apply(elapsed, 0, 0, 0, 0, &level, &xp, &attrs, r)

	expectedKills := (float64(elapsed) / 5.0) * constants.OfflineMultiplier
	assert.InDelta(t, expectedKills, report.EstimatedKills, 1e-9)
	assert.Greater(t, report.XPGained, 0.0)
}

func TestZeroElapsedReportsZeroElapsed(t *testing.T) {
	level := uint32(1)
	xp := uint64(0)
	attrs := attributes.New()
	r := rng.New(1)

	report := Apply(0, 0, 0, 0, 0, &level, &xp, &attrs, r)
	assert.Equal(t, int64(0), report.ElapsedSeconds)
}
