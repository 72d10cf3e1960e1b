package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/rng"
)

func TestRecordCatchAccumulatesTowardRank(t *testing.T) {
	s := New()
	assert.Equal(t, uint32(1), s.Rank)

	for i := uint32(0); i < FishNeededForRank(1); i++ {
		s.RecordCatch()
	}
	assert.Equal(t, uint32(2), s.Rank)
	assert.Equal(t, uint32(0), s.FishTowardNext)
}

func TestRecordCatchStopsAtMaxRank(t *testing.T) {
	s := State{Rank: MaxRank}
	for i := 0; i < 1000; i++ {
		rank, rankedUp := s.RecordCatch()
		assert.Equal(t, uint32(MaxRank), rank)
		assert.False(t, rankedUp)
	}
	assert.Equal(t, uint64(1000), s.TotalFishCaught)
}

func TestRecordCatchCanAdvanceMultipleRanksAtOnce(t *testing.T) {
	s := New()
	s.FishTowardNext = FishNeededForRank(1) + FishNeededForRank(2) - 1
	rank, rankedUp := s.RecordCatch()
	assert.True(t, rankedUp)
	assert.GreaterOrEqual(t, rank, uint32(3))
}

func TestSessionTickResolvesToCompleteWithinBoundedTicks(t *testing.T) {
	r := rng.New(5)
	s := Start(r)
	assert.Equal(t, PhaseCasting, s.Phase)

	ticks := 0
	for !s.Tick(0, 1, r) {
		ticks++
		assert.Less(t, ticks, 10000, "session must terminate")
	}
	assert.Equal(t, PhaseComplete, s.Phase)
}

func TestSessionAccumulatesCaughtFish(t *testing.T) {
	r := rng.New(3)
	s := Start(r)
	for !s.Tick(2, 10, r) {
	}
	assert.NotEmpty(t, s.SpotName)
}
