package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttributesAllBase(t *testing.T) {
	a := New()
	for _, typ := range All() {
		assert.Equal(t, uint32(BaseValue), a.Get(typ))
	}
}

func TestModifierFormula(t *testing.T) {
	cases := []struct {
		value int
		want  int
	}{
		{10, 0},
		{12, 1},
		{8, -1},
		{20, 5},
		{1, -5},
		{9, -1},
	}
	for _, c := range cases {
		var a Attributes
		a.Set(Strength, uint32(c.value), 999)
		assert.Equal(t, c.want, a.Modifier(Strength), "value=%d", c.value)
	}
}

func TestIncrementRespectsCap(t *testing.T) {
	a := New()
	cap := Cap(0)
	a.Set(Strength, cap, cap)
	require.False(t, a.Increment(Strength, cap))
	assert.Equal(t, cap, a.Get(Strength))
}

func TestCapScalesWithPrestige(t *testing.T) {
	assert.Equal(t, uint32(20), Cap(0))
	assert.Equal(t, uint32(25), Cap(1))
	assert.Equal(t, uint32(70), Cap(10))
}

func TestWithEquipmentBonusesDoesNotMutateOriginal(t *testing.T) {
	a := New()
	bonuses := [6]int32{5, 0, 0, 0, 0, 0}
	effective := a.WithEquipmentBonuses(bonuses)

	assert.Equal(t, uint32(BaseValue), a.Get(Strength))
	assert.Equal(t, uint32(BaseValue)+5, effective.Get(Strength))
}
