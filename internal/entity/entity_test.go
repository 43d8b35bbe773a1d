package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return DefaultParams()
}

func TestReclassify(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		energy float64
		age    int
		want   Status
	}{
		{"dead at zero health", 0, 50, 10, StatusDead},
		{"dead past max age", 80, 80, 99, StatusDead},
		{"thriving above both thresholds", 70, 65, 10, StatusThriving},
		{"struggling on low health", 10, 10, 10, StatusStruggling},
		{"struggling on low health only", 30, 50, 10, StatusStruggling},
		{"struggling on low energy only", 50, 20, 10, StatusStruggling},
		{"alive in the middle band", 50, 50, 10, StatusAlive},
		{"death precedes thriving", 0, 100, 10, StatusDead},
		{"thriving precedes struggling", 70, 65, 10, StatusThriving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{Health: tt.health, Energy: tt.energy, Age: tt.age, Params: testParams()}
			e.Reclassify()
			assert.Equal(t, tt.want, e.Status)
		})
	}
}

func TestReclassifyDeadForcesZeroPools(t *testing.T) {
	e := &Entity{Health: 0, Energy: 77, Age: 5, Params: testParams()}
	e.Reclassify()
	assert.Equal(t, StatusDead, e.Status)
	assert.Zero(t, e.Health)
	assert.Zero(t, e.Energy)
	assert.False(t, e.Alive())
}

func TestReclassifyIsDeterministic(t *testing.T) {
	e := &Entity{Health: 42, Energy: 58, Age: 21, Params: testParams()}
	e.Reclassify()
	first := e.Status
	for i := 0; i < 10; i++ {
		e.Reclassify()
		assert.Equal(t, first, e.Status)
	}
}

func TestKill(t *testing.T) {
	e := &Entity{Health: 90, Energy: 90, Params: testParams()}
	e.Kill()
	assert.Equal(t, StatusDead, e.Status)
	assert.Zero(t, e.Health)
	assert.Zero(t, e.Energy)
}

func TestRememberEvictsOldest(t *testing.T) {
	e := &Entity{Params: testParams(), MemorySpan: 3}
	for i := 0; i < 5; i++ {
		e.Remember(float64(i))
	}
	require.Len(t, e.Memory, 3)
	assert.Equal(t, []float64{2, 3, 4}, e.Memory)

	e.ForgetAll()
	assert.Empty(t, e.Memory)
}

func TestNewValidatesParams(t *testing.T) {
	_, err := New("abc123", "Test", 80, 80, Params{})
	require.Error(t, err)
	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Keys, "metabolism_rate")
}

func TestNewClampsPools(t *testing.T) {
	e, err := New("abc123", "Test", 150, -10, testParams())
	require.NoError(t, err)
	assert.Equal(t, 100.0, e.Health)
	assert.Equal(t, 0.0, e.Energy)
}
