package namegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		name := g.Name()
		assert.NotEmpty(t, name)
		assert.LessOrEqual(t, len(name), 12)
	}
}

func TestNameIsSeeded(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Name(), b.Name())
	}
}
