package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicID_StableAndDistinct(t *testing.T) {
	a := DeterministicID("road.1", "trafficArea")
	b := DeterministicID("road.1", "trafficArea")
	c := DeterministicID("road.1", "auxiliaryTrafficArea")
	d := DeterministicID("road.2", "trafficArea")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestRandomID_Unique(t *testing.T) {
	a := RandomID()
	b := RandomID()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "UUID_")
}
