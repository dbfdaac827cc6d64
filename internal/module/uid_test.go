package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeUIDIsDeterministicWithinProcess(t *testing.T) {
	a := ComputeUID("main")
	b := ComputeUID("main")
	assert.Equal(t, a, b)
}

func TestComputeUIDDiffersAcrossIdentifiers(t *testing.T) {
	assert.NotEqual(t, ComputeUID("main"), ComputeUID("util"))
}
