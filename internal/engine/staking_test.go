package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKellyStakePositiveEdge(t *testing.T) {
	// p=0.55 at 2.5: kelly = (1.5*0.55 - 0.45)/1.5 = 0.25
	stake := KellyStake(0.55, 2.5, 1.0)
	assert.InDelta(t, 0.25, stake, 1e-9)

	// Quarter-Kelly scales linearly.
	assert.InDelta(t, 0.0625, KellyStake(0.55, 2.5, 0.25), 1e-9)
}

func TestKellyStakeNoEdge(t *testing.T) {
	// p=0.45 at 1.8 is negative EV.
	assert.Zero(t, KellyStake(0.45, 1.8, 0.5))
}

func TestKellyStakeDegenerateInputs(t *testing.T) {
	assert.Zero(t, KellyStake(0, 2.5, 0.5))
	assert.Zero(t, KellyStake(1, 2.5, 0.5))
	assert.Zero(t, KellyStake(0.55, 1.0, 0.5))
	assert.Zero(t, KellyStake(0.55, 2.5, 0))
}
