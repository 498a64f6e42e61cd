package updater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

func TestClassify_BothNeighborsIsStrict(t *testing.T) {
	pts := []template.Point{
		{Grade: bigrade.Bigrade{X: 0, Y: 1}}, // L
		{Grade: bigrade.Bigrade{X: 1, Y: 0}}, // D
		{Grade: bigrade.Bigrade{X: 1, Y: 1}}, // A
	}
	assert.Equal(t, updater.Strict, updater.Classify(pts, 2))
}

func TestClassify_OnlyBelowNeighborIsMerge(t *testing.T) {
	pts := []template.Point{
		{Grade: bigrade.Bigrade{X: 1, Y: 0}}, // D
		{Grade: bigrade.Bigrade{X: 1, Y: 1}}, // A
	}
	assert.Equal(t, updater.NonStrictMerge, updater.Classify(pts, 1))
}

func TestClassify_NoNeighborsIsSplit(t *testing.T) {
	pts := []template.Point{
		{Grade: bigrade.Bigrade{X: 1, Y: 1}}, // A, alone
	}
	assert.Equal(t, updater.NonStrictSplit, updater.Classify(pts, 0))
}
