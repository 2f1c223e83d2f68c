package main

import (
	"testing"

	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelIndex(t *testing.T) {
	levels := []*leveldata.Level{{Name: "01_tower"}, {Name: "02_icefall"}}

	i, err := levelIndex(levels, "")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = levelIndex(levels, "02_icefall")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = levelIndex(levels, "03_missing")
	assert.Error(t, err)
}
