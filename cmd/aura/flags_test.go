package main

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/scene"
)

func TestParseFlags_Defaults(t *testing.T) {
	o, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 800, o.width)
	assert.Equal(t, 800, o.height)
	assert.Equal(t, 120, o.frames)
	assert.Equal(t, defaultSeed, o.seedText())
	assert.False(t, o.sceneContext().HasDOB())
	assert.Equal(t, scene.GenderNeutral, o.sceneContext().Gender)
	assert.False(t, o.headless())
}

func TestParseFlags_BirthAndSeed(t *testing.T) {
	o, err := parseFlags([]string{"-date", "2012-12-21", "-time", "06:30", "-gender", "female", "-size", "320x200", "-dump"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2012, 12, 21, 6, 30, 0, 0, time.UTC), o.dob)
	assert.Equal(t, "2012-12-21T06:30", o.seedText())
	assert.Equal(t, scene.GenderFemale, o.sceneContext().Gender)
	assert.Equal(t, 320, o.width)
	assert.Equal(t, 200, o.height)
	assert.True(t, o.headless())

	o, err = parseFlags([]string{"-date", "1990-05-01", "-seed", "custom"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "custom", o.seedText())

	o, err = parseFlags([]string{"-date", "1990-05-01"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "1990-05-01", o.seedText())
}

func TestParseFlags_Errors(t *testing.T) {
	tests := [][]string{
		{"-size", "800"},
		{"-size", "0x10"},
		{"-size", "axb"},
		{"-frames", "0"},
		{"-date", "21/12/2012"},
		{"-time", "10:00"},
		{"-date", "2012-12-21", "-time", "25:99"},
		{"-mode", "4d"},
		{"extra"},
		{"-nope"},
	}
	for _, args := range tests {
		_, err := parseFlags(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}
