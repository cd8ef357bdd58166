package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

func TestConfigEngineDefaults(t *testing.T) {
	e, err := NewConfig().Engine()
	require.NoError(t, err)

	size := e.Size()
	require.Equal(t, 50, size.W)
	require.Equal(t, 50, size.H)
	require.Equal(t, life.RuleConway, e.Rule())
	require.Equal(t, life.BoundaryFinite, e.Boundary())
}

func TestConfigWidthHeightOverrideSize(t *testing.T) {
	c := NewConfig()
	c.Size = 50
	c.Width = 80
	c.Height = 20
	c.Toroidal = true
	c.Rules = "graduated"

	e, err := c.Engine()
	require.NoError(t, err)
	require.Equal(t, 80, e.Size().W)
	require.Equal(t, 20, e.Size().H)
	require.Equal(t, life.BoundaryToroidal, e.Boundary())
	require.Equal(t, life.RuleGraduated, e.Rule())
}

func TestConfigRejectsUnknownNames(t *testing.T) {
	c := NewConfig()
	c.Rules = "anarchy"
	_, err := c.Engine()
	require.ErrorIs(t, err, life.ErrUnknownRule)

	c = NewConfig()
	c.Pattern = "spaceship"
	_, err = c.Engine()
	require.ErrorIs(t, err, life.ErrUnknownPattern)
}

func TestConfigInterval(t *testing.T) {
	c := NewConfig()
	require.Equal(t, 100*time.Millisecond, c.Interval())

	c.IntervalMS = 0
	require.Equal(t, time.Millisecond, c.Interval(), "non-positive intervals clamp up")
}
