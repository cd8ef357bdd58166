package export_test

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/singer-songwriter/game-of-life/internal/export"
	"github.com/singer-songwriter/game-of-life/pkg/life"
)

func newEngine(t *testing.T) *life.Engine {
	t.Helper()
	e, err := life.New(life.Config{
		Width:    16,
		Height:   16,
		Rule:     life.RuleConway,
		Boundary: life.BoundaryToroidal,
		Pattern:  "glider",
		Seed:     3,
	})
	require.NoError(t, err)
	return e
}

func TestRunCollectsFramesAndMetrics(t *testing.T) {
	anim, metrics := export.Run(newEngine(t), 10, 100*time.Millisecond)

	require.Equal(t, 11, anim.FrameCount(), "initial state plus one frame per generation")
	require.Len(t, metrics, 11)
	require.Equal(t, 0, metrics[0].Generation)
	require.Equal(t, 10, metrics[10].Generation)
	require.Equal(t, 5, metrics[0].Population, "glider seeds five cells")
}

func TestWriteGIFRoundTrips(t *testing.T) {
	anim, _ := export.Run(newEngine(t), 5, 120*time.Millisecond)
	path := filepath.Join(t.TempDir(), "run.gif")

	require.NoError(t, anim.Write(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, decoded.Image, 6)
	require.Equal(t, 12, decoded.Delay[0], "120ms is 12 hundredths of a second")
}

func TestWriteAVIProducesFile(t *testing.T) {
	anim, _ := export.Run(newEngine(t), 4, 50*time.Millisecond)
	path := filepath.Join(t.TempDir(), "run.avi")

	require.NoError(t, anim.Write(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestWriteUnsupportedFormat(t *testing.T) {
	anim, _ := export.Run(newEngine(t), 1, time.Millisecond)
	err := anim.Write(filepath.Join(t.TempDir(), "run.mov"))
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestWriteChart(t *testing.T) {
	// The r-pentomino's population varies, which a flat glider's does not;
	// the chart renderer rejects series with a zero data range.
	e, err := life.New(life.Config{
		Width:    24,
		Height:   24,
		Rule:     life.RuleConway,
		Boundary: life.BoundaryToroidal,
		Pattern:  "r_pentomino",
		Seed:     3,
	})
	require.NoError(t, err)
	_, metrics := export.Run(e, 20, 100*time.Millisecond)
	path := filepath.Join(t.TempDir(), "population.png")

	require.NoError(t, export.WriteChart(path, metrics))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Error(t, export.WriteChart(path, metrics[:1]), "a single sample cannot be charted")
}
