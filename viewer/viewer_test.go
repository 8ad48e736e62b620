package viewer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/dungeon"
	"github.com/katalvlaran/cavern/viewer"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 24)

	return ss
}

func newViewer(t *testing.T) (*viewer.Viewer, tcell.Screen) {
	t.Helper()
	d, err := dungeon.New(context.Background(), 20, 30, 2, dungeon.Cave, dungeon.WithSeed(3))
	require.NoError(t, err)
	screen := newSimScreen(t)
	v, err := viewer.New(screen, d, nil)
	require.NoError(t, err)

	return v, screen
}

// line reads screen row y back as a string.
func line(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}

	return sb.String()
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestNew_NoFloors(t *testing.T) {
	_, err := viewer.New(newSimScreen(t), &dungeon.Dungeon{}, nil)
	assert.ErrorIs(t, err, viewer.ErrNoFloors)
}

func TestDraw_FloorAndStatus(t *testing.T) {
	v, screen := newViewer(t)
	v.Draw()

	status := line(screen, 23)
	assert.Contains(t, status, "floor 1/2")
	assert.Contains(t, status, "30x20")
	assert.Contains(t, status, "cave")

	var all strings.Builder
	for y := 0; y < 20; y++ {
		all.WriteString(line(screen, y))
	}
	assert.Contains(t, all.String(), "EN", "entrance glyph is drawn")
	assert.Contains(t, all.String(), "EX", "exit glyph is drawn")
}

func TestHandleKey_Paging(t *testing.T) {
	v, screen := newViewer(t)

	assert.False(t, v.HandleKey(key('n')))
	assert.Equal(t, 1, v.Floor())
	v.Draw()
	assert.Contains(t, line(screen, 23), "floor 2/2")

	v.HandleKey(key('n'))
	assert.Equal(t, 0, v.Floor(), "paging wraps")
	v.HandleKey(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone))
	assert.Equal(t, 1, v.Floor())
}

func TestHandleKey_Scroll(t *testing.T) {
	v, _ := newViewer(t)

	v.HandleKey(key('l'))
	v.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	x, y := v.Offset()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	for i := 0; i < 100; i++ {
		v.HandleKey(key('h'))
	}
	x, _ = v.Offset()
	assert.Equal(t, 0, x, "scrolling stops at the edge")

	v.HandleKey(key('g'))
	x, y = v.Offset()
	assert.Zero(t, x+y)
}

func TestHandleKey_Quit(t *testing.T) {
	v, _ := newViewer(t)
	assert.True(t, v.HandleKey(key('q')))
	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
