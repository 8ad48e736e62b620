package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/cavern/dungeon"
	"github.com/katalvlaran/cavern/tile"
)

// ErrNoFloors indicates a dungeon with nothing to show.
var ErrNoFloors = errors.New("viewer: dungeon has no floors")

// statusRows is the number of screen rows kept for the status line.
const statusRows = 1

// Viewer draws one floor of a dungeon and pages between floors.
type Viewer struct {
	screen tcell.Screen
	d      *dungeon.Dungeon
	log    *slog.Logger

	floor int
	// offX and offY scroll the floor, in tiles.
	offX, offY int
}

// New returns a Viewer on an initialized screen.
func New(screen tcell.Screen, d *dungeon.Dungeon, log *slog.Logger) (*Viewer, error) {
	if d == nil || len(d.Floors) == 0 {
		return nil, ErrNoFloors
	}
	if log == nil {
		log = slog.Default()
	}

	return &Viewer{screen: screen, d: d, log: log}, nil
}

// Floor returns the index of the floor on screen.
func (v *Viewer) Floor() int { return v.floor }

// Offset returns the scroll position in tiles.
func (v *Viewer) Offset() (int, int) { return v.offX, v.offY }

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	for {
		v.Draw()
		v.screen.Show()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return
			}
		case nil:
			return
		}
	}
}

// HandleKey applies one key press and reports whether to quit.
//
//	n, PgDn  next floor       p, PgUp  previous floor
//	arrows, hjkl  scroll      g  back to the top left
//	q, Esc   quit
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyPgDn:
		v.page(1)
	case tcell.KeyPgUp:
		v.page(-1)
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'n', ' ':
			v.page(1)
		case 'p':
			v.page(-1)
		case 'k':
			v.scroll(0, -1)
		case 'j':
			v.scroll(0, 1)
		case 'h':
			v.scroll(-1, 0)
		case 'l':
			v.scroll(1, 0)
		case 'g':
			v.offX, v.offY = 0, 0
		}
	}

	return false
}

func (v *Viewer) page(delta int) {
	n := len(v.d.Floors)
	v.floor = ((v.floor+delta)%n + n) % n
	v.offX, v.offY = 0, 0
	v.log.Debug("floor shown", "floor", v.floor)
}

// scroll moves the view, keeping at least one tile on screen.
func (v *Viewer) scroll(dx, dy int) {
	f := v.d.Floors[v.floor]
	v.offX = min(max(v.offX+dx, 0), f.Width.Value()-1)
	v.offY = min(max(v.offY+dy, 0), f.Height.Value()-1)
}

// Draw renders the current floor and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	sw, sh := v.screen.Size()
	f := v.d.Floors[v.floor]

	for r, row := range f.Tiles.Rows() {
		sy := r - v.offY
		if sy < 0 {
			continue
		}
		if sy >= sh-statusRows {
			break
		}
		sx := 0
		for c := v.offX; c < len(row) && sx < sw; c++ {
			sx = v.putGlyph(sx, sy, row[c].Glyph(), styleOf(row[c]))
		}
	}

	status := fmt.Sprintf(" floor %d/%d  %dx%d  %s  [n]ext [p]rev hjkl/arrows [q]uit",
		v.floor+1, len(v.d.Floors), f.Width.Value(), f.Height.Value(), v.d.Type)
	status = runewidth.Truncate(status, sw, "…")
	v.putGlyph(0, sh-1, status, tcell.StyleDefault.Reverse(true))
}

// putGlyph writes s from (x, y) and returns the column after it.
func (v *Viewer) putGlyph(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}

	return x
}

// styleOf colours a tile with its palette entry.
func styleOf(t tile.Tile) tcell.Style {
	i := int(t.AsU8()) * 3
	c := tcell.NewRGBColor(int32(tile.ColorMap[i]), int32(tile.ColorMap[i+1]), int32(tile.ColorMap[i+2]))
	switch t.Kind {
	case tile.Wall, tile.Empty:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}

	return tcell.StyleDefault.Foreground(c).Bold(true)
}
