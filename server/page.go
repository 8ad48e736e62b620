package server

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/katalvlaran/cavern/dungeon"
)

// indexPage lists the floors and embeds the dungeon animation.
func indexPage(d *dungeon.Dungeon) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>cavern</title>`+
			`<style>body{font-family:monospace;background:#111;color:#ddd}img{image-rendering:pixelated;width:50%}</style>`+
			`</head><body>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>%s dungeon, %d floors</h1><img src="/dungeon.gif" alt="dungeon"><ul>`,
			templ.EscapeString(d.Type.String()), len(d.Floors)); err != nil {
			return err
		}
		for _, f := range d.Floors {
			if _, err := fmt.Fprintf(w, `<li><a href="/floors/%d">floor %d</a> %dx%d <a href="/floors/%d/gif">gif</a></li>`,
				f.ID, f.ID, f.Width.Value(), f.Height.Value(), f.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul><pre id="floor"></pre><script>`+streamScript+`</script></body></html>`)

		return err
	})
}

// streamScript shows floors from the websocket as text as they arrive.
const streamScript = `
const pre = document.getElementById("floor");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => { const m = JSON.parse(ev.data); if (m.rows) pre.textContent = m.rows.join("\n"); };
`
