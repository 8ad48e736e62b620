// Package viewer is an interactive tcell terminal view of a generated
// dungeon. Each tile is drawn with its two-character glyph, coloured from
// the tile palette; a status line names the floor and the key bindings.
//
// The Viewer never owns the screen: callers create, Init and Fini it, which
// lets tests drive a tcell simulation screen.
package viewer
