// Package render turns floors into pictures: paletted images, animated GIFs
// and plain text.
//
// Every image uses tile.Palette, so a pixel value is the tile's palette
// index and the GIF encoder never quantizes.
//
// Recorder implements floor.FrameSink. Attach it with floor.WithFrameSink
// to capture every generation step, then write one GIF per floor.
package render
