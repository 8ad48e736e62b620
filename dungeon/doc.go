// Package dungeon builds multi-floor dungeons on top of package floor.
//
// New generates every floor in parallel with an errgroup bounded by
// WithWorkers. Each floor draws from its own seeded stream, so a dungeon is
// reproducible from its parent seed regardless of worker count.
//
// A Dungeon serializes to JSON (ToJSON/FromJSON), to MessagePack
// (ToMsgPack/FromMsgPack) and to an animated GIF with one frame per floor
// (ToGIF). WithGIFOutput additionally records every generation step of
// every floor to dir/floor_{id}.gif.
//
// Only the Cave type is generated; Forest is reserved.
package dungeon
