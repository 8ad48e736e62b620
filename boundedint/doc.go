// Package boundedint provides an integer type whose valid range is fixed by
// its type parameter.
//
// What:
//
//   - Int[B] stores a plain int that always lies in [B.Low(), B.High()].
//   - Bounds are carried by zero-size marker types (FloorSize, Coord), so
//     Int[FloorSize] and Int[Coord] are distinct types at compile time while the
//     range itself is validated at runtime on every construction path.
//   - Checked arithmetic (Add, Sub) reports overflow/underflow instead of
//     truncating; saturating arithmetic (SaturatingAdd, SaturatingSub) and
//     NewClamped are the only operations allowed to clamp.
//
// Why:
//
//   - Row, column, width and height values in a floor grid must never escape
//     the floor bounds without an explicit, checked conversion.
//
// Complexity:
//
//   - Every operation is O(1) time and O(1) space.
//
// Errors:
//
//   - ErrTooLow     value below the lower bound (wrapped in *RangeError).
//   - ErrTooHigh    value above the upper bound (wrapped in *RangeError).
//   - ErrOverflow   checked addition left the range.
//   - ErrUnderflow  checked subtraction left the range.
package boundedint
