// Package viz hosts the sphere in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: bubbletea model driving one sphere from tick messages
//   - [Canvas]: Braille-based pixel canvas with per-cell heat
//   - [BrailleSurface]: render.Surface that draws onto a Canvas
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	V     - Toggle voice mode
//	1/2/3 - Size tier
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// Mouse motion over the sphere hovers it; a left-button drag spins it.
// The backdrop glow is never drawn here: at dot resolution it would light
// the whole canvas.
package viz
