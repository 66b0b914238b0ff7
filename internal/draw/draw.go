// Package draw renders to an ANSI terminal: a colored half-block canvas,
// a chunked output writer and cursor helpers.
package draw

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a canvas pixel color. The zero value is an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorPlayer
	ColorPlayerHit
	ColorEnemy
	ColorEnemyFlash
	ColorProjectile
	ColorBorder

	numColors
)
