package draw

import "github.com/charmbracelet/lipgloss"

// Palette maps canvas colors to terminal colors and caches the rendered
// form of every cell combination.
type Palette struct {
	renderer *lipgloss.Renderer
	colors   [numColors]lipgloss.TerminalColor
	cells    map[cellKey]string
	hud      lipgloss.Style
	banner   lipgloss.Style
}

// cellKey identifies a terminal cell by the colors of its two sub-pixels.
type cellKey struct {
	top, bottom Color
}

// NewPalette creates the game palette for the given renderer. The renderer
// decides the color profile (and drops colors entirely on dumb outputs).
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		renderer: r,
		cells:    make(map[cellKey]string),
	}
	p.colors[ColorPlayer] = lipgloss.Color("#33cc33")
	p.colors[ColorPlayerHit] = lipgloss.Color("#ffdd00")
	p.colors[ColorEnemy] = lipgloss.Color("#ff3333")
	p.colors[ColorEnemyFlash] = lipgloss.Color("#ffdd00")
	p.colors[ColorProjectile] = lipgloss.Color("#ffffff")
	p.colors[ColorBorder] = lipgloss.Color("#666666")

	p.hud = r.NewStyle().Bold(true)
	p.banner = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffdd00"))
	return p
}

// Cell returns the rendered terminal cell for a pair of sub-pixels.
func (p *Palette) Cell(top, bottom Color) string {
	key := cellKey{top, bottom}
	if s, ok := p.cells[key]; ok {
		return s
	}

	var s string
	switch {
	case top == ColorNone && bottom == ColorNone:
		s = string(BlockEmpty)
	case top == bottom:
		s = p.renderer.NewStyle().Foreground(p.colors[top]).Render(string(BlockFull))
	case bottom == ColorNone:
		s = p.renderer.NewStyle().Foreground(p.colors[top]).Render(string(BlockUpperHalf))
	case top == ColorNone:
		s = p.renderer.NewStyle().Foreground(p.colors[bottom]).Render(string(BlockLowerHalf))
	default:
		s = p.renderer.NewStyle().
			Foreground(p.colors[top]).
			Background(p.colors[bottom]).
			Render(string(BlockUpperHalf))
	}
	p.cells[key] = s
	return s
}

// HUD styles status line text.
func (p *Palette) HUD(s string) string {
	return p.hud.Render(s)
}

// Banner styles screen titles.
func (p *Palette) Banner(s string) string {
	return p.banner.Render(s)
}
