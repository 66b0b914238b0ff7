package client

import (
	"fmt"
	"time"

	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/loop"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state transitions, do a full terminal clear so UI elements
	// from the previous state don't persist on screen.
	if c.state.GameState != c.state.prevGameState {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
	}

	c.canvas.Clear()

	snap := c.state.Snapshot
	if snap != nil && c.state.GameState != GameStateStart {
		c.drawWorld(snap)
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter, c.palette)

	// Draw border when the terminal has room around the play area
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snap)

	return c.chunkWriter.Flush()
}

// drawWorld fills the entity rectangles of a snapshot into the canvas.
func (c *Client) drawWorld(snap *loop.Snapshot) {
	for _, p := range snap.Projectiles {
		c.fillCentered(p.X, p.Y, p.Size, draw.ColorProjectile)
	}

	for _, e := range snap.Enemies {
		color := draw.ColorEnemy
		if e.Flashing {
			color = draw.ColorEnemyFlash
		}
		c.fillCentered(e.X, e.Y, e.Size, color)
	}

	color := draw.ColorPlayer
	if snap.Player.Highlighted {
		color = draw.ColorPlayerHit
	}
	c.fillCentered(snap.Player.X, snap.Player.Y, snap.Player.Size, color)
}

func (c *Client) fillCentered(x, y, size float64, color draw.Color) {
	c.canvas.FillRect(x-size/2, y-size/2, size, size, color)
}

// drawUI draws the overlay for the current game phase.
func (c *Client) drawUI(snap *loop.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		if snap != nil {
			c.drawPlayingHUD(termWidth, snap)
		}
	case GameStateDead:
		if snap != nil {
			c.drawPlayingHUD(termWidth, snap)
		}
		c.drawDeadScreen(centerX, centerY, snap)
	}
}

// writeText writes plain text at a canvas position and marks the cells it
// covers so the canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, text string, style func(string) string) {
	if style != nil {
		c.chunkWriter.WriteAt(col, row, style(text))
	} else {
		c.chunkWriter.WriteAt(col, row, text)
	}
	c.canvas.MarkTextDirty(col, row, len([]rune(text)))
}

// writeCentered writes lines centered on centerX starting at row.
func (c *Client) writeCentered(centerX, row int, lines []string, style func(string) string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	for i, line := range lines {
		c.writeText(centerX-width/2, row+i, line, style)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`    _   ___ ___ _  _   _   `,
		`   /_\ | _ \ __| \| | /_\  `,
		`  / _ \|   / _|| .' |/ _ \ `,
		` /_/ \_\_|_\___|_|\_/_/ \_\`,
	}
	titleStartY := centerY - 7
	c.writeCentered(centerX, titleStartY, titleArt, c.palette.Banner)

	subtitle := "~ Survive the swarm ~"
	c.writeCentered(centerX, titleStartY+len(titleArt)+1, []string{subtitle}, nil)

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, []string{"Controls"}, c.palette.HUD)
	controlLines := []string{
		"W A S D / arrows . . Move",
		"Weapon fires on its own ",
		"Q  . . . . . . . . . Quit",
	}
	c.writeCentered(centerX, controlsY+1, controlLines, nil)

	// Blinking start prompt
	prompt := ">>  Press SPACE to Start  <<"
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, []string{prompt}, c.palette.HUD)
	} else {
		c.canvas.MarkTextDirty(centerX-len(prompt)/2, controlsY+len(controlLines)+2, len(prompt))
	}
}

// drawPlayingHUD draws the status line with the player's numbers.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth int, snap *loop.Snapshot) {
	st := snap.Stats

	status := fmt.Sprintf("HP %-3d DMG %-3d SPD %-4.0f", st.Health, st.Damage, st.MovementSpeed)
	c.writeText(2, 1, status, c.palette.HUD)

	info := fmt.Sprintf("Enemies %-2d Shots %-3d %6.1fs", st.Enemies, st.Projectiles, snap.Time)
	c.writeText(termWidth-len(info), 1, info, nil)
}

// drawDeadScreen draws the game over screen.
func (c *Client) drawDeadScreen(centerX, centerY int, snap *loop.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
	titleStartY := centerY - 5
	c.writeCentered(centerX, titleStartY, titleArt, c.palette.Banner)

	if snap != nil {
		survived := fmt.Sprintf("Survived %.1f seconds", snap.Time)
		c.writeCentered(centerX, titleStartY+len(titleArt)+1, []string{survived}, nil)
	}

	prompt := ">>  Press SPACE to Restart  <<"
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, titleStartY+len(titleArt)+3, []string{prompt}, c.palette.HUD)
	} else {
		c.canvas.MarkTextDirty(centerX-len(prompt)/2, titleStartY+len(titleArt)+3, len(prompt))
	}
}
