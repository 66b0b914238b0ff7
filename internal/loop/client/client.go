// Package client renders simulation snapshots to a terminal and turns key
// presses into movement intents for the server.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/loop/server"
	"github.com/tomz197/arena/internal/object"
)

// Client handles rendering and input for a terminal.
type Client struct {
	server       server.GameServer
	state        *ClientState
	canvas       *draw.Canvas
	palette      *draw.Palette
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	aspect       float64 // Play area width / height
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Renderer     *lipgloss.Renderer // Decides the color profile; defaults to one for the writer
	FPS          int
}

// NewClient creates a new client for the given server. The play area size is
// taken from t; r and w are the terminal input and output.
func NewClient(gs server.GameServer, t config.Tuning, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultClientFPS
	}

	width, height := float64(t.Width), float64(t.Height)
	aspect := width / height

	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, aspect)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, width, height)
	canvas.SetOffset(offsetCol, offsetRow)

	var stream *input.Stream
	if r != nil {
		stream = input.StartStream(r)
	}

	return &Client{
		server:       gs,
		state:        NewClientState(),
		canvas:       canvas,
		palette:      draw.NewPalette(renderer),
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  stream,
		termSizeFunc: termSizeFunc,
		frameTime:    time.Second / time.Duration(fps),
		aspect:       aspect,
	}
}

// Run starts the client loop. Blocks until the player quits, the input ends
// or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()

		c.processInput(c.readInput())
		c.update()
		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < c.frameTime {
			time.Sleep(c.frameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// readInput polls the key state; without an input stream nothing is pressed.
func (c *Client) readInput() input.Input {
	if c.inputStream == nil {
		return input.Input{}
	}
	return input.ReadInput(c.inputStream)
}

// processInput applies one frame of key state.
func (c *Client) processInput(in input.Input) {
	if in.Quit || in.Closed {
		c.state.Running = false
		return
	}

	switch c.state.GameState {
	case GameStateStart, GameStateDead:
		if in.Space || in.Enter {
			c.startGame()
		}
	case GameStatePlaying:
		c.server.SendInput(in.Intent())
	}
}

// update pulls the latest snapshot and follows the game over transition.
func (c *Client) update() {
	snap := c.server.Snapshot()
	c.state.Snapshot = snap

	if c.state.GameState == GameStatePlaying && snap != nil && snap.GameOver {
		c.state.GameState = GameStateDead
		c.server.SendInput(object.Intent{})
	}
}

// startGame starts or restarts the run.
func (c *Client) startGame() {
	if c.inputStream != nil {
		input.Reset(c.inputStream)
	}
	c.server.Restart()
	c.state.GameState = GameStatePlaying
}

// updateScreen handles terminal resize, keeping the play area's aspect ratio.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, c.aspect)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitTermSize picks the largest render area with the play area's aspect ratio
// (one column is as wide as two sub-pixel rows are tall) and the offset that
// centers it.
func fitTermSize(termWidth, termHeight int, aspect float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if float64(renderWidth) > float64(renderHeight)*2*aspect {
		renderWidth = int(float64(renderHeight) * 2 * aspect)
	} else {
		renderHeight = int(float64(renderWidth) / aspect / 2)
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
