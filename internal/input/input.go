// Package input turns the raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/arena/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only repeat held keys, so it must span the gap between repeats.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Space   bool
	Enter   bool
	Closed  bool // The byte stream has ended
	Pressed []byte
}

// Intent returns the movement intent of the held direction keys.
func (in Input) Intent() object.Intent {
	return object.IntentFromKeys(in.Up, in.Down, in.Left, in.Right)
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

// Reset forgets every held key, so a key used to leave one screen does not
// carry over into the next.
func Reset(s *Stream) {
	s.state = keyState{}
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	// Keys are "pressed" if seen within hold duration
	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Closed:  s.closed,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
