package client

import "github.com/tomz197/arena/internal/loop"

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Player ran out of HP, show restart prompt
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ClientState holds presentation state owned by the Client.
type ClientState struct {
	GameState     GameState
	prevGameState GameState
	Snapshot      *loop.Snapshot // Latest snapshot received from the server
	Running       bool           // Client loop running
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
	}
}
