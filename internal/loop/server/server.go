// Package server hosts the simulation: it owns the State, steps it at a fixed
// rate and publishes immutable snapshots for the presentation layer.
package server

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/object"
)

//go:generate go tool mockgen -destination=./mocks/game_server_mock.go -package=mocks . GameServer

// GameServer is the interface the client uses to talk to the simulation host.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	SendInput(intent object.Intent)
	Snapshot() *loop.Snapshot
	Restart()
}

// eventBufferSize is how many undelivered events are kept before new ones are dropped.
const eventBufferSize = 256

// Server steps the simulation and publishes snapshots.
// The whole frame (Step and snapshot build) runs under mu, so no observer
// ever sees a partially updated state.
type Server struct {
	tuning config.Tuning
	logger *log.Logger
	rng    *rand.Rand

	mu       sync.Mutex
	state    *loop.State
	active   bool // False until the first Restart; an idle run is not stepped
	snapshot atomic.Pointer[loop.Snapshot]
	intent   atomic.Pointer[object.Intent]
	events   chan loop.Event
	dropped  int
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates a server with an idle run and publishes its first snapshot.
// The run starts moving on the first Restart.
func NewServer(t config.Tuning, logger *log.Logger) *Server {
	s := &Server{
		tuning: t,
		logger: logger,
		rng:    loop.NewRNG(t.Seed),
		events: make(chan loop.Event, eventBufferSize),
	}
	s.intent.Store(&object.Intent{})
	s.reset(false)
	return s
}

// Run ticks the simulation at the configured rate until ctx is cancelled.
// The events channel is closed when Run returns.
func (s *Server) Run(ctx context.Context) error {
	defer close(s.events)

	tickTime := time.Second / time.Duration(s.tuning.TickRate)
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("server stopped", "reason", context.Cause(ctx))
			return nil
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		s.Tick(delta)

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < tickTime {
			time.Sleep(tickTime - elapsed)
		}
	}
}

// Tick runs one frame of delta seconds with the latest input, then publishes
// the snapshot and the frame's events. Deltas longer than MaxFrameDelta are
// shortened to it. Once the game is over the state is no longer stepped.
func (s *Server) Tick(delta float64) {
	delta = min(delta, s.tuning.MaxFrameDelta)
	intent := *s.intent.Load()

	s.mu.Lock()
	wasOver := s.state.GameOver()
	if s.active && !wasOver {
		loop.Step(s.state, delta, intent)
	}
	events := s.state.DrainEvents()
	snap := s.state.Snapshot()
	s.mu.Unlock()

	s.snapshot.Store(snap)

	if !wasOver && snap.GameOver {
		s.logger.Info("game over", "run", snap.RunID, "frame", snap.Frame, "t", snap.Time)
	}
	s.publish(events)
}

// SendInput sets the intent used by the following frames. It never blocks.
func (s *Server) SendInput(intent object.Intent) {
	s.intent.Store(&intent)
}

// Snapshot returns the latest published snapshot.
func (s *Server) Snapshot() *loop.Snapshot {
	return s.snapshot.Load()
}

// Restart replaces the current run with a fresh one and starts stepping it.
func (s *Server) Restart() {
	s.intent.Store(&object.Intent{})
	s.reset(true)
}

// Events delivers the events of every frame in order.
func (s *Server) Events() <-chan loop.Event {
	return s.events
}

// reset starts a new run and publishes its initial snapshot.
func (s *Server) reset(active bool) {
	s.mu.Lock()
	s.state = loop.NewState(s.tuning, s.rng)
	s.active = active
	snap := s.state.Snapshot()
	s.mu.Unlock()

	s.snapshot.Store(snap)
	if active {
		s.logger.Info("run started", "run", snap.RunID, "width", s.tuning.Width, "height", s.tuning.Height)
	}
}

// publish forwards events without blocking; events that do not fit are dropped.
func (s *Server) publish(events []loop.Event) {
	for _, e := range events {
		select {
		case s.events <- e:
		default:
			s.dropped++
			s.logger.Debug("event dropped", "kind", e.Kind, "dropped", s.dropped)
		}
	}
}
