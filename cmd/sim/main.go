// Command sim runs the simulation headless for a fixed number of frames with
// scripted input and logs every event.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/logging"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/object"
)

const (
	defaultFrames = 600
	defaultDelta  = 1.0 / 60
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sim error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.FromEnv(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	frames, err := config.GetEnvInt("ARENA_FRAMES", defaultFrames)
	if err != nil {
		return err
	}
	delta, err := config.GetEnvFloat("ARENA_DELTA", defaultDelta)
	if err != nil {
		return err
	}
	script, err := newScript(config.GetEnv("ARENA_INPUT", "none"), tuning.Seed)
	if err != nil {
		return err
	}

	state := loop.NewState(tuning, loop.NewRNG(tuning.Seed))
	logger.Info("run started", "run", state.RunID, "frames", frames, "delta", delta, "seed", tuning.Seed)

	kills := simulate(state, frames, delta, script, logger)

	logger.Info("run finished",
		"run", state.RunID,
		"frames", state.Frame,
		"t", fmt.Sprintf("%.3f", state.Now),
		"hp", state.Player.HP,
		"enemies", state.Enemies.Len(),
		"kills", kills,
		"game_over", state.GameOver(),
	)
	return nil
}

// simulate steps the state until frames run out or the game is over and
// returns the number of enemies killed.
func simulate(state *loop.State, frames int, delta float64, script func(frame int) object.Intent, logger *log.Logger) int {
	kills := 0
	for i := 0; i < frames && !state.GameOver(); i++ {
		loop.Step(state, delta, script(i))
		for _, e := range state.DrainEvents() {
			if e.Kind == loop.EventEnemyKilled {
				kills++
			}
			logging.LogEvent(logger, e)
		}
	}
	return kills
}

// circle lists the eight directions in clockwise order.
var circle = []object.Intent{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// Frames each scripted direction is held for.
const (
	circleHold = 30
	randomHold = 15
)

// newScript returns the intent source for an ARENA_INPUT mode.
func newScript(mode string, seed int64) (func(frame int) object.Intent, error) {
	switch mode {
	case "none":
		return func(int) object.Intent { return object.Intent{} }, nil
	case "circle":
		return func(frame int) object.Intent {
			return circle[frame/circleHold%len(circle)]
		}, nil
	case "random":
		rng := loop.NewRNG(seed + 1)
		var current object.Intent
		return func(frame int) object.Intent {
			if frame%randomHold == 0 {
				current = randomIntent(rng)
			}
			return current
		}, nil
	default:
		return nil, fmt.Errorf("ARENA_INPUT: unknown mode %q (want none, circle or random)", mode)
	}
}

func randomIntent(rng *rand.Rand) object.Intent {
	return object.Intent{
		X: float64(rng.IntN(3) - 1),
		Y: float64(rng.IntN(3) - 1),
	}
}
