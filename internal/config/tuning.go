package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Play area
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Host timing
const (
	DefaultTickRate      = 60
	DefaultClientFPS     = 60
	DefaultMaxFrameDelta = 0.25 // Seconds; longer stalls are simulated as this much time
)

// Tuning holds every tunable game parameter. Durations are simulated seconds,
// distances are pixels of the play area.
type Tuning struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Seed   int64 `toml:"seed"` // 0 picks a time-based seed

	Player     PlayerTuning     `toml:"player"`
	Enemy      EnemyTuning      `toml:"enemy"`
	Projectile ProjectileTuning `toml:"projectile"`

	TickRate      int     `toml:"tick_rate"`
	ClientFPS     int     `toml:"client_fps"`
	MaxFrameDelta float64 `toml:"max_frame_delta"`
}

// PlayerTuning configures the player-controlled entity.
type PlayerTuning struct {
	Size            float64 `toml:"size"`
	HP              int     `toml:"hp"`
	Damage          int     `toml:"damage"`
	MaxSpeed        float64 `toml:"max_speed"`
	Acceleration    float64 `toml:"acceleration"`
	Friction        float64 `toml:"friction"`
	InvulnerableFor float64 `toml:"invulnerable_for"`
}

// EnemyTuning configures enemies and their spawner.
type EnemyTuning struct {
	Size          float64 `toml:"size"`
	HP            int     `toml:"hp"`
	Speed         float64 `toml:"speed"`
	Cap           int     `toml:"cap"`
	SpawnInterval float64 `toml:"spawn_interval"`
	SpawnDelay    float64 `toml:"spawn_delay"`
	FlashFor      float64 `toml:"flash_for"`
}

// ProjectileTuning configures the auto-firing weapon and its projectiles.
type ProjectileTuning struct {
	Size         float64 `toml:"size"`
	Speed        float64 `toml:"speed"`
	FireInterval float64 `toml:"fire_interval"`
	FireDelay    float64 `toml:"fire_delay"`
}

// Default returns the stock game tuning.
func Default() Tuning {
	return Tuning{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Player: PlayerTuning{
			Size:            35,
			HP:              5,
			Damage:          2,
			MaxSpeed:        300,
			Acceleration:    1200,
			Friction:        900,
			InvulnerableFor: 1.0,
		},
		Enemy: EnemyTuning{
			Size:          25,
			HP:            5,
			Speed:         200,
			Cap:           5,
			SpawnInterval: 1.0,
			SpawnDelay:    0.001,
			FlashFor:      0.1,
		},
		Projectile: ProjectileTuning{
			Size:         10,
			Speed:        600,
			FireInterval: 1.0,
			FireDelay:    0.001,
		},
		TickRate:      DefaultTickRate,
		ClientFPS:     DefaultClientFPS,
		MaxFrameDelta: DefaultMaxFrameDelta,
	}
}

// Load builds the tuning from defaults, the TOML file named by ARENA_CONFIG
// (if set) and ARENA_* environment overrides, then validates it.
func Load() (Tuning, error) {
	t := Default()

	if path := GetEnv("ARENA_CONFIG", ""); path != "" {
		if err := t.LoadFile(path); err != nil {
			return t, err
		}
	}
	if err := t.applyEnv(); err != nil {
		return t, err
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadFile overlays values from a TOML file. Keys not present keep their
// current value; unknown keys are an error.
func (t *Tuning) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return fmt.Errorf("load tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load tuning %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (t *Tuning) applyEnv() error {
	var errs []error
	var err error

	if t.Width, err = GetEnvInt("ARENA_WIDTH", t.Width); err != nil {
		errs = append(errs, err)
	}
	if t.Height, err = GetEnvInt("ARENA_HEIGHT", t.Height); err != nil {
		errs = append(errs, err)
	}
	if t.Seed, err = GetEnvInt64("ARENA_SEED", t.Seed); err != nil {
		errs = append(errs, err)
	}
	if t.TickRate, err = GetEnvInt("ARENA_TICK_RATE", t.TickRate); err != nil {
		errs = append(errs, err)
	}
	if t.ClientFPS, err = GetEnvInt("ARENA_FPS", t.ClientFPS); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate reports every out-of-range value, wrapped in ErrInvalidTuning.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...)))
		}
	}

	check(t.Width > 0, "width %d must be positive", t.Width)
	check(t.Height > 0, "height %d must be positive", t.Height)

	check(t.Player.Size > 0, "player.size %v must be positive", t.Player.Size)
	check(t.Player.HP > 0, "player.hp %d must be positive", t.Player.HP)
	check(t.Player.Damage >= 0, "player.damage %d must not be negative", t.Player.Damage)
	check(t.Player.MaxSpeed > 0, "player.max_speed %v must be positive", t.Player.MaxSpeed)
	check(t.Player.Acceleration >= 0, "player.acceleration %v must not be negative", t.Player.Acceleration)
	check(t.Player.Friction >= 0, "player.friction %v must not be negative", t.Player.Friction)
	check(t.Player.InvulnerableFor >= 0, "player.invulnerable_for %v must not be negative", t.Player.InvulnerableFor)

	check(t.Enemy.Size > 0, "enemy.size %v must be positive", t.Enemy.Size)
	check(t.Enemy.HP > 0, "enemy.hp %d must be positive", t.Enemy.HP)
	check(t.Enemy.Speed >= 0, "enemy.speed %v must not be negative", t.Enemy.Speed)
	check(t.Enemy.Cap >= 0, "enemy.cap %d must not be negative", t.Enemy.Cap)
	check(t.Enemy.SpawnInterval >= 0, "enemy.spawn_interval %v must not be negative", t.Enemy.SpawnInterval)
	check(t.Enemy.SpawnDelay >= 0, "enemy.spawn_delay %v must not be negative", t.Enemy.SpawnDelay)
	check(t.Enemy.FlashFor >= 0, "enemy.flash_for %v must not be negative", t.Enemy.FlashFor)

	check(t.Projectile.Size > 0, "projectile.size %v must be positive", t.Projectile.Size)
	check(t.Projectile.Speed > 0, "projectile.speed %v must be positive", t.Projectile.Speed)
	check(t.Projectile.FireInterval >= 0, "projectile.fire_interval %v must not be negative", t.Projectile.FireInterval)
	check(t.Projectile.FireDelay >= 0, "projectile.fire_delay %v must not be negative", t.Projectile.FireDelay)

	check(t.TickRate > 0, "tick_rate %d must be positive", t.TickRate)
	check(t.ClientFPS > 0, "client_fps %d must be positive", t.ClientFPS)
	check(t.MaxFrameDelta > 0, "max_frame_delta %v must be positive", t.MaxFrameDelta)

	return errors.Join(errs...)
}
