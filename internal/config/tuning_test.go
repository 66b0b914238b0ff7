package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestDefault_Values(t *testing.T) {
	d := Default()
	if d.Player.MaxSpeed != 300 || d.Player.Acceleration != 1200 || d.Player.Friction != 900 {
		t.Errorf("player motion = %v/%v/%v, want 300/1200/900",
			d.Player.MaxSpeed, d.Player.Acceleration, d.Player.Friction)
	}
	if d.Player.HP != 5 || d.Player.Damage != 2 {
		t.Errorf("player hp/damage = %d/%d, want 5/2", d.Player.HP, d.Player.Damage)
	}
	if d.Enemy.Cap != 5 || d.Enemy.Speed != 200 || d.Enemy.HP != 5 {
		t.Errorf("enemy cap/speed/hp = %d/%v/%d, want 5/200/5", d.Enemy.Cap, d.Enemy.Speed, d.Enemy.HP)
	}
	if d.Projectile.Speed != 600 || d.Projectile.FireInterval != 1 {
		t.Errorf("projectile speed/interval = %v/%v, want 600/1", d.Projectile.Speed, d.Projectile.FireInterval)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	tu := Default()
	tu.Width = 0
	tu.Enemy.Cap = -1

	err := tu.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("error %v does not wrap ErrInvalidTuning", err)
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("expected joined errors, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("got %d errors, want 2", n)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("ARENA_WIDTH", "640")
	t.Setenv("ARENA_HEIGHT", "480")
	t.Setenv("ARENA_SEED", "42")

	tu, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tu.Width != 640 || tu.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", tu.Width, tu.Height)
	}
	if tu.Seed != 42 {
		t.Errorf("seed = %d, want 42", tu.Seed)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("ARENA_WIDTH", "wide")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric ARENA_WIDTH")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	data := `
width = 800

[enemy]
cap = 8
speed = 150.5
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	tu := Default()
	if err := tu.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tu.Width != 800 {
		t.Errorf("width = %d, want 800", tu.Width)
	}
	if tu.Enemy.Cap != 8 || tu.Enemy.Speed != 150.5 {
		t.Errorf("enemy cap/speed = %d/%v, want 8/150.5", tu.Enemy.Cap, tu.Enemy.Speed)
	}
	if tu.Height != DefaultHeight {
		t.Errorf("height = %d, want untouched %d", tu.Height, DefaultHeight)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	if err := os.WriteFile(path, []byte("gravity = 9.8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tu := Default()
	if err := tu.LoadFile(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	if err := os.WriteFile(path, []byte("[player]\nhp = 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARENA_CONFIG", path)

	tu, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tu.Player.HP != 9 {
		t.Errorf("player.hp = %d, want 9", tu.Player.HP)
	}
}
