package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/arena/internal/object"
)

// streamOf returns a stream that has already received all of s and then hit EOF.
func streamOf(t *testing.T, s string) *Stream {
	t.Helper()
	st := StartStream(bufio.NewReader(strings.NewReader(s)))

	deadline := time.Now().Add(time.Second)
	for len(st.ch) < len(s) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	return st
}

func TestReadInput_Keys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  object.Intent
	}{
		{"wasd up-left", "wa", object.Intent{X: -1, Y: -1}},
		{"arrows down-right", "\x1b[B\x1b[C", object.Intent{X: 1, Y: 1}},
		{"opposites", "ad", object.Intent{}},
		{"none", "x", object.Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readInputAt(streamOf(t, tt.bytes), time.Now())
			if got := in.Intent(); got != tt.want {
				t.Errorf("Intent = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadInput_ControlKeys(t *testing.T) {
	in := readInputAt(streamOf(t, " \r"), time.Now())
	if !in.Space || !in.Enter {
		t.Errorf("Space/Enter = %v/%v, want true/true", in.Space, in.Enter)
	}

	in = readInputAt(streamOf(t, "\x03"), time.Now())
	if !in.Quit {
		t.Error("Ctrl-C should quit")
	}
}

func TestReadInput_HoldExpires(t *testing.T) {
	s := streamOf(t, "d")
	now := time.Now()

	if !readInputAt(s, now).Right {
		t.Fatal("Right not pressed")
	}
	if !readInputAt(s, now.Add(keyHoldDuration/2)).Right {
		t.Error("Right released inside the hold window")
	}
	if readInputAt(s, now.Add(keyHoldDuration)).Right {
		t.Error("Right still held after the hold window")
	}
}

func TestReadInput_ClosedStream(t *testing.T) {
	s := streamOf(t, "")

	done := make(chan Input, 1)
	go func() {
		var in Input
		deadline := time.Now().Add(time.Second)
		for !in.Closed && time.Now().Before(deadline) {
			in = ReadInput(s)
		}
		done <- in
	}()

	select {
	case in := <-done:
		if !in.Closed {
			t.Error("Closed = false after EOF")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadInput blocked on a closed stream")
	}
}

func TestReset(t *testing.T) {
	s := streamOf(t, " w")
	now := time.Now()
	readInputAt(s, now)

	Reset(s)

	in := readInputAt(s, now)
	if in.Space || in.Up {
		t.Errorf("keys still held after Reset: %+v", in)
	}
}
