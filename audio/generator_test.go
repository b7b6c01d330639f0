package audio

import (
	"math"
	"testing"
)

func TestToneGenerator_StreamsRequestedLength(t *testing.T) {
	total := 480
	g := newToneGenerator(sampleRate, 440, total)

	buf := make([][2]float64, 512)
	n, ok := g.Stream(buf)
	if n != total {
		t.Errorf("expected %d samples, got %d", total, n)
	}
	if !ok {
		t.Error("expected ok while samples remain")
	}

	// Exhausted generator yields nothing.
	n, ok = g.Stream(buf)
	if n != 0 || ok {
		t.Errorf("expected exhausted stream, got n=%d ok=%v", n, ok)
	}
}

func TestToneGenerator_SamplesBounded(t *testing.T) {
	total := 2400
	g := newToneGenerator(sampleRate, 880, total)

	buf := make([][2]float64, total)
	g.Stream(buf)

	for i, s := range buf {
		if math.Abs(s[0]) > 1.0 || math.Abs(s[1]) > 1.0 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}

	// Envelope forces a silent start.
	if math.Abs(buf[0][0]) > 0.01 {
		t.Errorf("expected near-silent attack start, got %f", buf[0][0])
	}
}

func TestManagerPlay_UninitializedIsNoOp(t *testing.T) {
	// Never initialized: Play must not panic or touch the device.
	var m *Manager
	m.Play("chop")

	m = &Manager{}
	m.Play("chop")
}
