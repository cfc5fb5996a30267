package testkit

import (
	"strings"
	"testing"
)

var swapTarget = 10

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	MustContain(t, "alpha beta gamma", "beta")
}

func TestSwapRestores(t *testing.T) {
	t.Run("swap", func(t *testing.T) {
		Swap(t, &swapTarget, 42)
		if swapTarget != 42 {
			t.Fatalf("swap failed, got %d", swapTarget)
		}
	})
	if swapTarget != 10 {
		t.Fatalf("swap not restored, got %d", swapTarget)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type body struct {
		Text string `json:"text"`
	}
	got := Decode[body](t, JSONBody(t, body{Text: "good omen"}))
	if got.Text != "good omen" {
		t.Fatalf("decode = %+v", got)
	}
	m := Decode[map[string]any](t, strings.NewReader(`{"a":1}`))
	if m["a"].(float64) != 1 {
		t.Fatalf("decode map = %#v", m)
	}
}
