package module

import (
	"strings"
	"sync"
	"testing"

	phttp "astroref/internal/platform/net/http"
)

type EntryCounter interface{ Count() int }

type counter int

func (c counter) Count() int { return int(c) }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Entries EntryCounter
		Kind    string
	}
	type hidden struct{ entries EntryCounter }

	cases := []struct {
		name  string
		ports any
		ok    bool
		want  int
	}{
		{"nil", nil, false, 0},
		{"direct", EntryCounter(counter(4)), true, 4},
		{"bundle field", bundle{Entries: counter(7), Kind: "rasi"}, true, 7},
		{"unexported field", hidden{entries: counter(1)}, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[EntryCounter](fakeModule{name: c.name, ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v", ok)
			}
			if ok && got.Count() != c.want {
				t.Fatalf("count = %d", got.Count())
			}
		})
	}
}

func TestMustPortsOfPanicsWithName(t *testing.T) {
	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "natchathiram") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	MustPortsOf[EntryCounter](fakeModule{name: "natchathiram"})
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("planet", counter(2))
	Register("planet", counter(9))
	got, ok := PortsAs[counter]("planet")
	if !ok || got != 9 {
		t.Fatalf("got %v %v", got, ok)
	}
	if _, ok := PortsAs[string]("planet"); ok {
		t.Fatalf("type mismatch must report false")
	}
	if _, ok := PortsAs[counter]("missing"); ok {
		t.Fatalf("missing must report false")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Register("c", counter(i))
			_, _ = PortsAs[counter]("c")
		}(i)
	}
	wg.Wait()
}
