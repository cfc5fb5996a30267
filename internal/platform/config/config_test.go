package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "astroref/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_")
	if got := api.key("PORT"); got != "CORE_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_PORT")
	}
	if got := api.Prefix("API_").key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  astroref ")
	if got := c.MustString("NAME"); got != "astroref" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_CONNS", " 8 ")
	if got := c.MustInt("CONNS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMayGetters(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_S", "v")
	t.Setenv("M_I", "42")
	t.Setenv("M_IBAD", "nope")
	t.Setenv("M_B", "true")
	t.Setenv("M_D", "2s")
	t.Setenv("M_DBAD", "soon")

	if got := c.MayString("S", "d"); got != "v" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NONE", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 1); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("IBAD", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if !c.MayBool("B", false) {
		t.Fatalf("MayBool want true")
	}
	if got := c.MayDuration("D", time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DBAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	t.Setenv("C_LIST", " a, ,b ,")
	got := c.MayCSV("LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("C_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV default = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_FMT", "JSON")
	if got := c.MayEnum("FMT", "console", "console", "json"); got != "json" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("UNSET", "console", "console", "json"); got != "console" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "console", "console", "json") })
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("PORT", 5000); got != ":5000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("P_PORT", ":8080")
	if got := c.MayPort("PORT", 5000); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("P_BAD", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("BAD", 5000) })
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "test.env")
	if err := os.WriteFile(f, []byte("DOTENV_A=from-file\nDOTENV_B=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_B", "from-env")
	// registers cleanup for a key set by the file
	t.Setenv("DOTENV_A", "")
	_ = os.Unsetenv("DOTENV_A")

	loaded, err := LoadDotenv(filepath.Join(dir, "missing.env"), f)
	if err != nil {
		t.Fatalf("LoadDotenv err: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != f {
		t.Fatalf("loaded = %#v", loaded)
	}
	if got := os.Getenv("DOTENV_A"); got != "from-file" {
		t.Fatalf("DOTENV_A = %q", got)
	}
	if got := os.Getenv("DOTENV_B"); got != "from-env" {
		t.Fatalf("existing env must win, got %q", got)
	}
}
