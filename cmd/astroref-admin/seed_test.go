package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedOrdersByKind(t *testing.T) {
	batches, err := parseSeed(strings.NewReader(`
combinations:
  - id: 7
    combo: [Guru, Chandran]
    entries: []
rasi:
  - rasi: Mesham
    entries:
      - text: bold
        categories: [1]
`))
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "rasi", batches[0].Kind.Name)
	assert.Equal(t, "combinations", batches[1].Kind.Name)
	assert.JSONEq(t, `[{"rasi":"Mesham","entries":[{"text":"bold","categories":[1]}]}]`, string(batches[0].Rows))
}

func TestParseSeedRejects(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"unknown kind": "zodiac:\n  - rasi: x\n",
		"no rows":      "rasi: []\n",
		"not a map":    "- rasi: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseSeed(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestShippedSeedParses(t *testing.T) {
	f, err := os.Open("../../seeds/taxonomy.yaml")
	require.NoError(t, err)
	defer f.Close()

	batches, err := parseSeed(f)
	require.NoError(t, err)
	require.Len(t, batches, 5)

	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for _, b := range batches {
		rows, err := b.Kind.ParseRows(b.Rows, now)
		require.NoError(t, err, b.Kind.Name)
		assert.NotEmpty(t, rows)
	}
}
