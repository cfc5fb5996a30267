// Package domain describes taxonomy kinds, their rows and the ports other modules consume
package domain

import (
	"slices"
	"strings"

	"astroref/internal/core/entries"
	perr "astroref/internal/platform/errors"
)

// Policy controls which writes a kind accepts after a row exists
type Policy int

const (
	// PolicyOpen allows any column update and row deletion
	PolicyOpen Policy = iota

	// PolicyImmutable forbids deletion and allows updates to entries and Mutable columns only
	PolicyImmutable
)

// ColumnType is the storage type of an identity column
type ColumnType int

const (
	// Text is a TEXT column holding a string
	Text ColumnType = iota
	// Int is an INTEGER column
	Int
	// JSON is a JSONB column holding any non-null value
	JSON
	// TextArray is a TEXT[] column
	TextArray
)

// Column is one identity column of a kind
type Column struct {
	Name     string
	Type     ColumnType
	Required bool
	Unique   bool

	// Mutable columns may change under PolicyImmutable
	Mutable bool
}

// ListShape is how a kind's list endpoint frames its rows
type ListShape int

const (
	// ListWrapped is {success, count, data}
	ListWrapped ListShape = iota
	// ListBare is a JSON array of rows
	ListBare
)

// EntriesColumn is the JSONB column holding the entries list
const EntriesColumn = "dic"

// Kind describes one taxonomy
type Kind struct {
	Name  string // metrics, audit and module name
	Label string // human name used in messages
	Route string
	Table string

	Identity []Column
	Policy   Policy
	Rules    entries.Rules

	// ExternalID kinds take their id from the bulk insert body instead of a sequence
	ExternalID bool

	List ListShape
}

// Sign is the zodiac sign taxonomy
var Sign = Kind{
	Name: "rasi", Label: "Rasi", Route: "/rasi", Table: "rasi",
	Identity: []Column{{Name: "rasi", Type: Text, Required: true, Unique: true}},
	Policy:   PolicyImmutable,
	Rules:    entries.Rules{ArrayOnly: true, Mirror: true},
	List:     ListBare,
}

// House is the bhavam taxonomy, identified by house number
var House = Kind{
	Name: "bhavam", Label: "Bhavam", Route: "/bhavam", Table: "bhavam",
	Identity: []Column{{Name: "bhavam", Type: Int, Required: true, Unique: true}},
	Policy:   PolicyImmutable,
}

// Mansion is the natchathiram (lunar mansion) taxonomy
var Mansion = Kind{
	Name: "natchathiram", Label: "Natchathiram", Route: "/natchathiram", Table: "natchathiram",
	Identity: []Column{{Name: "natchathiram", Type: Text, Required: true, Unique: true}},
	Policy:   PolicyImmutable,
}

// Planet is the planetary position taxonomy
var Planet = Kind{
	Name: "planet", Label: "Planet", Route: "/planet", Table: "planet",
	Identity: []Column{{Name: "planet", Type: JSON, Required: true}},
	Policy:   PolicyOpen,
}

// Combination is the planet combination taxonomy
var Combination = Kind{
	Name: "combinations", Label: "Planet combination", Route: "/combinations", Table: "planet_combinations",
	Identity: []Column{
		{Name: "combo", Type: TextArray, Required: true},
		{Name: "name", Type: Text, Mutable: true},
	},
	Policy:     PolicyImmutable,
	ExternalID: true,
}

// Kinds lists every taxonomy in API order
func Kinds() []Kind { return []Kind{Sign, House, Mansion, Planet, Combination} }

// KindByName finds a kind by Name
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Column returns the identity column called name
func (k Kind) Column(name string) (Column, bool) {
	for _, c := range k.Identity {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// CheckDelete is the row delete guard
func (k Kind) CheckDelete() error {
	if k.Policy == PolicyImmutable {
		return perr.Forbiddenf("%s rows cannot be deleted", k.Label)
	}
	return nil
}

// CheckUpdate is the row update guard; cols are the columns about to change
func (k Kind) CheckUpdate(cols []string) error {
	if k.Policy != PolicyImmutable {
		return nil
	}
	var denied []string
	for _, name := range cols {
		if name == EntriesColumn {
			continue
		}
		if c, ok := k.Column(name); ok && c.Mutable {
			continue
		}
		denied = append(denied, name)
	}
	if len(denied) == 0 {
		return nil
	}
	slices.Sort(denied)
	return perr.WithDetails(
		perr.Forbiddenf("%s cannot be updated on %s rows: only %s may change", strings.Join(denied, ", "), k.Label, strings.Join(k.allowed(), ", ")),
		map[string]any{"columns": denied},
	)
}

func (k Kind) allowed() []string {
	out := []string{"entries"}
	for _, c := range k.Identity {
		if c.Mutable {
			out = append(out, c.Name)
		}
	}
	return out
}
