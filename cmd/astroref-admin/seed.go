package main

import (
	"encoding/json"
	"fmt"
	"io"

	taxdom "astroref/internal/services/api/taxonomy/domain"

	"gopkg.in/yaml.v3"
)

// batch is one kind's rows ready for BulkInsert
type batch struct {
	Kind taxdom.Kind
	Rows json.RawMessage
}

// parseSeed decodes a kind-keyed YAML document into batches ordered like taxdom.Kinds
func parseSeed(r io.Reader) ([]batch, error) {
	var doc map[string][]map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty seed file")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	for name := range doc {
		if _, ok := taxdom.KindByName(name); !ok {
			return nil, fmt.Errorf("unknown kind %q (want one of %v)", name, kindNames())
		}
	}

	var out []batch
	for _, k := range taxdom.Kinds() {
		rows, ok := doc[k.Name]
		if !ok || len(rows) == 0 {
			continue
		}
		raw, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.Name, err)
		}
		out = append(out, batch{Kind: k, Rows: raw})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no rows for any of %v", kindNames())
	}
	return out, nil
}
