// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package tables is the registry of named connectivity tables.
//
// The set of tables is closed: definitions are compiled into the binary from
// tables.toml. Every Lookup builds a new *a2svg.Table so callers never share
// one.
package tables

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/asciitosvg/a2svg"
)

// ErrUnknownTable is returned, wrapped with the offending name, by Lookup.
var ErrUnknownTable = errors.New("unknown table name")

//go:embed tables.toml
var definitions string

type file struct {
	Tables []definition `toml:"table"`
}

type definition struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Extends     string  `toml:"extends"`
	Entries     []entry `toml:"entry"`
}

type entry struct {
	Chars  string `toml:"chars"`
	Class  string `toml:"class"`
	Dashed bool   `toml:"dashed"`
}

var (
	loadOnce sync.Once
	loaded   map[string][]a2svg.Entry
	loadErr  error
)

// Lookup returns a new instance of the table called name.
func Lookup(name string) (*a2svg.Table, error) {
	defs, err := load()
	if err != nil {
		return nil, err
	}
	entries, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return a2svg.NewTable(name, entries), nil
}

// Names returns the names of all known tables, sorted.
func Names() []string {
	defs, err := load()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(defs))
	for n := range defs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func load() (map[string][]a2svg.Entry, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(definitions)
	})
	return loaded, loadErr
}

// decode parses table definitions. A table may extend one defined before it;
// its own entries override the inherited ones.
func decode(data string) (map[string][]a2svg.Entry, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decoding table definitions: %w", err)
	}
	out := make(map[string][]a2svg.Entry, len(f.Tables))
	for _, d := range f.Tables {
		if d.Name == "" {
			return nil, errors.New("table definition without a name")
		}
		if _, dup := out[d.Name]; dup {
			return nil, fmt.Errorf("table %q defined twice", d.Name)
		}
		var entries []a2svg.Entry
		if d.Extends != "" {
			base, ok := out[d.Extends]
			if !ok {
				return nil, fmt.Errorf("table %q extends undefined table %q", d.Name, d.Extends)
			}
			entries = append(entries, base...)
		}
		for _, e := range d.Entries {
			class, err := a2svg.ParseClass(e.Class)
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", d.Name, err)
			}
			if e.Chars == "" {
				return nil, fmt.Errorf("table %q: %s entry without characters", d.Name, e.Class)
			}
			for _, r := range e.Chars {
				entries = append(entries, a2svg.Entry{Char: r, Class: class, Dashed: e.Dashed})
			}
		}
		out[d.Name] = entries
	}
	return out, nil
}
