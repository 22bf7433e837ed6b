package design

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one name/value pair of a Group.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Group is a name to value mapping that remembers insertion order.
// Overwriting an existing name keeps its original position.
type Group struct {
	names  []string
	values map[string]string
}

// Set inserts or overwrites name.
func (g *Group) Set(name, value string) {
	if g.values == nil {
		g.values = make(map[string]string)
	}
	if _, exists := g.values[name]; !exists {
		g.names = append(g.names, name)
	}
	g.values[name] = value
}

// Get returns the value stored under name.
func (g Group) Get(name string) (string, bool) {
	v, ok := g.values[name]
	return v, ok
}

// Len returns the number of entries.
func (g Group) Len() int {
	return len(g.names)
}

// Entries returns the pairs in insertion order.
func (g Group) Entries() []Entry {
	out := make([]Entry, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, Entry{Name: name, Value: g.values[name]})
	}
	return out
}

// Clone returns an independent copy.
func (g Group) Clone() Group {
	var out Group
	for _, name := range g.names {
		out.Set(name, g.values[name])
	}
	return out
}

// MarshalJSON writes the group as a JSON object in insertion order.
func (g Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(g.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string values, keeping document order.
func (g *Group) UnmarshalJSON(data []byte) error {
	*g = Group{}

	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value for %q: %w", name, err)
		}
		g.Set(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
