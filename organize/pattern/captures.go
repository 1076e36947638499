package pattern

import (
	"bytes"
	"encoding/json"
)

// Captures maps capture names to matched text, keeping pattern order.
type Captures struct {
	names  []string
	values map[string]string
}

// NewCaptures builds captures from name, value pairs in order. A trailing
// name without a value is ignored.
func NewCaptures(pairs ...string) *Captures {
	c := &Captures{}
	for i := 0; i+1 < len(pairs); i += 2 {
		c.set(pairs[i], pairs[i+1])
	}
	return c
}

func (c *Captures) set(name, value string) {
	if c.values == nil {
		c.values = map[string]string{}
	}
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = value
}

// Len returns the number of captured values.
func (c *Captures) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns captured names in pattern order.
func (c *Captures) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Get returns the text captured under name.
func (c *Captures) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	value, ok := c.values[name]
	return value, ok
}

// Map returns a detached copy of the captures.
func (c *Captures) Map() map[string]string {
	result := make(map[string]string, c.Len())
	for _, name := range c.Names() {
		result[name] = c.values[name]
	}
	return result
}

// MarshalJSON encodes captures as an object in pattern order.
func (c *Captures) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[name])
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
