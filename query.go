package easyurl

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Param is a single query parameter.
	// HasValue is false for a bare key with no '='.
	Param struct {
		Key      string
		Value    string
		HasValue bool
	}

	// Query is an ordered mapping of decoded query keys to values.
	// Keys are unique.
	Query []Param
)

// ParseQuery decodes search, with or without the leading '?'.
// Empty tokens between '&' are skipped. A repeated key replaces the
// earlier value in place.
// A bare empty key formats to "?" and so does not survive a round trip.
func ParseQuery(search string) (q Query, err error) {
	q = Query{}

	s := strings.TrimPrefix(search, "?")

	for s != "" {
		var tok string
		tok, s, _ = strings.Cut(s, "&")
		if tok == "" {
			continue
		}

		k, v, eq := strings.Cut(tok, "=")

		k, err = Unescape(k)
		if err != nil {
			return nil, badQuery(err, search)
		}

		if eq {
			v, err = Unescape(v)
			if err != nil {
				return nil, badQuery(err, search)
			}
		}

		q.set(Param{Key: k, Value: v, HasValue: eq})
	}

	return q, nil
}

// FormatQuery encodes q as "?k=v&k2" or "" if q is empty.
func FormatQuery(q Query) string {
	if len(q) == 0 {
		return ""
	}

	var b strings.Builder

	for i, p := range q {
		b.WriteByte(csel(i == 0, byte('?'), byte('&')))
		b.WriteString(Escape(p.Key))

		if p.HasValue {
			b.WriteByte('=')
			b.WriteString(Escape(p.Value))
		}
	}

	return b.String()
}

func (q Query) String() string { return FormatQuery(q) }

func (q Query) index(key string) int {
	for i, p := range q {
		if p.Key == key {
			return i
		}
	}

	return -1
}

// Lookup returns the parameter for the key.
func (q Query) Lookup(key string) (Param, bool) {
	i := q.index(key)
	if i < 0 {
		return Param{}, false
	}

	return q[i], true
}

// Get returns the value for the key, "" for a bare key or a missing one.
func (q Query) Get(key string) string {
	p, _ := q.Lookup(key)
	return p.Value
}

func (q Query) Has(key string) bool {
	return q.index(key) >= 0
}

func (q Query) Keys() []string {
	r := make([]string, len(q))

	for i, p := range q {
		r[i] = p.Key
	}

	return r
}

// Set sets the key to the value, keeping its position if it exists.
func (q *Query) Set(key, value string) {
	q.set(Param{Key: key, Value: value, HasValue: true})
}

// SetKey sets a bare key with no value.
func (q *Query) SetKey(key string) {
	q.set(Param{Key: key})
}

func (q *Query) set(p Param) {
	if i := q.index(p.Key); i >= 0 {
		(*q)[i] = p
		return
	}

	*q = append(*q, p)
}

func (q *Query) Del(key string) {
	i := q.index(key)
	if i < 0 {
		return
	}

	*q = append((*q)[:i:i], (*q)[i+1:]...)
}

// Clone returns a copy of q. Nil stays nil.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}

	return append(Query{}, q...)
}

// MarshalJSON encodes q as an object in q order. Bare keys are null.
func (q Query) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')

	for i, p := range q {
		if i != 0 {
			b.WriteByte(',')
		}

		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}

		b.Write(k)
		b.WriteByte(':')

		if !p.HasValue {
			b.WriteString("null")
			continue
		}

		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}

		b.Write(v)
	}

	b.WriteByte('}')

	return b.Bytes(), nil
}

func (q *Query) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = nil
		return nil
	}

	d := json.NewDecoder(bytes.NewReader(data))

	tok, err := d.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errors.Errorf("query: expected object, got %v", tok)
	}

	r := Query{}

	for d.More() {
		tok, err = d.Token()
		if err != nil {
			return err
		}

		k, _ := tok.(string)

		var v *string

		err = d.Decode(&v)
		if err != nil {
			return errors.Wrapf(err, "query key %q", k)
		}

		if v == nil {
			r.SetKey(k)
		} else {
			r.Set(k, *v)
		}
	}

	*q = r

	return nil
}

// MarshalYAML encodes q as a mapping in q order. Bare keys are null.
func (q Query) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range q {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value}

		if !p.HasValue {
			v.Tag, v.Value = "!!null", "null"
		}

		n.Content = append(n.Content, k, v)
	}

	return n, nil
}

func (q *Query) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		*q = nil
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return errors.Errorf("query: expected mapping at line %d", n.Line)
	}

	r := Query{}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if v.Kind != yaml.ScalarNode {
			return errors.Errorf("query key %q: expected scalar at line %d", k.Value, v.Line)
		}

		if v.ShortTag() == "!!null" {
			r.SetKey(k.Value)
		} else {
			r.Set(k.Value, v.Value)
		}
	}

	*q = r

	return nil
}
