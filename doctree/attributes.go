package doctree

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attributes is an ordered key/value mapping attached to document nodes.
// Keys are unique. Iteration order is insertion order, which keeps
// downstream serialization deterministic.
//
// Identifier and class list are plain entries under the keys "id" and
// "class" (the class list being a space separated string), the way
// most parser frontends hand them over. ID and Classes are convenience
// accessors for these two entries.
//
// All methods are safe to call on a nil receiver, which behaves like an
// empty mapping.
type Attributes struct {
	m *linkedhashmap.Map
}

// NewAttributes creates an empty attributes mapping.
func NewAttributes() *Attributes {
	return &Attributes{m: linkedhashmap.New()}
}

// Attrs builds an attributes mapping from alternating key/value arguments:
//
//	Attrs("id", "intro", "class", "lead")
//
// A trailing key without a value is dropped.
func Attrs(pairs ...string) *Attributes {
	attrs := NewAttributes()
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs.Set(pairs[i], pairs[i+1])
	}
	return attrs
}

// Set adds or replaces an entry. Replacing keeps the key's original
// position in the iteration order.
func (attrs *Attributes) Set(key, value string) {
	if attrs == nil || attrs.m == nil {
		return
	}
	attrs.m.Put(key, value)
}

// Get returns the value for a key.
func (attrs *Attributes) Get(key string) (string, bool) {
	if attrs == nil || attrs.m == nil {
		return "", false
	}
	v, ok := attrs.m.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// ID returns the value of the "id" entry, or "".
func (attrs *Attributes) ID() string {
	id, _ := attrs.Get("id")
	return id
}

// Classes returns the entries of the "class" attribute, split at spaces.
func (attrs *Attributes) Classes() []string {
	c, ok := attrs.Get("class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// Each calls f for every entry, in insertion order.
func (attrs *Attributes) Each(f func(key, value string)) {
	if attrs == nil || attrs.m == nil {
		return
	}
	attrs.m.Each(func(key, value interface{}) {
		f(key.(string), value.(string))
	})
}

// Size returns the number of entries.
func (attrs *Attributes) Size() int {
	if attrs == nil || attrs.m == nil {
		return 0
	}
	return attrs.m.Size()
}

// IsEmpty is true if the mapping holds no entries.
func (attrs *Attributes) IsEmpty() bool {
	return attrs.Size() == 0
}
