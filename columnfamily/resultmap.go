package columnfamily

// ResultMap is the mapping shape every read operation returns. The concrete
// implementation is a construction-time strategy: callers who care about the
// server's column ordering use the insertion-ordered implementation, callers
// who only do point lookups can use the cheaper unordered one.
//
// Keys are the unpacked native column names. Raw byte-slice names are
// indexed by their string form so they stay usable as lookup keys; Keys
// still returns them as the values they were inserted with.
type ResultMap interface {
	Set(key, value interface{})
	Get(key interface{}) (interface{}, bool)
	Len() int
	Keys() []interface{}
}

// MapFactory produces an empty ResultMap for one result level. Nested
// supercolumn results call it once per nesting level.
type MapFactory func() ResultMap

// indexKey normalizes a key into something usable as a Go map key.
func indexKey(key interface{}) interface{} {
	if b, ok := key.([]byte); ok {
		return string(b)
	}
	return key
}

type orderedMap struct {
	keys   []interface{}
	values map[interface{}]interface{}
}

// NewOrderedMap returns a ResultMap that preserves insertion order, which
// for assembled results is the server's comparator order.
func NewOrderedMap() ResultMap {
	return &orderedMap{values: make(map[interface{}]interface{})}
}

func (m *orderedMap) Set(key, value interface{}) {
	ik := indexKey(key)
	if _, exists := m.values[ik]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[ik] = value
}

func (m *orderedMap) Get(key interface{}) (interface{}, bool) {
	v, ok := m.values[indexKey(key)]
	return v, ok
}

func (m *orderedMap) Len() int {
	return len(m.keys)
}

func (m *orderedMap) Keys() []interface{} {
	out := make([]interface{}, len(m.keys))
	copy(out, m.keys)
	return out
}

type unorderedMap map[interface{}]entry

type entry struct {
	key   interface{}
	value interface{}
}

// NewUnorderedMap returns a ResultMap with no ordering guarantees.
func NewUnorderedMap() ResultMap {
	return make(unorderedMap)
}

func (m unorderedMap) Set(key, value interface{}) {
	m[indexKey(key)] = entry{key: key, value: value}
}

func (m unorderedMap) Get(key interface{}) (interface{}, bool) {
	e, ok := m[indexKey(key)]
	return e.value, ok
}

func (m unorderedMap) Len() int {
	return len(m)
}

func (m unorderedMap) Keys() []interface{} {
	out := make([]interface{}, 0, len(m))
	for _, e := range m {
		out = append(out, e.key)
	}
	return out
}
