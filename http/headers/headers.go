package headers

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/cairn"
)

// A Pair is one name/value tuple in the shape the transport boundary expects.
type Pair struct {
	Name  string
	Value string
}

// A Store holds response headers under case-insensitive names.
//
// Every entry is an ordered list of raw values paired with a Normalizer
// that renders the list as a single string when the Store exports.
// Storage (list) stays separate from rendering (Normalizer) so each header
// can supply its own join or format rule without special-casing the container.
//
// A Store belongs to a single response and is not safe for concurrent use.
type Store struct {
	// names preserves the insertion order of first Add for export.
	names       []string
	values      map[string][]string
	normalizers map[string]Normalizer
}

// New constructs an empty *Store.
func New() *Store {
	return &Store{
		values:      make(map[string][]string),
		normalizers: make(map[string]Normalizer),
	}
}

// Exists reports whether an entry exists for name, case-insensitively.
func (s *Store) Exists(name string) bool {
	_, ok := s.values[canonical(name)]
	return ok
}

// Add stores values as the entry for name,
// overwriting any values already held under it,
// and rebinds the name's Normalizer to CommaJoin.
//
// An overwritten entry keeps its original position in export order;
// a new name exports after all existing ones.
func (s *Store) Add(name string, values ...string) {
	s.AddWith(name, nil, values...)
}

// AddWith is Add with an explicit Normalizer to bind for name.
// A nil normalizer binds CommaJoin.
func (s *Store) AddWith(name string, normalizer Normalizer, values ...string) {
	key := canonical(name)
	if normalizer == nil {
		normalizer = CommaJoin
	}

	if _, ok := s.values[key]; !ok {
		s.names = append(s.names, key)
	}

	s.values[key] = values
	s.normalizers[key] = normalizer
}

// Append adds one value to the end of the existing entry for name.
//
// Unlike Add, Append requires the entry to exist and returns an error
// wrapping [cairn.ErrNotExist] otherwise: callers must Add before appending.
// Append never touches the Normalizer bound to name.
func (s *Store) Append(name, value string) error {
	key := canonical(name)
	if _, ok := s.values[key]; !ok {
		return fmt.Errorf("cairn/http/headers: %w: no header %q", cairn.ErrNotExist, name)
	}

	s.values[key] = append(s.values[key], value)
	return nil
}

// SetNormalizer binds normalizer to name regardless of whether an entry
// currently exists, so a Normalizer chosen ahead of first use is honored later.
// A nil normalizer binds CommaJoin.
//
// Note Add and AddWith rebind the Normalizer for the names they write.
func (s *Store) SetNormalizer(name string, normalizer Normalizer) {
	if normalizer == nil {
		normalizer = CommaJoin
	}

	s.normalizers[canonical(name)] = normalizer
}

// Get returns the single normalized value for name,
// rendering the entry's raw values through the Normalizer bound to it.
//
// When no entry exists and no Normalizer was bound ahead of use,
// Get returns an error wrapping [cairn.ErrNotExist];
// it never invents an empty entry to satisfy the lookup.
func (s *Store) Get(name string) (string, error) {
	key := canonical(name)
	values, ok := s.values[key]
	normalizer, bound := s.normalizers[key]
	if !ok && !bound {
		return "", fmt.Errorf("cairn/http/headers: %w: no header %q", cairn.ErrNotExist, name)
	}

	if normalizer == nil {
		normalizer = CommaJoin
	}

	return normalizer(values), nil
}

// Values returns a copy of the raw ordered values for name.
//
// When no entry exists, Values returns an error wrapping [cairn.ErrNotExist].
func (s *Store) Values(name string) ([]string, error) {
	values, ok := s.values[canonical(name)]
	if !ok {
		return nil, fmt.Errorf("cairn/http/headers: %w: no header %q", cairn.ErrNotExist, name)
	}

	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

// Remove deletes the entry for name; removing an absent name is a no-op.
//
// A Normalizer bound to name stays bound,
// matching the ahead-of-first-use guarantee of SetNormalizer.
func (s *Store) Remove(name string) {
	key := canonical(name)
	if _, ok := s.values[key]; !ok {
		return
	}

	delete(s.values, key)
	for i, n := range s.names {
		if n == key {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Normalized exports every entry through its bound Normalizer,
// in the insertion order of first Add.
//
// Normalized reads but never mutates the Store:
// exporting twice without intervening writes yields identical output.
func (s *Store) Normalized() []Pair {
	pairs := make([]Pair, 0, len(s.names))
	for _, name := range s.names {
		normalizer, ok := s.normalizers[name]
		if !ok || normalizer == nil {
			normalizer = CommaJoin
		}

		pairs = append(pairs, Pair{Name: name, Value: normalizer(s.values[name])})
	}

	return pairs
}

// SetHeaders adds several headers at once.
//
// Calling SetHeaders overwrites existing entries, following Add semantics.
func (s *Store) SetHeaders(pairs []Pair) {
	for _, p := range pairs {
		s.Add(p.Name, p.Value)
	}
}

// Map returns a copy of all entries keyed by canonical lower-case name.
func (s *Store) Map() map[string][]string {
	m := make(map[string][]string, len(s.values))
	for name, values := range s.values {
		out := make([]string, len(values))
		copy(out, values)
		m[name] = out
	}

	return m
}

// Len reports the number of entries held.
func (s *Store) Len() int { return len(s.names) }

// canonical lower-cases name, the Store's canonical key form.
func canonical(name string) string { return strings.ToLower(name) }
