package linecalc

import (
	"github.com/google/btree"
)

// Var is a variable binding.
type Var struct {
	Name  string
	Value int64
}

func varLess(a, b Var) bool {
	return a.Name < b.Name
}

// Store is a set of variable bindings. A name has no entry until it is first
// assigned, and entries are never removed. It is not safe to use a Store
// concurrently.
type Store struct {
	t *btree.BTreeG[Var]
}

// storeDegree is the B-tree degree of stores.
const storeDegree = 8

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{t: btree.NewG[Var](storeDegree, varLess)}
}

// Get returns the value of a variable and whether it is defined.
func (s *Store) Get(name string) (int64, bool) {
	v, ok := s.t.Get(Var{Name: name})
	return v.Value, ok
}

// Set defines or overwrites a variable.
func (s *Store) Set(name string, val int64) {
	s.t.ReplaceOrInsert(Var{Name: name, Value: val})
}

// Len returns the number of defined variables.
func (s *Store) Len() int {
	return s.t.Len()
}

// Each calls f on each variable in name order until f returns false.
func (s *Store) Each(f func(Var) bool) {
	s.t.Ascend(btree.ItemIteratorG[Var](f))
}

// Clone returns a copy of the store. Later changes to either store are not
// visible in the other.
func (s *Store) Clone() *Store {
	return &Store{t: s.t.Clone()}
}

// IsIdent reports whether name is a valid variable name: a letter followed by
// any number of letters, digits, and underscores.
func IsIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isLetter(r) {
				return false
			}
			continue
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}
