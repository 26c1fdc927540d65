// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

// Package charmap converts Chinese text between the Simplified and
// Traditional scripts by per-character table lookup.
//
// The mapping is held as two rune inventories of equal length, where the
// rune at position i of one inventory is the counterpart of the rune at
// position i of the other. A character that appears more than once in an
// inventory resolves to the counterpart at its first position.
package charmap

import (
	"strings"
	"sync"
)

// Direction selects the target script of a conversion.
type Direction int

const (
	// Simplified converts Traditional input to Simplified.
	Simplified Direction = iota
	// Traditional converts Simplified input to Traditional.
	Traditional
)

// mapping is an immutable snapshot of the two inventories and the lookup
// tables derived from them. A Store publishes a fresh mapping on every
// successful mutation, so readers never observe a partially edited state.
type mapping struct {
	simplified  []rune
	traditional []rune
	s2t         map[rune]rune
	t2s         map[rune]rune
}

// newMapping derives the lookup tables for a pair of inventories. The first
// occurrence of a rune wins: later duplicates never overwrite its entry.
func newMapping(simplified, traditional []rune) *mapping {
	m := &mapping{
		simplified:  simplified,
		traditional: traditional,
		s2t:         make(map[rune]rune, len(simplified)),
		t2s:         make(map[rune]rune, len(traditional)),
	}
	for i, s := range simplified {
		t := traditional[i]
		if _, ok := m.s2t[s]; !ok {
			m.s2t[s] = t
		}
		if _, ok := m.t2s[t]; !ok {
			m.t2s[t] = s
		}
	}
	return m
}

func (m *mapping) table(dir Direction) map[rune]rune {
	if dir == Simplified {
		return m.t2s
	}
	return m.s2t
}

func (m *mapping) convert(text string, dir Direction) string {
	table := m.table(dir)
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if counterpart, ok := table[r]; ok {
			out.WriteRune(counterpart)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Store owns a character mapping and hands out conversions against it.
// Converting is cheap and concurrency-safe; IgnorePairs and ExtendPairs are
// rare administrative writes that commit atomically.
type Store struct {
	stateMutex sync.RWMutex
	current    *mapping
}

// NewStore returns a Store seeded with the bundled default dataset.
func NewStore() *Store {
	return &Store{current: seedMapping()}
}

func (store *Store) mapping() *mapping {
	store.stateMutex.RLock()
	defer store.stateMutex.RUnlock()
	return store.current
}

// Size returns the current number of character pairs.
func (store *Store) Size() int {
	return len(store.mapping().simplified)
}

// Convert applies the mapping to text, one character at a time. Characters
// without a counterpart pass through unchanged, so the output always has
// the same number of runes as the input. The input must be valid UTF-8;
// use ConvertBytes for untrusted byte input.
func (store *Store) Convert(text string, dir Direction) string {
	return store.mapping().convert(text, dir)
}

// ToSimplified converts text to the Simplified script.
func (store *Store) ToSimplified(text string) string {
	return store.Convert(text, Simplified)
}

// ToTraditional converts text to the Traditional script.
func (store *Store) ToTraditional(text string) string {
	return store.Convert(text, Traditional)
}

// Same reports whether a and b are the same text once both are normalized
// to the Simplified script.
func (store *Store) Same(a, b string) bool {
	m := store.mapping()
	return m.convert(a, Simplified) == m.convert(b, Simplified)
}

// flattenGroups splits whitespace-delimited character groups into a flat
// list of runes.
func flattenGroups(chars string) (flat []rune) {
	for _, group := range strings.Fields(chars) {
		flat = append(flat, []rune(group)...)
	}
	return
}

func removeRunes(inventory []rune, doomed []rune) []rune {
	doomedSet := make(map[rune]bool, len(doomed))
	for _, r := range doomed {
		doomedSet[r] = true
	}
	result := make([]rune, 0, len(inventory))
	for _, r := range inventory {
		if !doomedSet[r] {
			result = append(result, r)
		}
	}
	return result
}

// IgnorePairs suppresses mappings by removing every occurrence of the given
// characters from their respective inventories. Both arguments are
// whitespace-delimited character groups and must flatten to the same number
// of characters, else ErrArityMismatch. If the edited inventories would end
// up with different lengths (the removal counts didn't balance), nothing is
// committed and ErrInconsistentMapping is returned.
func (store *Store) IgnorePairs(simplified, traditional string) error {
	simpList := flattenGroups(simplified)
	tradList := flattenGroups(traditional)
	if len(simpList) != len(tradList) {
		return ErrArityMismatch
	}

	store.stateMutex.Lock()
	defer store.stateMutex.Unlock()

	newSimp := removeRunes(store.current.simplified, simpList)
	newTrad := removeRunes(store.current.traditional, tradList)
	if len(newSimp) != len(newTrad) {
		return ErrInconsistentMapping
	}
	store.current = newMapping(newSimp, newTrad)
	return nil
}

// ExtendPairs adds new character pairs to the end of the inventories. Both
// arguments are whitespace-delimited character groups and must flatten to
// the same number of characters, else ErrArityMismatch. A character already
// present in its inventory is silently skipped, which makes re-adding an
// existing pair a no-op; if skipping leaves the two sides with different
// numbers of new characters, nothing is committed and
// ErrInconsistentMapping is returned.
func (store *Store) ExtendPairs(simplified, traditional string) error {
	simpList := flattenGroups(simplified)
	tradList := flattenGroups(traditional)
	if len(simpList) != len(tradList) {
		return ErrArityMismatch
	}

	store.stateMutex.Lock()
	defer store.stateMutex.Unlock()

	cur := store.current
	newSimp := stageNew(cur.simplified, simpList)
	newTrad := stageNew(cur.traditional, tradList)
	if len(newSimp) != len(newTrad) {
		return ErrInconsistentMapping
	}
	if len(newSimp) == 0 {
		return nil
	}

	simpInventory := make([]rune, 0, len(cur.simplified)+len(newSimp))
	simpInventory = append(append(simpInventory, cur.simplified...), newSimp...)
	tradInventory := make([]rune, 0, len(cur.traditional)+len(newTrad))
	tradInventory = append(append(tradInventory, cur.traditional...), newTrad...)
	store.current = newMapping(simpInventory, tradInventory)
	return nil
}

// stageNew returns the candidates not already present in the inventory.
func stageNew(inventory []rune, candidates []rune) (staged []rune) {
	present := make(map[rune]bool, len(inventory))
	for _, r := range inventory {
		present[r] = true
	}
	for _, r := range candidates {
		if !present[r] {
			staged = append(staged, r)
		}
	}
	return
}

var (
	defaultStoreOnce sync.Once
	defaultStore     *Store
)

// DefaultStore returns the shared process-wide store, seeding it on first
// use. Mutations applied to it are visible to every caller of the
// package-level functions below.
func DefaultStore() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// ToSimplified converts text to Simplified using the default store.
func ToSimplified(text string) string {
	return DefaultStore().ToSimplified(text)
}

// ToTraditional converts text to Traditional using the default store.
func ToTraditional(text string) string {
	return DefaultStore().ToTraditional(text)
}

// Same compares two texts for script equivalence using the default store.
func Same(a, b string) bool {
	return DefaultStore().Same(a, b)
}

// IgnorePairs suppresses pairs in the default store.
func IgnorePairs(simplified, traditional string) error {
	return DefaultStore().IgnorePairs(simplified, traditional)
}

// ExtendPairs adds pairs to the default store.
func ExtendPairs(simplified, traditional string) error {
	return DefaultStore().ExtendPairs(simplified, traditional)
}
