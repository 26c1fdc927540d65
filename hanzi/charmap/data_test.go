// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package charmap

import "testing"

func TestSeedInventoriesBalanced(t *testing.T) {
	m := seedMapping()
	if len(m.simplified) != len(m.traditional) {
		t.Fatalf("inventory lengths differ: %d simplified, %d traditional",
			len(m.simplified), len(m.traditional))
	}
	if len(m.simplified) < 1000 {
		t.Errorf("bundled dataset suspiciously small: %d pairs", len(m.simplified))
	}
}

func TestSeedLookupHonorsFirstPosition(t *testing.T) {
	m := seedMapping()
	seenSimp := make(map[rune]bool)
	seenTrad := make(map[rune]bool)
	for i, s := range m.simplified {
		tr := m.traditional[i]
		if !seenSimp[s] {
			seenSimp[s] = true
			if got := m.s2t[s]; got != tr {
				t.Errorf("s2t[%c] = %c, want %c (first position %d)", s, got, tr, i)
			}
		}
		if !seenTrad[tr] {
			seenTrad[tr] = true
			if got := m.t2s[tr]; got != s {
				t.Errorf("t2s[%c] = %c, want %c (first position %d)", tr, got, s, i)
			}
		}
	}
}

func TestSeedSpotChecks(t *testing.T) {
	m := seedMapping()
	pairs := []struct {
		simplified, traditional rune
	}{
		{'万', '萬'},
		{'书', '書'},
		{'简', '簡'},
		{'转', '轉'},
		{'换', '換'},
		{'湾', '灣'},
		{'郄', '郤'},
	}
	for _, p := range pairs {
		if got := m.s2t[p.simplified]; got != p.traditional {
			t.Errorf("s2t[%c] = %c, want %c", p.simplified, got, p.traditional)
		}
		if got := m.t2s[p.traditional]; got != p.simplified {
			t.Errorf("t2s[%c] = %c, want %c", p.traditional, got, p.simplified)
		}
	}
}
