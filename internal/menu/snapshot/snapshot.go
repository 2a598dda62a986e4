package snapshot

// Kind discriminates the entry variants of a built snapshot.
type Kind int

const (
	KindAction Kind = iota
	KindSeparator
	KindSubmenu
)

// Entry is one display-ready row of a menu. Label has mnemonic markers
// resolved: stripped when mnemonics are disabled, otherwise stripped
// with Mnemonic holding the rune index to underline. Submenu entries
// carry their nested snapshot; separators carry nothing else.
type Entry struct {
	Kind       Kind
	ID         string
	Label      string
	Mnemonic   int // rune index into Label, -1 when none
	Enabled    bool
	Checked    bool
	Keybinding string
	Submenu    *Snapshot
}

// Snapshot is the fully resolved action list for one menu at one point
// in time. Snapshots are replaced wholesale on rebuild, never edited,
// so an iterating consumer can never observe a half-updated menu.
type Snapshot struct {
	Entries []Entry
}

// Separator is the shared separator entry value.
func Separator() Entry {
	return Entry{Kind: KindSeparator, Mnemonic: -1}
}

// ActionCount returns the number of non-separator entries.
func (s *Snapshot) ActionCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range s.Entries {
		if e.Kind != KindSeparator {
			n++
		}
	}
	return n
}
