package snapshot

import "strings"

// ParseMnemonic strips mnemonic markers from a raw title and returns
// the display label plus the rune index of the mnemonic character, or
// -1 when the title declares none. "&" marks the next rune, "&&"
// renders a literal ampersand.
func ParseMnemonic(title string) (string, int) {
	var b strings.Builder
	idx := -1
	pos := 0
	runes := []rune(title)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '&' {
			b.WriteRune(r)
			pos++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '&' {
			b.WriteRune('&')
			pos++
			i++
			continue
		}
		if i+1 < len(runes) && idx < 0 {
			idx = pos
		}
		// A trailing lone marker is dropped.
	}
	return b.String(), idx
}

// StripMnemonic returns the label with all markers removed.
func StripMnemonic(title string) string {
	label, _ := ParseMnemonic(title)
	return label
}

// MnemonicRune returns the lower-cased mnemonic rune for a raw title,
// or 0 when it has none.
func MnemonicRune(title string) rune {
	label, idx := ParseMnemonic(title)
	if idx < 0 {
		return 0
	}
	runes := []rune(label)
	if idx >= len(runes) {
		return 0
	}
	r := runes[idx]
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}
