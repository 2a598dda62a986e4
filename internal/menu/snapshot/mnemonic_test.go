package snapshot

import "testing"

func TestParseMnemonic(t *testing.T) {
	label, idx := ParseMnemonic("&File")
	if label != "File" || idx != 0 {
		t.Fatalf("got %q/%d", label, idx)
	}
	label, idx = ParseMnemonic("E&xit")
	if label != "Exit" || idx != 1 {
		t.Fatalf("got %q/%d", label, idx)
	}
	label, idx = ParseMnemonic("Plain")
	if label != "Plain" || idx != -1 {
		t.Fatalf("got %q/%d", label, idx)
	}
}

func TestParseMnemonicLiteralAmpersand(t *testing.T) {
	label, idx := ParseMnemonic("Fish && Chips")
	if label != "Fish & Chips" || idx != -1 {
		t.Fatalf("got %q/%d", label, idx)
	}
	label, idx = ParseMnemonic("&Save && Quit")
	if label != "Save & Quit" || idx != 0 {
		t.Fatalf("got %q/%d", label, idx)
	}
}

func TestParseMnemonicFirstMarkerWins(t *testing.T) {
	label, idx := ParseMnemonic("&Go to &Line")
	if label != "Go to Line" || idx != 0 {
		t.Fatalf("got %q/%d", label, idx)
	}
}

func TestMnemonicRune(t *testing.T) {
	if r := MnemonicRune("E&xit"); r != 'x' {
		t.Fatalf("got %q", r)
	}
	if r := MnemonicRune("&Save"); r != 's' {
		t.Fatalf("expected lower-cased rune, got %q", r)
	}
	if r := MnemonicRune("Plain"); r != 0 {
		t.Fatalf("expected zero rune, got %q", r)
	}
}
