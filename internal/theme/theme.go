package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Bar              *lipgloss.Style
	Button           *lipgloss.Style
	ButtonFocused    *lipgloss.Style
	Mnemonic         *lipgloss.Style
	MnemonicFocused  *lipgloss.Style
	DropdownBorder   *lipgloss.Style
	DropdownItem     *lipgloss.Style
	DropdownSelected *lipgloss.Style
	DropdownDisabled *lipgloss.Style
	DropdownHint     *lipgloss.Style
	Separator        *lipgloss.Style
	TypeAhead        *lipgloss.Style
	Status           *lipgloss.Style
	Error            *lipgloss.Style
	Body             *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Mnemonic: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")).Underline(true),
	),
	MnemonicFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Underline(true),
	),
	DropdownBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	DropdownItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	DropdownSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DropdownDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	DropdownHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	TypeAhead: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
