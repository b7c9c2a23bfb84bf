package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cj3636/glit/internal/config"
)

// Styles holds all the lipgloss styles, built once from the theme.
type Styles struct {
	title       lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	border      lipgloss.Style
	help        lipgloss.Style
	header      lipgloss.Style
	selected    lipgloss.Style
	hash        lipgloss.Style
	graph       lipgloss.Style
	added       lipgloss.Style
	removed     lipgloss.Style
	hunk        lipgloss.Style
	context     lipgloss.Style
	head        lipgloss.Style
	branch      lipgloss.Style
	remote      lipgloss.Style
	tag         lipgloss.Style
	success     lipgloss.Style
	errorMsg    lipgloss.Style
	info        lipgloss.Style
	prompt      lipgloss.Style
	modal       lipgloss.Style
}

// createStyles initializes all lipgloss styles based on theme.
func createStyles(theme config.Theme) *Styles {
	return &Styles{
		title: lipgloss.NewStyle().
			Foreground(theme.TitleFg).
			Background(theme.TitleBg).
			Bold(true).
			Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Foreground(theme.TitleFg).
			Background(theme.TitleBg).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(theme.HelpFg).
			Padding(0, 1),
		border: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.BorderFg),
		help: lipgloss.NewStyle().
			Foreground(theme.HelpFg).
			Italic(true),
		header: lipgloss.NewStyle().
			Foreground(theme.TitleFg).
			Bold(true),
		selected: lipgloss.NewStyle().
			Background(theme.SelectionBg).
			Bold(true),
		hash: lipgloss.NewStyle().
			Foreground(theme.HashFg),
		graph: lipgloss.NewStyle().
			Foreground(theme.HelpFg),
		added: lipgloss.NewStyle().
			Foreground(theme.AddedFg),
		removed: lipgloss.NewStyle().
			Foreground(theme.RemovedFg),
		hunk: lipgloss.NewStyle().
			Foreground(theme.HunkFg),
		context: lipgloss.NewStyle().
			Foreground(theme.ContextFg),
		head: lipgloss.NewStyle().
			Foreground(theme.HeadFg).
			Bold(true),
		branch: lipgloss.NewStyle().
			Foreground(theme.BranchFg),
		remote: lipgloss.NewStyle().
			Foreground(theme.RemoteFg),
		tag: lipgloss.NewStyle().
			Foreground(theme.TagFg),
		success: lipgloss.NewStyle().
			Foreground(theme.SuccessFg).
			Background(theme.SuccessBg).
			Padding(0, 1),
		errorMsg: lipgloss.NewStyle().
			Foreground(theme.ErrorFg).
			Background(theme.ErrorBg).
			Padding(0, 1),
		info: lipgloss.NewStyle().
			Foreground(theme.InfoFg).
			Background(theme.InfoBg).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderFg).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderFg).
			Padding(1, 2),
	}
}
