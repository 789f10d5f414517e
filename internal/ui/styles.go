package ui

import "github.com/charmbracelet/lipgloss"

// ── color palette ──────────────────────────────────────────────────────────────
// Dark theme built around indigo / slate tones.
var (
	clrAccent     = lipgloss.Color("105") // soft violet – cursor row bg
	clrAccentFg   = lipgloss.Color("231") // near-white text on accent bg
	clrText       = lipgloss.Color("252") // normal entries
	clrFaded      = lipgloss.Color("243") // hidden / ignored entries
	clrCheck      = lipgloss.Color("114") // sage green – selection marks
	clrSize       = lipgloss.Color("244") // medium grey – file sizes
	clrMuted      = lipgloss.Color("240") // dark grey – decorative / dividers
	clrDim        = lipgloss.Color("238") // very dark grey – bar backgrounds
	clrBreadcrumb = lipgloss.Color("147") // periwinkle – path text
	clrStatus     = lipgloss.Color("189") // lavender – status text
	clrBorder     = lipgloss.Color("237") // subtle – separator line
	clrTitle      = lipgloss.Color("147") // periwinkle – panel titles
	clrScrollbar  = lipgloss.Color("99")  // muted violet – scroll indicator
	clrHintKey    = lipgloss.Color("105") // violet – keybind keys
	clrHintText   = lipgloss.Color("244") // grey – keybind descriptions
	clrLoading    = lipgloss.Color("214") // orange – loading indicator
)

// styles are bound to the renderer of the writer the UI draws on, so the
// colour profile follows that terminal rather than stdout.
type styles struct {
	r *lipgloss.Renderer

	normalRow   lipgloss.Style
	dimRow      lipgloss.Style
	selectedRow lipgloss.Style
	cursorRow   lipgloss.Style
	muted       lipgloss.Style
	divider     lipgloss.Style
	scroll      lipgloss.Style
	title       lipgloss.Style
	bar         lipgloss.Style
	size        lipgloss.Style
	loading     lipgloss.Style
	border      lipgloss.Style
	breadcrumb  lipgloss.Style
	status      lipgloss.Style
	hintKey     lipgloss.Style
	hintText    lipgloss.Style
	hintSep     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		r:           r,
		normalRow:   r.NewStyle().Foreground(clrText),
		dimRow:      r.NewStyle().Foreground(clrFaded).Faint(true),
		selectedRow: r.NewStyle().Foreground(clrCheck),
		cursorRow:   r.NewStyle().Foreground(clrAccentFg).Background(clrAccent).Bold(true),
		muted:       r.NewStyle().Foreground(clrMuted),
		divider:     r.NewStyle().Foreground(clrDim),
		scroll:      r.NewStyle().Foreground(clrScrollbar),
		title:       r.NewStyle().Foreground(clrTitle).Bold(true),
		bar:         r.NewStyle().Background(clrDim).PaddingLeft(1),
		size:        r.NewStyle().Foreground(clrSize),
		loading:     r.NewStyle().Foreground(clrLoading),
		border:      r.NewStyle().Foreground(clrBorder),
		breadcrumb:  r.NewStyle().Foreground(clrBreadcrumb),
		status:      r.NewStyle().Foreground(clrStatus),
		hintKey:     r.NewStyle().Foreground(clrHintKey).Bold(true),
		hintText:    r.NewStyle().Foreground(clrHintText),
		hintSep:     r.NewStyle().Foreground(clrDim),
	}
}

// block is an uncoloured layout style on the same renderer.
func (st styles) block() lipgloss.Style { return st.r.NewStyle() }

// row is the list style for a row that is not under the cursor.
func (st styles) row(dim, selected bool) lipgloss.Style {
	switch {
	case dim:
		return st.dimRow
	case selected:
		return st.selectedRow
	}
	return st.normalRow
}
