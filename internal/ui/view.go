package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/zackbart/sharkit/internal/session"
)

const appName = "sharkit"

// ── View ───────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.state.Done() {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return m.st.loading.Render("loading…")
	}

	snap := m.session.Snapshot()

	// 1 top bar + 2 bottom rows of chrome
	bodyH := max(4, m.height-3)

	topBar := m.renderTopBar(snap, m.width)
	bottomBar := m.renderBottomBar(snap, m.width)

	if !snap.ShowPreview {
		list := m.renderFileList(snap, m.width, bodyH)
		return topBar + "\n" + list + "\n" + bottomBar
	}

	leftW := max(26, m.width*2/5)
	rightW := max(1, m.width-leftW-1) // -1 for the separator column

	// Render each │ on its own so ANSI resets don't span newlines.
	sepLine := m.st.border.Render("│")
	sepLines := make([]string, bodyH)
	for i := range sepLines {
		sepLines[i] = sepLine
	}
	sep := strings.Join(sepLines, "\n")

	left := m.renderFileList(snap, leftW, bodyH)
	right := m.renderPreviewPane(snap, rightW, bodyH)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
	return topBar + "\n" + body + "\n" + bottomBar
}

// renderTopBar draws the title, the listed directory and the entry count.
func (m Model) renderTopBar(snap session.Snapshot, width int) string {
	count := m.st.muted.Render(fmt.Sprintf("%d files", snap.Total))
	title := m.st.title.Render(appName)

	dirBudget := width - 1 - lipgloss.Width(title) - 3 - lipgloss.Width(count) - 1
	dir := ""
	if m.dir != "" && dirBudget > 4 {
		dir = m.st.breadcrumb.Render(ansi.Truncate(m.dir, dirBudget, "…"))
	}

	left := title
	if dir != "" {
		left += m.st.muted.Render(" › ") + dir
	}
	gap := max(1, width-1-lipgloss.Width(left)-lipgloss.Width(count))
	return m.st.bar.Width(width).Render(left + strings.Repeat(" ", gap) + count)
}

// renderFileList draws the selectable rows, keeping the cursor in view.
func (m Model) renderFileList(snap session.Snapshot, w, h int) string {
	lines := make([]string, 0, h)

	if len(snap.Rows) == 0 {
		lines = append(lines, m.st.muted.Render("  (no files)"))
		return m.st.block().Width(w).Height(h).Render(strings.Join(lines, "\n"))
	}

	start, end, needTop, needBot := listWindow(snap.Cursor, len(snap.Rows), h)

	if needTop {
		lines = append(lines, m.st.scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		row := snap.Rows[i]
		// Keep the marker prefix intact and squeeze the name instead.
		prefix := session.RowLine("", row.Selected)
		nameW := max(4, w-runewidth.StringWidth(prefix)-2)
		line := prefix + truncateMiddle(row.Name, nameW)

		if i == snap.Cursor {
			lines = append(lines, m.st.cursorRow.Render(padRight("› "+line, w)))
			continue
		}
		lines = append(lines, m.st.row(row.Dim, row.Selected).Render(padRight("  "+line, w)))
	}
	if needBot {
		lines = append(lines, m.st.scroll.Render(fmt.Sprintf("  ↓ %d more", len(snap.Rows)-end)))
	}

	return m.st.block().Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

// renderPreviewPane draws the header for the entry under the cursor and the
// (decorated) preview text.
func (m Model) renderPreviewPane(snap session.Snapshot, w, h int) string {
	var headerLeft, headerRight string
	if snap.HasFocus {
		headerLeft = m.st.title.Render(truncateMiddle("Preview: "+snap.Focus.Name, max(8, w/2)))
		headerRight = m.st.size.Render(humanize.Bytes(uint64(max(0, snap.Focus.Size))) + "  " +
			snap.Focus.ModTime.Format("Jan 02 15:04"))
	} else {
		headerLeft = m.st.title.Render("Preview")
	}

	gap := max(1, w-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight)-2)
	header := m.st.bar.Width(w).Render(headerLeft + strings.Repeat(" ", gap) + headerRight)
	divider := m.st.divider.Render(strings.Repeat("─", max(1, w)))

	bodyH := max(1, h-2)
	text := snap.Preview
	if snap.PreviewIsContent {
		text = m.deco.decorate(snap.Cursor, snap.Focus.Name, text, w)
	} else {
		text = m.st.muted.Render(text)
	}

	body := m.st.block().Width(w).Render(text)
	body = strings.Join(headSlice(strings.Split(body, "\n"), bodyH), "\n")
	body = m.st.block().Width(w).Height(bodyH).MaxHeight(bodyH).Render(body)

	return header + "\n" + divider + "\n" + body
}

// renderBottomBar draws the selection status line and the key hints.
func (m Model) renderBottomBar(snap session.Snapshot, width int) string {
	status := fmt.Sprintf("%d selected", snap.SelectedCount)
	if snap.Total > 0 {
		status = fmt.Sprintf("%d of %d selected", snap.SelectedCount, snap.Total)
	}
	if !snap.ShowPreview {
		status += " · preview hidden"
	}
	statusLine := m.st.bar.Width(width).Render(
		m.st.status.Render("◆ " + ansi.Truncate(status, max(1, width-3), "…")))

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	keysLine := m.st.bar.Width(width).Render(ansi.Truncate(hints, max(1, width-2), "…"))

	return statusLine + "\n" + keysLine
}

// ── helpers ────────────────────────────────────────────────────────────────────

// listWindow picks the [start, end) slice of rows that fits in height,
// reserving a line for each "more" indicator that is needed.
func listWindow(cursor, total, height int) (start, end int, needTop, needBot bool) {
	height = max(1, height)
	start, end = visibleWindow(cursor, total, height)
	needTop, needBot = start > 0, end < total

	// Showing one indicator can push the window and reveal the other.
	for {
		capacity := height
		if needTop {
			capacity--
		}
		if needBot {
			capacity--
		}
		capacity = max(1, capacity)
		start, end = visibleWindow(cursor, total, capacity)
		top, bot := start > 0, end < total
		if top == needTop && bot == needBot {
			return start, end, needTop, needBot
		}
		needTop, needBot = top, bot
	}
}

// visibleWindow returns [start, end) range of entries to show given height.
func visibleWindow(selected, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	// Keep selected roughly centred
	half := height / 2
	start := max(0, selected-half)
	end := start + height
	if end > total {
		end = total
		start = max(0, end-height)
	}
	return start, end
}

// truncateMiddle shortens s to width columns by cutting out its middle, so
// both the start and the extension of a file name stay visible.
func truncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	avail := width - 1
	left := avail - avail/2
	right := avail / 2

	rs := []rune(s)
	var head []rune
	w := 0
	for _, r := range rs {
		rw := runewidth.RuneWidth(r)
		if w+rw > left {
			break
		}
		head = append(head, r)
		w += rw
	}

	var tail []rune
	w = 0
	for i := len(rs) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(rs[i])
		if w+rw > right {
			break
		}
		tail = append([]rune{rs[i]}, tail...)
		w += rw
	}
	return string(head) + "…" + string(tail)
}

// padRight pads or truncates s to exactly n visible terminal columns.
func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return ansi.Truncate(s, n, "")
	}
	return s + strings.Repeat(" ", n-w)
}

func headSlice(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
