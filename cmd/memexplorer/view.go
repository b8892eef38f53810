package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gridColumns is the number of words rendered per grid row.
const gridColumns = 32

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := headerStyle.Render(fmt.Sprintf(
		"memexplorer — %d words × %d bytes — strategy: %s",
		m.words, m.wordSize, m.strategyName(),
	))

	grid := paneStyle.Render(m.renderGrid())
	side := paneStyle.Render(m.renderSide())
	content := lipgloss.JoinHorizontal(lipgloss.Top, grid, side)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		m.renderStatus(),
	)
}

// renderGrid draws one glyph per word: '█' allocated, '·' free.
func (m Model) renderGrid() string {
	bitmap := m.manager.Bitmap()
	var sb strings.Builder
	for w := 0; w < m.words; w++ {
		if w > 0 && w%gridColumns == 0 {
			sb.WriteByte('\n')
		}
		byteIdx := 2 + w/8
		used := bitmap[byteIdx]&(1<<(w%8)) != 0
		if used {
			sb.WriteString(usedCellStyle.Render("█"))
		} else {
			sb.WriteString(freeCellStyle.Render("·"))
		}
	}
	return sb.String()
}

// renderSide lists live allocations and the current holes.
func (m Model) renderSide() string {
	var sb strings.Builder

	s := m.manager.Summarize()
	fmt.Fprintf(&sb, "free %d/%d words in %d holes\n", s.FreeWords, s.Words, s.Holes)
	fmt.Fprintf(&sb, "largest hole: %d words\n\n", s.LargestHole)

	sb.WriteString("allocations:\n")
	if len(m.allocs) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, a := range m.allocs {
		fmt.Fprintf(&sb, "  #%d  word %-4d %d bytes\n", i, a.Ref, a.Bytes)
	}

	sb.WriteString("\nholes:\n")
	holes := m.manager.Holes()
	if len(holes) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, h := range holes {
		fmt.Fprintf(&sb, "  [%d, %d]\n", h.Pos, h.Extent)
	}
	return sb.String()
}

// renderStatus draws the prompt or the last status message.
func (m Model) renderStatus() string {
	switch m.inputMode {
	case AllocMode:
		return promptStyle.Render("alloc bytes: " + m.input.View())
	case FreeMode:
		return promptStyle.Render("free #: " + m.input.View())
	}
	msg := m.statusMessage
	if msg == "" {
		msg = "a alloc · f free · F free last · s strategy · r reset · ? help · q quit"
	}
	return statusStyle.Render(msg)
}

func (m Model) renderHelp() string {
	help := `memexplorer

  a        allocate (prompts for a byte size)
  f        free by allocation number
  F        free the most recent allocation
  s        cycle fit strategy (best → worst → first)
  r        reset the pool
  ?        toggle this help
  q        quit

The grid shows one glyph per word: █ allocated, · free.
Allocations are placed by the active fit strategy; frees
coalesce neighboring holes back together.

Press esc, ? or q to close.`
	return paneStyle.Render(help)
}
