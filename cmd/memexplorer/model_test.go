package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(64, 4)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAllocAndFree(t *testing.T) {
	m := newTestModel(t)

	m = m.alloc(16) // 4 words
	if len(m.allocs) != 1 {
		t.Fatalf("want 1 allocation, got %d", len(m.allocs))
	}
	if got := m.manager.Summarize().FreeWords; got != 60 {
		t.Fatalf("want 60 free words, got %d", got)
	}

	m = m.freeAt(0)
	if len(m.allocs) != 0 {
		t.Fatalf("want 0 allocations, got %d", len(m.allocs))
	}
	if got := m.manager.Summarize().FreeWords; got != 64 {
		t.Fatalf("want 64 free words, got %d", got)
	}
}

func TestFreeAt_BadIndex(t *testing.T) {
	m := newTestModel(t)

	m = m.freeAt(3)
	if !strings.Contains(m.statusMessage, "no allocation") {
		t.Fatalf("want bad-index status, got %q", m.statusMessage)
	}
}

func TestStrategyCycle(t *testing.T) {
	m := newTestModel(t)
	if m.strategyName() != "best" {
		t.Fatalf("want best initially, got %s", m.strategyName())
	}

	for _, want := range []string{"worst", "first", "best"} {
		next, _ := m.Update(keyMsg("s"))
		m = next.(Model)
		if m.strategyName() != want {
			t.Fatalf("want %s, got %s", want, m.strategyName())
		}
	}
}

func TestResetClearsAllocations(t *testing.T) {
	m := newTestModel(t)
	m = m.alloc(16)

	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	if len(m.allocs) != 0 {
		t.Fatalf("reset must clear allocations")
	}
	if got := m.manager.Summarize().FreeWords; got != 64 {
		t.Fatalf("want a fresh 64-word pool, got %d free", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("?"))
	m = next.(Model)
	if !m.showHelp {
		t.Fatal("? must open help")
	}
	if !strings.Contains(m.View(), "cycle fit strategy") {
		t.Fatal("help view missing key listing")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.showHelp {
		t.Fatal("esc must close help")
	}
}

func TestAllocPrompt(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)
	if m.inputMode != AllocMode {
		t.Fatal("a must open the alloc prompt")
	}

	next, _ = m.Update(keyMsg("12"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.inputMode != NormalMode {
		t.Fatal("enter must close the prompt")
	}
	if len(m.allocs) != 1 || m.allocs[0].Bytes != 12 {
		t.Fatalf("want one 12-byte allocation, got %+v", m.allocs)
	}
}

func TestView_GridReflectsAllocation(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 100, 40

	before := m.renderGrid()
	if strings.Contains(before, "█") {
		t.Fatal("fresh pool must render no allocated cells")
	}

	m = m.alloc(16)
	after := m.renderGrid()
	if strings.Count(after, "█") != 4 {
		t.Fatalf("want 4 allocated cells, grid:\n%s", after)
	}
}
