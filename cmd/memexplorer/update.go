package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// If help is showing, any of these dismiss it
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		// Prompt modes feed the text input
		if m.inputMode != NormalMode {
			return m.updatePrompt(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.Alloc):
			m.inputMode = AllocMode
			m.input.Placeholder = "bytes"
			m.input.Reset()
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.Free):
			if len(m.allocs) == 0 {
				m.statusMessage = "nothing to free"
				return m, nil
			}
			m.inputMode = FreeMode
			m.input.Placeholder = fmt.Sprintf("0-%d", len(m.allocs)-1)
			m.input.Reset()
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.FreeLast):
			return m.freeAt(len(m.allocs) - 1), nil

		case key.Matches(msg, m.keys.Strategy):
			m.strategyIdx = (m.strategyIdx + 1) % len(strategyNames)
			m.manager.SetStrategy(m.strategy())
			m.statusMessage = "strategy: " + m.strategyName()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			if err := m.manager.Initialize(m.words); err != nil {
				m.err = err
				return m, nil
			}
			m.allocs = nil
			m.statusMessage = "pool reset"
			return m, nil
		}
	}

	return m, nil
}

// updatePrompt handles keys while a size or index prompt is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc):
		m.inputMode = NormalMode
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		value := m.input.Value()
		mode := m.inputMode
		m.inputMode = NormalMode
		m.input.Blur()

		n, err := strconv.Atoi(value)
		if err != nil {
			m.statusMessage = fmt.Sprintf("bad number %q", value)
			return m, nil
		}
		if mode == AllocMode {
			return m.alloc(n), nil
		}
		return m.freeAt(n), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// alloc requests size bytes from the pool and records the result.
func (m Model) alloc(size int) Model {
	ref, _, err := m.manager.Alloc(size)
	if err != nil {
		m.statusMessage = fmt.Sprintf("alloc %d: %v", size, err)
		return m
	}
	m.allocs = append(m.allocs, allocation{Ref: ref, Bytes: size})
	m.statusMessage = fmt.Sprintf("#%d: %d bytes at word %d", len(m.allocs)-1, size, ref)
	return m
}

// freeAt releases the allocation with the given panel number.
func (m Model) freeAt(i int) Model {
	if i < 0 || i >= len(m.allocs) {
		m.statusMessage = fmt.Sprintf("no allocation #%d", i)
		return m
	}
	a := m.allocs[i]
	m.manager.Free(a.Ref)
	m.allocs = append(m.allocs[:i], m.allocs[i+1:]...)
	m.statusMessage = fmt.Sprintf("freed %d bytes at word %d", a.Bytes, a.Ref)
	return m
}
