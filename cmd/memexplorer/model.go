package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memkit/pool"
	"github.com/joshuapare/memkit/pool/fit"
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	AllocMode            // typing a byte size
	FreeMode             // typing an allocation number
)

// strategyNames is the cycle order for the s key.
var strategyNames = []string{"best", "worst", "first"}

// allocation is one live allocation shown in the side panel.
type allocation struct {
	Ref   pool.Ref
	Bytes int
}

// Model is the main application model
type Model struct {
	manager  *pool.Manager
	words    int
	wordSize int

	strategyIdx int
	allocs      []allocation

	keys  KeyMap
	input textinput.Model

	inputMode InputMode
	width     int
	height    int

	// Help overlay
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel creates a new TUI model with an initialized pool.
func NewModel(words, wordSize int) (Model, error) {
	m, err := pool.New(wordSize, fit.BestFit{})
	if err != nil {
		return Model{}, err
	}
	if err := m.Initialize(words); err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 12

	return Model{
		manager:  m,
		words:    words,
		wordSize: wordSize,
		keys:     DefaultKeyMap(),
		input:    ti,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the pool's arena.
func (m Model) Close() error {
	if m.manager == nil {
		return nil
	}
	return m.manager.Shutdown()
}

// strategy returns the currently selected fit strategy.
func (m Model) strategy() fit.Strategy {
	s, _ := fit.ByName(strategyNames[m.strategyIdx])
	return s
}

// strategyName returns the display name of the active strategy.
func (m Model) strategyName() string {
	return strategyNames[m.strategyIdx]
}
