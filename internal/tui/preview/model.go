// Package preview implements an interactive terminal browser for generated
// template variants.
package preview

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardforge/cardforge/internal/template"
	"github.com/cardforge/cardforge/internal/variation"
)

// variantsMsg delivers the generated variant set to the model.
type variantsMsg []*template.CardTemplate

// Model is the variant browser model. Variants are generated asynchronously
// after the program starts; a spinner runs until they arrive.
type Model struct {
	gen      *variation.Generator
	tmpl     *template.CardTemplate
	seeds    []string
	variants []*template.CardTemplate
	cursor   int
	selected string
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser that will generate variants of tmpl. With a
// non-empty seeds list the set is deterministic; otherwise palettes are
// drawn at random.
func NewModel(gen *variation.Generator, tmpl *template.CardTemplate, seeds []string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		gen:     gen,
		tmpl:    tmpl,
		seeds:   seeds,
		spinner: s,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generateCmd())
}

func (m Model) generateCmd() tea.Cmd {
	return func() tea.Msg {
		if len(m.seeds) > 0 {
			return variantsMsg(m.gen.VariationsSeeded(m.tmpl, m.seeds))
		}
		return variantsMsg(m.gen.Variations(m.tmpl))
	}
}

// Selected returns the id of the variant chosen with enter, or an empty
// string if the browser was dismissed.
func (m Model) Selected() string {
	return m.selected
}
