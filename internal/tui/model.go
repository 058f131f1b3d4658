package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/config"
	"github.com/lotworks/dealcalc/internal/dealsheet"
	"github.com/lotworks/dealcalc/internal/domain"
)

// Model is the interactive deal sheet editor: 1-4 option columns with the
// matching calculator rerun on every edit. All mutations go through the
// option set's with-methods, so each keystroke produces a fresh snapshot and
// the previous one is never touched.
type Model struct {
	sheetPath string

	set    dealsheet.OptionSet
	sheet  *domain.DealSheet
	tiers  []domain.CreditTier
	engine *calculation.Engine
	fields []fieldDef

	selected      int // option column
	selectedField int
	tierIndex     int

	editing bool
	editor  textinput.Model

	width  int
	height int

	statusMsg string
	err       error
}

// SheetLoadedMsg carries a successfully parsed deal sheet file.
type SheetLoadedMsg struct {
	Sheet *domain.DealSheet
}

// ErrorMsg carries a fatal load error.
type ErrorMsg struct {
	Err error
}

// NewModel creates the editor model for a deal sheet file.
func NewModel(sheetPath string) Model {
	editor := textinput.New()
	editor.CharLimit = 16
	editor.Width = 14

	return Model{
		sheetPath: sheetPath,
		engine:    calculation.NewEngine(),
		fields:    editableFields(),
		editor:    editor,
		width:     80,
		height:    24,
	}
}

// Init loads the deal sheet file (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadSheetCmd(m.sheetPath)
}

func loadSheetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		sheet, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SheetLoadedMsg{Sheet: sheet}
	}
}

// option returns the currently selected option, or nil before load.
func (m *Model) option() *domain.DealOption {
	if m.selected < 0 || m.selected >= m.set.Len() {
		return nil
	}
	return &m.set.Options[m.selected]
}

// results recomputes every option column. The engine is pure and O(1) per
// option, so this runs on every render without a command.
func (m *Model) results() []domain.DealResult {
	out := make([]domain.DealResult, m.set.Len())
	for i := range m.set.Options {
		result, err := m.engine.Compute(&m.set.Options[i])
		if err != nil {
			continue
		}
		out[i] = result
	}
	return out
}
