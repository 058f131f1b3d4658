package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lotworks/dealcalc/internal/dealsheet"
	"github.com/lotworks/dealcalc/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SheetLoadedMsg:
		m.sheet = msg.Sheet
		m.tiers = msg.Sheet.CreditTiers
		m.set = dealsheet.FromSheet(msg.Sheet)
		m.selected = 0
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < m.set.Len()-1 {
			m.selected++
		}

	case "up", "k":
		if m.selectedField > 0 {
			m.selectedField--
		}
	case "down", "j":
		if m.selectedField < len(m.fields)-1 {
			m.selectedField++
		}

	case "a":
		before := m.set.Len()
		m.set = m.set.WithAdded()
		if m.set.Len() == before {
			m.statusMsg = fmt.Sprintf("at most %d options", dealsheet.MaxOptions)
		} else {
			m.selected = m.set.Len() - 1
			m.statusMsg = "added " + m.set.Options[m.selected].Label
		}

	case "d":
		before := m.set.Len()
		m.set = m.set.WithDuplicated(m.selected)
		if m.set.Len() == before {
			m.statusMsg = fmt.Sprintf("at most %d options", dealsheet.MaxOptions)
		} else {
			m.selected = m.set.Len() - 1
			m.statusMsg = "duplicated into " + m.set.Options[m.selected].Label
		}

	case "x":
		before := m.set.Len()
		m.set = m.set.WithRemoved(m.selected)
		if m.set.Len() == before {
			m.statusMsg = "the last option cannot be removed"
		} else {
			if m.selected >= m.set.Len() {
				m.selected = m.set.Len() - 1
			}
			m.statusMsg = "option removed"
		}

	case "t":
		if len(m.tiers) > 0 {
			tier := m.tiers[m.tierIndex%len(m.tiers)]
			m.tierIndex++
			m.set = m.set.WithTier(tier)
			m.statusMsg = "applied " + tier.Name
		}

	case "f", "L":
		if opt := m.option(); opt != nil {
			edited := *opt.DeepCopy()
			if msg.String() == "f" {
				edited.Type = domain.DealTypeFinance
			} else {
				edited.Type = domain.DealTypeLease
			}
			m.set = m.set.WithOption(m.selected, edited)
		}

	case "enter":
		if opt := m.option(); opt != nil {
			m.editing = true
			m.editor.SetValue(m.fields[m.selectedField].get(opt))
			m.editor.CursorEnd()
			m.editor.Focus()
			m.statusMsg = ""
		}
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editor.Blur()
		return m, nil

	case "enter":
		opt := m.option()
		if opt == nil {
			m.editing = false
			return m, nil
		}
		edited := *opt.DeepCopy()
		if err := m.fields[m.selectedField].set(&edited, m.editor.Value()); err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.set = m.set.WithOption(m.selected, edited)
		m.editing = false
		m.editor.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
