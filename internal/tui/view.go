package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lotworks/dealcalc/internal/domain"
)

// View renders the deal sheet editor.
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\npress q to quit\n"
	}
	if m.sheet == nil {
		return "loading deal sheet...\n"
	}

	title := m.sheet.Name
	if title == "" {
		title = m.sheetPath
	}

	results := m.results()
	columns := make([]string, 0, m.set.Len())
	for i := range m.set.Options {
		columns = append(columns, m.renderColumn(i, results[i]))
	}

	sections := []string{
		TitleStyle.Render("dealcalc - " + title),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.renderFieldEditor(),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderColumn renders one option with its computed result.
func (m Model) renderColumn(index int, result domain.DealResult) string {
	opt := &m.set.Options[index]

	var sb strings.Builder
	sb.WriteString(LabelStyle.Render(opt.Label) + "\n")
	sb.WriteString(FieldNameStyle.Render(string(opt.Type)))
	if opt.CreditTier != "" {
		sb.WriteString(FieldNameStyle.Render(" / " + opt.CreditTier))
	}
	sb.WriteString("\n\n")

	writeRow := func(name string, value string) {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			ResultLabelStyle.Render(fmt.Sprintf("%-16s", name)),
			ResultValueStyle.Render(value)))
	}

	switch {
	case result.Finance != nil:
		r := result.Finance
		writeRow("Financed", "$"+r.AmountFinanced.StringFixed(2))
		writeRow("Payment", "$"+r.MonthlyPayment.StringFixed(2)+"/mo")
		writeRow("Interest", "$"+r.TotalInterest.StringFixed(2))
		writeRow("Total", "$"+r.TotalOfPayments.StringFixed(2))
	case result.Lease != nil:
		r := result.Lease
		writeRow("Adj cap cost", "$"+r.AdjustedCapitalizedCost.StringFixed(2))
		writeRow("Residual", "$"+r.ResidualValue.StringFixed(2))
		writeRow("Payment", "$"+r.MonthlyPayment.StringFixed(2)+"/mo")
		writeRow("Due at signing", "$"+r.DueAtSigning.StringFixed(2))
	}

	style := ColumnStyle
	if index == m.selected {
		style = ActiveColumnStyle
	}
	return style.Width(30).Render(sb.String())
}

// renderFieldEditor renders the editable field list for the selected option.
func (m Model) renderFieldEditor() string {
	opt := m.option()
	if opt == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for i, field := range m.fields {
		marker := "  "
		nameStyle := FieldNameStyle
		if i == m.selectedField {
			marker = "> "
			nameStyle = SelectedFieldStyle
		}

		value := field.get(opt)
		if i == m.selectedField && m.editing {
			value = m.editor.View()
		}

		name := field.name
		if !field.activeFor(opt) {
			name += " (inactive)"
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", marker, nameStyle.Render(fmt.Sprintf("%-24s", name)), value))
	}
	return sb.String()
}

// renderStatusBar renders the key help line plus any transient status.
func (m Model) renderStatusBar() string {
	help := []struct{ key, desc string }{
		{"</>", "option"},
		{"^/v", "field"},
		{"enter", "edit"},
		{"a", "add"},
		{"d", "dup"},
		{"x", "remove"},
		{"t", "tier"},
		{"f/L", "finance/lease"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, HelpKeyStyle.Render(h.key)+" "+HelpDescStyle.Render(h.desc))
	}
	bar := StatusBarStyle.Render(strings.Join(parts, "  "))
	if m.statusMsg != "" {
		bar += "\n" + StatusBarStyle.Render(m.statusMsg)
	}
	return bar
}
