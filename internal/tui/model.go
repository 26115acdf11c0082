package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/invoiceful/internal/app"
	"github.com/andy/invoiceful/internal/domain"
	"github.com/andy/invoiceful/internal/export"
	"github.com/andy/invoiceful/internal/format"
)

// Model is the single-screen invoice form. Every edit funnels through
// domain.Reduce; the model never mutates the draft directly.
type Model struct {
	app   *app.App
	state domain.Invoice

	rows   []formRow
	cursor int

	editing bool
	input   textinput.Model
	area    textarea.Model

	exporting    bool
	confirmReset bool
	statusMsg    string
	errMsg       string

	width  int
	height int
}

// New creates the form model seeded with the stored draft
func New(a *app.App) Model {
	state := a.LoadDraft(context.Background())
	return Model{
		app:   a,
		state: state,
		rows:  buildRows(state),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case draftSavedMsg:
		// Fire-and-forget; a failed save must not disturb the form
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err == nil {
			m.statusMsg = fmt.Sprintf("Exported %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		m.confirmReset = false
		if s := msg.String(); s == "y" || s == "Y" {
			m.statusMsg = "Invoice reset"
			cmd := m.apply(domain.Reset{})
			return m, cmd
		}
		return m, nil
	}

	m.statusMsg = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, DefaultKeyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, DefaultKeyMap.Edit):
		return m.startEdit()

	case key.Matches(msg, DefaultKeyMap.AddItem):
		cmd := m.apply(domain.AddItem{})
		return m, cmd

	case key.Matches(msg, DefaultKeyMap.RemoveItem):
		row := m.rows[m.cursor]
		if row.kind != rowItemField {
			m.errMsg = "Select a line item to remove"
			return m, nil
		}
		if len(m.state.Items) == 1 {
			// The reducer refuses this too; the form just explains why
			m.errMsg = "An invoice needs at least one line item"
			return m, nil
		}
		cmd := m.apply(domain.RemoveItem{ID: row.itemID})
		return m, cmd

	case key.Matches(msg, DefaultKeyMap.Currency):
		next := cycle(Currencies, m.state.Currency)
		cmd := m.apply(domain.UpdateField{Field: domain.FieldCurrency, Value: next})
		return m, cmd

	case key.Matches(msg, DefaultKeyMap.Locale):
		next := cycle(Locales, m.state.Locale)
		cmd := m.apply(domain.UpdateField{Field: domain.FieldLocale, Value: next})
		return m, cmd

	case key.Matches(msg, DefaultKeyMap.Export):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.exportPDF()

	case key.Matches(msg, DefaultKeyMap.Reset):
		m.confirmReset = true
	}

	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	row := m.rows[m.cursor]
	value := rowValue(m.state, row)

	var cmd tea.Cmd
	if row.multiline() {
		m.area = textarea.New()
		m.area.SetWidth(60)
		m.area.SetHeight(4)
		m.area.CharLimit = 2000
		m.area.SetValue(value)
		cmd = m.area.Focus()
	} else {
		m.input = textinput.New()
		m.input.CharLimit = 200
		m.input.Width = 40
		m.input.SetValue(value)
		m.input.CursorEnd()
		cmd = m.input.Focus()
	}
	m.editing = true
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.rows[m.cursor]

	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil

	case "enter":
		if !row.multiline() {
			return m.commitEdit(row, m.input.Value())
		}
		// In a textarea enter inserts a newline; ctrl+s commits

	case "ctrl+s":
		if row.multiline() {
			return m.commitEdit(row, m.area.Value())
		}
		return m.commitEdit(row, m.input.Value())
	}

	var cmd tea.Cmd
	if row.multiline() {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) commitEdit(row formRow, value string) (tea.Model, tea.Cmd) {
	m.editing = false
	cmd := m.apply(rowAction(row, value))
	return m, cmd
}

// apply reduces one action into the next state and schedules a save of
// the new snapshot
func (m *Model) apply(action domain.Action) tea.Cmd {
	m.state = domain.Reduce(m.state, action)
	m.rows = buildRows(m.state)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	return m.saveDraft()
}

func (m *Model) saveDraft() tea.Cmd {
	snapshot := m.state
	return func() tea.Msg {
		return draftSavedMsg{err: m.app.SaveDraft(context.Background(), snapshot)}
	}
}

// exportPDF renders the current snapshot in the background. Later edits
// cannot touch the snapshot, so the export is safe to run concurrently.
func (m *Model) exportPDF() tea.Cmd {
	snapshot := m.state
	dir := m.app.Config.Export.OutputDir
	return func() tea.Msg {
		path, err := export.WriteFile(snapshot, dir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Invoiceful"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Currency: %s  Locale: %s", m.state.Currency, m.state.Locale)))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		if row.kind == rowItemField && row.itemIndex == 0 && row.itemField == domain.ItemDescription {
			b.WriteString("\n" + subtitleStyle.Render("Items") + "\n")
		}

		label := fmt.Sprintf("%-20s", row.label)
		indicator := "  "
		style := labelStyle
		if i == m.cursor && !m.editing {
			indicator = "> "
			style = focusedStyle
		}

		if m.editing && i == m.cursor {
			var editor string
			if row.multiline() {
				editor = m.area.View()
			} else {
				editor = m.input.View()
			}
			b.WriteString(fmt.Sprintf("%s%s\n%s\n", indicator, focusedStyle.Render(label), editor))
			continue
		}

		value := rowValue(m.state, row)
		if row.multiline() {
			value = firstLine(value)
		}
		if value == "" {
			value = subtitleStyle.Render("—")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", indicator, style.Render(label), value))
	}

	cur, loc := m.state.Currency, m.state.Locale
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", "Subtotal")), format.Amount(m.state.Subtotal(), cur, loc)))
	if m.state.TaxRate > 0 {
		taxLabel := fmt.Sprintf("%-20s", fmt.Sprintf("Tax (%s%%)", formatNumber(m.state.TaxRate)))
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(taxLabel), format.Amount(m.state.TaxAmount(), cur, loc)))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", totalStyle.Render(fmt.Sprintf("%-20s", "Total")), totalStyle.Render(format.Amount(m.state.Total(), cur, loc))))

	switch {
	case m.exporting:
		b.WriteString("\n" + warnStyle.Render("Generating PDF..."))
	case m.confirmReset:
		b.WriteString("\n" + warnStyle.Render("Reset the invoice and start over? (y/N)"))
	case m.errMsg != "":
		b.WriteString("\n" + errStyle.Render(m.errMsg))
	case m.statusMsg != "":
		b.WriteString("\n" + statusStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	if m.editing {
		if m.rows[m.cursor].multiline() {
			b.WriteString(helpStyle.Render("ctrl+s: save • esc: cancel"))
		} else {
			b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
		}
	} else {
		b.WriteString(helpStyle.Render("↑/↓: navigate • enter: edit • a: add item • d: remove item • c: currency • l: locale • p: export pdf • r: reset • q: quit"))
	}

	return b.String()
}

// firstLine collapses a multiline value to its first line for row display
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// Run starts the invoice form in the alternate screen
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
