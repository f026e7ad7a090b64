package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-work-tracker/internal/adapter"
	"github.com/MKhiriev/go-work-tracker/models"
)

// EntryFormModel is the shared create/edit form for a work entry. A
// [formInit] payload with a nil Entry opens the form in creation mode with
// today's date pre-filled; a non-nil Entry pre-fills every field and submits
// a partial update instead.
type EntryFormModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs    []textinput.Model
	focus     int
	completed bool
	editing   *models.WorkEntry

	submitting bool
	errMsg     string
}

func NewEntryFormModel(ctx context.Context, server adapter.ServerAdapter) *EntryFormModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "ГГГГ-ММ-ДД"
	fields[0].CharLimit = 10
	fields[0].Width = 40

	fields[1] = textinput.New()
	fields[1].Placeholder = "8.5"
	fields[1].CharLimit = 6
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "что было сделано"
	fields[2].CharLimit = 500
	fields[2].Width = 40

	return &EntryFormModel{
		ctx:    ctx,
		server: server,
		inputs: fields,
	}
}

func (m *EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formInit:
		m.reset(msg.Entry)
		return m, textinput.Blink

	case entrySavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "entries"} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "entries"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "ctrl+t":
			m.completed = !m.completed
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			date := strings.TrimSpace(m.inputs[0].Value())
			hours := strings.TrimSpace(m.inputs[1].Value())
			description := strings.TrimSpace(m.inputs[2].Value())

			if date == "" || hours == "" || description == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			hoursValue, err := strconv.ParseFloat(hours, 64)
			if err != nil || hoursValue <= 0 {
				m.errMsg = "Часы должны быть положительным числом"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(date, hoursValue, description)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EntryFormModel) View() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Дата      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Часы      │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Описание  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	done := " "
	if m.completed {
		done = "x"
	}
	b.WriteString("Выполнено │ [" + done + "]\n")

	label := "[Создать]"
	if m.editing != nil {
		label = "[Сохранить]"
	}
	if m.submitting {
		label = label[:len(label)-1] + "...]"
	}
	b.WriteString("\n" + label + "\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "НОВАЯ ЗАПИСЬ"
	if m.editing != nil {
		title = "РЕДАКТИРОВАНИЕ ЗАПИСИ"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ctrl+t: выполнено │ enter: сохранить")
}

func (m *EntryFormModel) reset(entry *models.WorkEntry) {
	m.editing = entry
	m.submitting = false
	m.errMsg = ""
	m.completed = false

	if entry != nil {
		m.inputs[0].SetValue(entry.Date.String())
		m.inputs[1].SetValue(strconv.FormatFloat(entry.Hours, 'f', -1, 64))
		m.inputs[2].SetValue(entry.Description)
		m.completed = entry.Completed
	} else {
		m.inputs[0].SetValue(models.Today().String())
		m.inputs[1].SetValue("")
		m.inputs[2].SetValue("")
	}

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *EntryFormModel) cmdSave(date string, hours float64, description string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	completed := m.completed
	editing := m.editing

	hoursValue := models.Hours(hours)

	return func() tea.Msg {
		var err error
		if editing != nil {
			_, err = server.UpdateEntry(ctx, editing.ID, models.UpdateEntryRequest{
				Date:        &date,
				Hours:       &hoursValue,
				Description: &description,
				Completed:   &completed,
			})
		} else {
			_, err = server.CreateEntry(ctx, models.CreateEntryRequest{
				Date:        &date,
				Hours:       &hoursValue,
				Description: &description,
				Completed:   &completed,
			})
		}

		return entrySavedMsg{err: err}
	}
}

func (m *EntryFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EntryFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
