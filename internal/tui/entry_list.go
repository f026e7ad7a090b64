package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-work-tracker/internal/adapter"
	"github.com/MKhiriev/go-work-tracker/models"
)

// EntryListModel is the Bubble Tea model for the paginated work-entry list.
// It loads one page at a time from the server, supports cursor navigation,
// page switching, deletion with confirmation, and copying the selected
// entry's description to the system clipboard.
type EntryListModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	entries    []models.WorkEntry
	pagination models.Pagination
	idx        int
	page       int

	loading       bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewEntryListModel(ctx context.Context, server adapter.ServerAdapter) *EntryListModel {
	return &EntryListModel{
		ctx:    ctx,
		server: server,
		page:   1,
	}
}

// Init implements [tea.Model]. Triggers loading of the current page.
func (m *EntryListModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.entries = msg.resp.WorkEntries
		m.pagination = msg.resp.Pagination
		m.page = m.pagination.Page
		if m.idx >= len(m.entries) {
			m.idx = 0
		}
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Запись удалена"
		m.loading = true
		return m, m.cmdLoad()

	case copiedMsg:
		m.status = "Описание скопировано в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *EntryListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		if key.Matches(msg, keys.yes) {
			m.confirmDelete = false
			return m, m.cmdDelete(m.entries[m.idx].ID)
		}
		m.confirmDelete = false
		m.status = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.left):
		if m.pagination.HasPrev && !m.loading {
			m.page--
			m.loading = true
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.right):
		if m.pagination.HasNext && !m.loading {
			m.page++
			m.loading = true
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		return m, func() tea.Msg {
			return NavigateTo{Page: "form", Payload: formInit{}}
		}
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		if len(m.entries) == 0 {
			return m, nil
		}
		entry := m.entries[m.idx]
		return m, func() tea.Msg {
			return NavigateTo{Page: "form", Payload: formInit{Entry: &entry}}
		}
	case key.Matches(msg, keys.delete):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.confirmDelete = true
		m.status = ""
	case key.Matches(msg, keys.copy):
		if len(m.entries) == 0 {
			return m, nil
		}
		return m, m.cmdCopy(m.entries[m.idx].Description)
	case key.Matches(msg, keys.stats):
		return m, func() tea.Msg { return NavigateTo{Page: "statistics"} }
	case key.Matches(msg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: "profile"} }
	}

	return m, nil
}

func (m *EntryListModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
		return renderPage("МОИ ЗАПИСИ", strings.TrimRight(b.String(), "\n"), "")
	}

	if len(m.entries) == 0 {
		b.WriteString("Записей пока нет. Нажмите n, чтобы добавить первую.\n")
	} else {
		b.WriteString("  Дата       │ Часы  │ Готово │ Описание\n")
		b.WriteString("  ───────────┼───────┼────────┼──────────────────────────────\n")
		for i, entry := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			done := " "
			if entry.Completed {
				done = "x"
			}
			b.WriteString(fmt.Sprintf("%s %-10s │ %5.2f │   [%s]  │ %s\n",
				cursor, entry.Date.String(), entry.Hours, done, fitText(entry.Description, 30)))
		}

		b.WriteString(fmt.Sprintf("\nСтраница %d из %d (всего записей: %d)\n",
			m.pagination.Page, m.pagination.TotalPages, m.pagination.Total))
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Удалить запись " + strconv.FormatInt(m.entries[m.idx].ID, 10) + "? y/n"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "n: новая │ e: изменить │ d: удалить │ c: копировать │ ←/→: страницы │ s: статистика │ p: профиль │ r: обновить"
	return renderPage("МОИ ЗАПИСИ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *EntryListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server
	page := m.page

	return func() tea.Msg {
		resp, err := server.ListEntries(ctx, models.ListQuery{
			Page: strconv.Itoa(page),
		})
		return entriesLoadedMsg{resp: resp, err: err}
	}
}

func (m *EntryListModel) cmdDelete(entryID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return entryDeletedMsg{err: server.DeleteEntry(ctx, entryID)}
	}
}

func (m *EntryListModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return entriesLoadedMsg{err: err}
		}
		return copiedMsg{}
	}
}
