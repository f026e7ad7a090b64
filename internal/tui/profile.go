package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-work-tracker/internal/adapter"
	"github.com/MKhiriev/go-work-tracker/models"
)

// ProfileModel shows the authenticated user's account record.
type ProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	user    models.User
	loading bool
	errMsg  string
}

func NewProfileModel(ctx context.Context, server adapter.ServerAdapter) *ProfileModel {
	return &ProfileModel{ctx: ctx, server: server}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return NavigateTo{Page: "entries"} }
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString("Email            │ " + m.user.Email + "\n")
		b.WriteString("Дата регистрации │ " + m.user.CreatedAt.Format("2006-01-02 15:04") + "\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}
