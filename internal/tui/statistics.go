package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-work-tracker/internal/adapter"
	"github.com/MKhiriev/go-work-tracker/models"
)

// StatisticsModel shows the completed-entry aggregates: hours for today and
// hours plus task count for the trailing week.
type StatisticsModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	stats   models.Statistics
	loading bool
	errMsg  string
}

func NewStatisticsModel(ctx context.Context, server adapter.ServerAdapter) *StatisticsModel {
	return &StatisticsModel{ctx: ctx, server: server}
}

func (m *StatisticsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *StatisticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statisticsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "entries"} }
		case "r":
			m.loading = true
			return m, m.cmdLoad()
		}
	}

	return m, nil
}

func (m *StatisticsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("Часов сегодня          │ %.2f\n", m.stats.TodayHours))
		b.WriteString(fmt.Sprintf("Часов за неделю        │ %.2f\n", m.stats.LastWeekHours))
		b.WriteString(fmt.Sprintf("Выполнено задач за неделю │ %d\n", m.stats.LastWeekTasks))
	}

	return renderPage("СТАТИСТИКА", strings.TrimRight(b.String(), "\n"), "esc: назад │ r: обновить")
}

func (m *StatisticsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		stats, err := server.Statistics(ctx)
		return statisticsLoadedMsg{stats: stats, err: err}
	}
}
