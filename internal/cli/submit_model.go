package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/service"
)

type submitResult struct {
	alreadyUsed bool
	err         error
}

type submitDoneMsg submitResult

// submitModel shows a spinner while the inquiry is posted. Key input is
// ignored; the model quits itself when the request finishes.
type submitModel struct {
	spinner spinner.Model
	send    tea.Cmd
	result  submitResult
	done    bool
}

func newSubmitModel(send tea.Cmd) submitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return submitModel{spinner: sp, send: send}
}

func (m submitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.send)
}

func (m submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.result = submitResult(msg)
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m submitModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + formatter.Dim(" Submitting inquiry…") + "\n"
}

// runSubmit posts the inquiry behind a spinner and returns the result.
// The result is captured outside the model so a terminal failure after
// the request fired never triggers a second post.
func runSubmit(ctx context.Context, inquiries service.InquiryService, state domain.FormState, cat catalog.Catalog, tenantID, token string) submitResult {
	var captured *submitResult
	send := func() tea.Msg {
		outcome, err := inquiries.Submit(ctx, state, cat, tenantID, token)
		captured = &submitResult{alreadyUsed: outcome == service.OutcomeAlreadyUsed, err: err}
		return submitDoneMsg(*captured)
	}

	_, err := tea.NewProgram(newSubmitModel(send)).Run()
	if captured != nil {
		return *captured
	}
	if err != nil {
		outcome, serr := inquiries.Submit(ctx, state, cat, tenantID, token)
		return submitResult{alreadyUsed: outcome == service.OutcomeAlreadyUsed, err: serr}
	}
	return submitResult{}
}
