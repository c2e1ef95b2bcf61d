// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/models"
)

const listWindow = 12

type pickerModel struct {
	ctx        context.Context
	services   *service.Services
	pageOrigin string
	prompts    <-chan foreignPrompt

	search  textinput.Model
	spinner spinner.Model

	candidates []models.LoginCandidate
	idx        int
	loading    bool
	busy       bool

	status string
	errMsg string

	detail  *detailState
	confirm *confirmState

	quitByUser bool
}

func newPickerModel(ctx context.Context, services *service.Services, pageOrigin string, prompts <-chan foreignPrompt) pickerModel {
	search := textinput.New()
	search.Prompt = "search: "
	search.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return pickerModel{
		ctx:        ctx,
		services:   services,
		pageOrigin: pageOrigin,
		prompts:    prompts,
		search:     search,
		spinner:    s,
		loading:    true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(""), m.cmdWaitPrompt(), m.spinner.Tick, textinput.Blink)
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case candidatesLoadedMsg:
		// drop answers for queries the user has already typed past
		if msg.query != m.search.Value() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.candidates = msg.candidates
		if m.idx >= len(m.candidates) {
			m.idx = len(m.candidates) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case fillDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "filled: " + strings.Join(msg.filled, ", ")
		return m, tea.Batch(m.cmdClearStatus(), tea.Quit)

	case copiedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = msg.field + " copied to clipboard"
		return m, m.cmdClearStatus()

	case detailLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if current, ok := m.current(); ok {
			m.detail = &detailState{candidate: current, credential: msg.credential}
		}
		return m, nil

	case foreignPromptMsg:
		m.confirm = &confirmState{
			decision:      msg.decision,
			login:         msg.login,
			foreignOrigin: msg.foreignOrigin,
		}
		return m, m.cmdWaitPrompt()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		if m.confirm != nil {
			m.confirm.decision.Abandon()
		}
		return m, tea.Quit
	}

	// the confirmation overlay captures all input while visible
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm.decision.Resolve(true)
			m.confirm = nil
		case key.Matches(msg, keys.no):
			m.confirm.decision.Resolve(false)
			m.confirm = nil
		case key.Matches(msg, keys.esc):
			m.confirm.decision.Abandon()
			m.confirm = nil
		}
		return m, nil
	}

	if m.detail != nil {
		switch msg.String() {
		case "r":
			m.detail.reveal = !m.detail.reveal
		case "esc":
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.candidates)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.fill):
		return m.startFill()
	case key.Matches(msg, keys.copySec):
		return m.startCopy(models.FieldSecret)
	case key.Matches(msg, keys.copyUser):
		return m.startCopy(models.FieldLogin)
	case key.Matches(msg, keys.copyOTP):
		return m.startCopy(models.FieldOtp)
	case key.Matches(msg, keys.detail):
		return m.startDetail()
	}

	// everything else edits the search query
	previous := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != previous {
		m.loading = true
		return m, tea.Batch(cmd, m.cmdLoad(m.search.Value()))
	}
	return m, cmd
}

func (m pickerModel) startFill() (tea.Model, tea.Cmd) {
	current, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.cmdFill(current)
}

func (m pickerModel) startCopy(field string) (tea.Model, tea.Cmd) {
	current, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.cmdCopy(current, field)
}

func (m pickerModel) startDetail() (tea.Model, tea.Cmd) {
	current, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.cmdDetail(current)
}

func (m pickerModel) current() (models.LoginCandidate, bool) {
	if len(m.candidates) == 0 || m.idx < 0 || m.idx >= len(m.candidates) {
		return models.LoginCandidate{}, false
	}
	return m.candidates[m.idx], true
}

// ── commands ──────────────────────────────────────────────────────────

func (m pickerModel) cmdLoad(query string) tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.services.ListingService.Candidates(m.ctx, m.pageOrigin, query, false)
		return candidatesLoadedMsg{query: query, candidates: candidates, err: err}
	}
}

func (m pickerModel) cmdFill(candidate models.LoginCandidate) tea.Cmd {
	return func() tea.Msg {
		response, err := m.services.FillService.Fill(m.ctx, models.FillActionRequest{
			Origin:  m.pageOrigin,
			StoreID: candidate.StoreID,
			Login:   candidate.Login,
		})
		return fillDoneMsg{filled: response.FilledFields, err: err}
	}
}

func (m pickerModel) cmdCopy(candidate models.LoginCandidate, field string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.CredentialService.Copy(m.ctx, m.pageOrigin, candidate.StoreID, candidate.Login, field)
		return copiedMsg{field: field, err: err}
	}
}

func (m pickerModel) cmdDetail(candidate models.LoginCandidate) tea.Cmd {
	return func() tea.Msg {
		credential, err := m.services.CredentialService.Fetch(m.ctx, m.pageOrigin, candidate.StoreID, candidate.Login)
		return detailLoadedMsg{credential: credential, err: err}
	}
}

func (m pickerModel) cmdWaitPrompt() tea.Cmd {
	if m.prompts == nil {
		return nil
	}
	return func() tea.Msg {
		prompt, ok := <-m.prompts
		if !ok {
			return nil
		}
		return foreignPromptMsg{
			decision:      prompt.decision,
			login:         prompt.login,
			foreignOrigin: prompt.foreignOrigin,
		}
	}
}

func (m pickerModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── view ──────────────────────────────────────────────────────────────

func (m pickerModel) View() string {
	if m.confirm != nil {
		return appStyle.Render(m.confirm.view())
	}
	if m.detail != nil {
		return appStyle.Render(m.detail.view())
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render("go-pass-autofill") + "  " + storeStyle.Render(m.pageOrigin))
	if m.loading || m.busy {
		out.WriteString("  " + m.spinner.View())
	}
	out.WriteString("\n\n")
	out.WriteString(m.search.View() + "\n\n")

	switch {
	case m.loading:
		out.WriteString("loading...\n")
	case len(m.candidates) == 0:
		out.WriteString("no logins found\n")
	default:
		out.WriteString(m.listView())
	}

	if m.status != "" {
		out.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		out.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
	}

	out.WriteString("\n" + helpStyle.Render(
		"enter fill   ^y secret   ^u login   ^o otp   ^d detail   esc quit"))
	return appStyle.Render(out.String())
}

func (m pickerModel) listView() string {
	start := 0
	if m.idx >= listWindow {
		start = m.idx - listWindow + 1
	}
	end := start + listWindow
	if end > len(m.candidates) {
		end = len(m.candidates)
	}

	var out strings.Builder
	for i := start; i < end; i++ {
		c := m.candidates[i]
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		marker := " "
		if c.InCurrentHost {
			marker = "*"
		}

		row := fmt.Sprintf("%s%s %s %s", cursor, marker, renderCandidate(c), storeStyle.Render("["+c.StoreName+"]"))
		if c.Recent.Count > 0 {
			row += storeStyle.Render(fmt.Sprintf(" ×%d", c.Recent.Count))
		}
		out.WriteString(row + "\n")
	}
	return out.String()
}
