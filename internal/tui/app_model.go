package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/app-dashboard/internal/adapter"
	"github.com/MKhiriev/app-dashboard/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const dashboardTitle = "App Dashboard"

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenPassword
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx     context.Context
	adapter adapter.DashboardAdapter

	currentScreen screen

	list   listModel
	detail detailModel
	form   formAppModel
	prompt passwordPromptModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	showBuildInfo bool
	buildInfo     models.AppBuildInfo
	serverVersion string
}

func newAppModel(ctx context.Context, dashboard adapter.DashboardAdapter, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		adapter:       dashboard,
		currentScreen: screenList,
		list:          newListModel(),
		buildInfo:     buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadList(), m.cmdLoadVersion())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.apps = msg.apps
		m.list.clampCursor()
		return m, nil
	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case appSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.handleAuthError(msg.err)
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "App added"
		reload := m.reload()
		return m, tea.Batch(reload, cmdClearStatus())
	case appDeletedMsg:
		m.prompt.submitting = false
		if msg.err != nil {
			m.handleAuthError(msg.err)
			m.currentScreen = screenList
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = fmt.Sprintf("Deleted %q", msg.name)
		reload := m.reload()
		return m, tea.Batch(reload, cmdClearStatus())
	case sessionCreatedMsg:
		m.prompt.submitting = false
		m.currentScreen = screenList
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.admin = true
		m.list.status = "Admin session until " + expiryText(msg.token)
		return m, cmdClearStatus()
	case copiedMsg:
		status := "Copied!"
		if msg.err != nil {
			status = "Copy failed: " + msg.err.Error()
		}
		m.detail.status = status
		m.list.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenPassword:
		return m.updatePassword(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(dashboardTitle)
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenPassword:
		body = m.prompt.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleAuthError drops a session token the server no longer accepts.
func (m *appModel) handleAuthError(err error) {
	if errors.Is(err, adapter.ErrUnauthorized) && m.adapter.Token() != "" {
		m.adapter.SetToken("")
		m.list.admin = false
	}
}

func (m *appModel) reload() tea.Cmd {
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.apps)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		app, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{app: app}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newApp):
		m.form = newFormAppModel()
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		app, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.askDelete(app.Name)
	case key.Matches(keyMsg, keys.copy):
		app, ok := m.list.current()
		if !ok || app.URL == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(app.URL)
	case key.Matches(keyMsg, keys.refresh):
		reload := m.reload()
		return m, reload
	case key.Matches(keyMsg, keys.session):
		m.prompt = newPasswordPromptModel(promptSession, "")
		m.currentScreen = screenPassword
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.app.Name)
	case key.Matches(keyMsg, keys.copy):
		if m.detail.app.URL == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.app.URL)
	}

	return m, nil
}

func (m *appModel) askDelete(name string) {
	m.showConfirm = true
	m.confirm = confirmModel{name: name}
}

// updateConfirm deletes right away with an admin session and asks for the
// password otherwise.
func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		name := m.confirm.name
		if m.adapter.Token() != "" {
			return m, m.cmdDeleteApp(name, "")
		}
		m.prompt = newPasswordPromptModel(promptDelete, name)
		m.currentScreen = screenPassword
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.form.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.form.complete() {
				m.showErrorf("Name, URL, icon and description are required")
				return m, nil
			}
			if m.form.password() == "" && m.adapter.Token() == "" {
				m.showErrorf("Admin password is required")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdAddApp(m.form.toApp(), m.form.password())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.prompt.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			password := m.prompt.input.Value()
			if password == "" {
				m.showErrorf("Admin password is required")
				return m, nil
			}
			m.prompt.submitting = true
			if m.prompt.purpose == promptSession {
				return m, m.cmdCreateSession(password)
			}
			return m, m.cmdDeleteApp(m.prompt.target, password)
		}
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	dashboard := m.adapter
	return func() tea.Msg {
		apps, err := dashboard.ListApps(ctx)
		return listLoadedMsg{apps: apps, err: err}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	ctx := m.ctx
	dashboard := m.adapter
	return func() tea.Msg {
		version, err := dashboard.GetServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m appModel) cmdAddApp(app models.App, password string) tea.Cmd {
	ctx := m.ctx
	dashboard := m.adapter
	return func() tea.Msg {
		return appSavedMsg{err: dashboard.AddApp(ctx, app, password)}
	}
}

func (m appModel) cmdDeleteApp(name, password string) tea.Cmd {
	ctx := m.ctx
	dashboard := m.adapter
	return func() tea.Msg {
		return appDeletedMsg{name: name, err: dashboard.DeleteApp(ctx, name, password)}
	}
}

func (m appModel) cmdCreateSession(password string) tea.Cmd {
	ctx := m.ctx
	dashboard := m.adapter
	return func() tea.Msg {
		token, err := dashboard.CreateSession(ctx, password)
		return sessionCreatedMsg{token: token, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func expiryText(token models.Token) string {
	if token.ExpiresAt == nil {
		return "server restart"
	}
	return token.ExpiresAt.Local().Format(time.DateTime)
}
