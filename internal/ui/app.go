package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the shell: navbar on top, dashboard body below, overlays and
// the leader-key help drawn over the body.
type AppModel struct {
	Navbar     *Navbar
	Dashboard  *DashboardView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	About      AboutInfo

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around a dashboard.
func NewAppModel(dashboard *DashboardView, about AboutInfo) *AppModel {
	return &AppModel{
		Navbar:     NewNavbar(),
		Dashboard:  dashboard,
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		About:      about,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode is the mode of the topmost overlay, or ModeDashboard.
func (m *AppModel) Mode() AppMode {
	return m.Overlays.Mode(ModeDashboard)
}

// Init implements tea.Model. Mounts the dashboard.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Dashboard.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd
	case QuitMsg:
		a.Dashboard.Unmount()
		return a, tea.Quit
	case ShowAboutMsg:
		a.Overlays.Push(Overlay{View: NewAboutModal(a.About), Dismiss: "esc", Mode: ModeAbout})
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// Ticks, acquisitions and spinner frames reach the dashboard even while
	// an overlay is open.
	_, cmd := a.Dashboard.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok && !a.KeyHandler.LeaderWaiting && top.IsDismissKey(msg.String()) {
		a.Overlays.Pop()
		return nil
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
		return cmd
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	_, cmd := a.Dashboard.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.Dashboard.View()
	if top, ok := a.Overlays.Peek(); ok {
		body = top.View.View()
		if a.width > 0 {
			body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body)
		}
	}
	if a.KeyHandler.LeaderWaiting {
		body += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.Navbar.Render(a.width), body)
}
