package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dperalta/projecthub/internal/cli/formatter"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/service"
)

// editMode is the dossier editor's input state.
type editMode int

const (
	modeBrowse editMode = iota
	modeAddSub
	modeRename
	modeObserve
)

// snapshotMsg carries the post-mutation state back into the model.
type snapshotMsg struct {
	snap *service.Snapshot
}

// errMsg carries a failed operation's error.
type errMsg struct {
	err error
}

// dossierModel is the interactive dossier editor. All transient state (mode,
// drafts, local progress) is reset whenever a refreshed snapshot arrives, so
// the view never shows input tied to stale data.
type dossierModel struct {
	app       *App
	projectID string
	snap      *service.Snapshot

	activeKey int // selected activity tab
	subIndex  int // selected sub-activity within the tab

	mode  editMode
	input textinput.Model

	// localProgress holds uncommitted +/- adjustments; committed on enter.
	localProgress int
	progressDirty bool

	status   string
	quitting bool
}

func newDossierModel(app *App, projectID string, snap *service.Snapshot) dossierModel {
	ti := textinput.New()
	ti.CharLimit = 120
	m := dossierModel{
		app:       app,
		projectID: projectID,
		snap:      snap,
		input:     ti,
	}
	m.resetTransient()
	return m
}

func (m *dossierModel) project() *domain.Project {
	return m.snap.ProjectByID(m.projectID)
}

func (m *dossierModel) activity() (domain.Activity, bool) {
	p := m.project()
	if p == nil {
		return domain.Activity{}, false
	}
	a, ok := p.Dossier[m.activeKey]
	return a, ok
}

func (m *dossierModel) selectedSub() (domain.SubActivity, bool) {
	a, ok := m.activity()
	if !ok || m.subIndex < 0 || m.subIndex >= len(a.SubActivities) {
		return domain.SubActivity{}, false
	}
	return a.SubActivities[m.subIndex], true
}

// resetTransient drops every piece of uncommitted editor state. Called on
// construction and whenever a fresh snapshot replaces the current one.
func (m *dossierModel) resetTransient() {
	m.mode = modeBrowse
	m.input.Reset()
	m.input.Blur()
	m.progressDirty = false
	m.localProgress = 0

	p := m.project()
	if p == nil || len(p.Dossier) == 0 {
		m.activeKey = 0
		m.subIndex = 0
		return
	}
	keys := p.Dossier.Keys()
	if _, ok := p.Dossier[m.activeKey]; !ok {
		m.activeKey = keys[0]
	}
	if a, ok := m.activity(); ok && m.subIndex >= len(a.SubActivities) {
		m.subIndex = 0
	}
	if sub, ok := m.selectedSub(); ok {
		m.localProgress = sub.Progress
	}
}

func (m dossierModel) Init() tea.Cmd {
	return nil
}

func (m dossierModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = msg.snap
		m.status = ""
		m.resetTransient()
		return m, nil

	case errMsg:
		m.status = formatter.StyleRed.Render(msg.err.Error())
		m.mode = modeBrowse
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m dossierModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.moveTab(-1)
	case "right", "l":
		m.moveTab(1)
	case "up", "k":
		if m.subIndex > 0 {
			m.subIndex--
			m.syncLocalProgress()
		}
	case "down", "j":
		if a, ok := m.activity(); ok && m.subIndex < len(a.SubActivities)-1 {
			m.subIndex++
			m.syncLocalProgress()
		}

	case "+", "=":
		if _, ok := m.selectedSub(); ok {
			m.localProgress += 5
			if m.localProgress > 100 {
				m.localProgress = 100
			}
			m.progressDirty = true
		}
	case "-", "_":
		if _, ok := m.selectedSub(); ok {
			m.localProgress -= 5
			if m.localProgress < 0 {
				m.localProgress = 0
			}
			m.progressDirty = true
		}
	case "enter":
		// Commit the locally adjusted progress.
		if sub, ok := m.selectedSub(); ok && m.progressDirty {
			return m, m.commitProgress(sub.ID, m.localProgress)
		}

	case "a":
		m.mode = modeAddSub
		m.input.Placeholder = "Nombre de la sub-actividad"
		m.input.Focus()
	case "r":
		if a, ok := m.activity(); ok {
			m.mode = modeRename
			m.input.Placeholder = "Nuevo nombre de la actividad"
			m.input.SetValue(a.Name)
			m.input.Focus()
		}
	case "o":
		if sub, ok := m.selectedSub(); ok {
			m.mode = modeObserve
			m.input.Placeholder = "Observaciones"
			m.input.SetValue(sub.Observations)
			m.input.Focus()
		}
	case "x":
		if sub, ok := m.selectedSub(); ok {
			return m, m.removeSub(sub.ID)
		}
	}

	return m, nil
}

func (m dossierModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: discard the draft without writing.
		m.mode = modeBrowse
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.mode = modeBrowse
		m.input.Reset()
		m.input.Blur()
		switch mode {
		case modeAddSub:
			return m, m.addSub(value)
		case modeRename:
			return m, m.renameActivity(value)
		case modeObserve:
			if sub, ok := m.selectedSub(); ok {
				return m, m.saveObservations(sub.ID, value)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dossierModel) moveTab(delta int) {
	p := m.project()
	if p == nil {
		return
	}
	keys := p.Dossier.Keys()
	for i, k := range keys {
		if k == m.activeKey {
			next := i + delta
			if next >= 0 && next < len(keys) {
				m.activeKey = keys[next]
				m.subIndex = 0
				m.syncLocalProgress()
			}
			return
		}
	}
}

func (m *dossierModel) syncLocalProgress() {
	m.progressDirty = false
	m.localProgress = 0
	if sub, ok := m.selectedSub(); ok {
		m.localProgress = sub.Progress
	}
}

// ── service commands ─────────────────────────────────────────────────────────

func (m dossierModel) addSub(name string) tea.Cmd {
	key := m.activeKey
	return func() tea.Msg {
		snap, err := m.app.Dossier.AddSubActivity(context.Background(), m.projectID, key, domain.SubActivity{Name: name})
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap}
	}
}

func (m dossierModel) renameActivity(name string) tea.Cmd {
	key := m.activeKey
	return func() tea.Msg {
		snap, err := m.app.Dossier.RenameActivity(context.Background(), m.projectID, key, name)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap}
	}
}

func (m dossierModel) commitProgress(subID string, progress int) tea.Cmd {
	key := m.activeKey
	return func() tea.Msg {
		snap, err := m.app.Dossier.SetSubActivityProgress(context.Background(), m.projectID, key, subID, progress)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap}
	}
}

func (m dossierModel) saveObservations(subID, text string) tea.Cmd {
	key := m.activeKey
	return func() tea.Msg {
		snap, err := m.app.Dossier.SetSubActivityObservations(context.Background(), m.projectID, key, subID, text)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap}
	}
}

func (m dossierModel) removeSub(subID string) tea.Cmd {
	key := m.activeKey
	return func() tea.Msg {
		snap, err := m.app.Dossier.RemoveSubActivity(context.Background(), m.projectID, key, subID)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dossierModel) View() string {
	if m.quitting {
		return ""
	}
	p := m.project()
	if p == nil {
		return formatter.Dim("Proyecto no encontrado.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Bold(p.Name) + "  " +
		formatter.RenderProgress(float64(p.DossierProgress())/100, 16) + "\n\n")

	// Activity tabs.
	for _, key := range p.Dossier.Keys() {
		label := fmt.Sprintf(" %d ", key)
		if key == m.activeKey {
			b.WriteString(formatter.StyleHeader.Render(label))
		} else {
			b.WriteString(formatter.Dim(label))
		}
	}
	b.WriteString("\n\n")

	if a, ok := m.activity(); ok {
		b.WriteString(formatter.Bold(a.Name) + "  " +
			formatter.RenderProgress(float64(a.Progress())/100, 10) + "\n")
		if len(a.SubActivities) == 0 {
			b.WriteString(formatter.Dim("  (sin sub-actividades)") + "\n")
		}
		for i, sub := range a.SubActivities {
			cursor := "  "
			progress := sub.Progress
			if i == m.subIndex {
				cursor = formatter.StyleHeader.Render("» ")
				if m.progressDirty {
					progress = m.localProgress
				}
			}
			line := fmt.Sprintf("%s%s  %s", cursor, sub.Name,
				formatter.RenderProgress(float64(progress)/100, 8))
			if i == m.subIndex && m.progressDirty {
				line += formatter.StyleYellow.Render(" *")
			}
			b.WriteString(line + "\n")
			if strings.TrimSpace(sub.Observations) != "" {
				b.WriteString("     " + formatter.StyleYellow.Render("⚑ "+sub.Observations) + "\n")
			}
		}
	}

	if m.mode != modeBrowse {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + formatter.Dim("←/→ actividad  ↑/↓ sub  +/- avance  enter confirmar  a agregar  r renombrar  o observar  x eliminar  q salir") + "\n")
	return b.String()
}
