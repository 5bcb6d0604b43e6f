// Package tui implements the interactive project browser: a split-screen
// terminal view with the project list on the left and a document preview
// on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maai-dev/maai/internal/project"
)

type model struct {
	store    *project.Store
	projects []project.Info

	cursor    int
	docNames  []string
	docCursor int

	leftViewport  viewport.Model
	rightViewport viewport.Model
	ready         bool
	width         int
	height        int
}

func initialModel(store *project.Store, projects []project.Info) model {
	return model{
		store:    store,
		projects: projects,
	}
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		leftWidth := msg.Width / 3
		if leftWidth < 24 {
			leftWidth = 24
		}
		rightWidth := msg.Width - leftWidth - 1
		viewHeight := msg.Height - 3

		if !m.ready {
			m.leftViewport = viewport.New(leftWidth, viewHeight)
			m.rightViewport = viewport.New(rightWidth, viewHeight)
			m.ready = true
			m.loadDocs()
		} else {
			m.leftViewport.Width = leftWidth
			m.leftViewport.Height = viewHeight
			m.rightViewport.Width = rightWidth
			m.rightViewport.Height = viewHeight
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.loadDocs()
				m.refresh()
			}

		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				m.loadDocs()
				m.refresh()
			}

		case "left", "h":
			if len(m.docNames) > 0 {
				m.docCursor = (m.docCursor - 1 + len(m.docNames)) % len(m.docNames)
				m.loadCurrentDoc()
				m.refresh()
			}

		case "right", "l", "tab":
			if len(m.docNames) > 0 {
				m.docCursor = (m.docCursor + 1) % len(m.docNames)
				m.loadCurrentDoc()
				m.refresh()
			}
		}
	}

	var leftCmd, rightCmd tea.Cmd
	m.leftViewport, leftCmd = m.leftViewport.Update(msg)
	m.rightViewport, rightCmd = m.rightViewport.Update(msg)
	cmds = append(cmds, leftCmd, rightCmd)

	return m, tea.Batch(cmds...)
}

// loadDocs reloads the document list for the selected project and shows
// the first document.
func (m *model) loadDocs() {
	m.docNames = nil
	m.docCursor = 0
	if m.cursor >= len(m.projects) {
		return
	}
	names, err := m.store.ListDocs(m.projects[m.cursor].Slug)
	if err == nil {
		m.docNames = names
	}
	m.loadCurrentDoc()
}

// loadCurrentDoc puts the selected document's content into the right pane.
func (m *model) loadCurrentDoc() {
	if !m.ready {
		return
	}
	m.rightViewport.SetContent(m.renderDoc())
	m.rightViewport.GotoTop()
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.leftViewport.SetContent(m.renderProjects())
	m.rightViewport.SetContent(m.renderDoc())
}

func (m model) renderProjects() string {
	var s strings.Builder

	for i, info := range m.projects {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		style := lipgloss.NewStyle()
		if i == m.cursor {
			style = style.Foreground(lipgloss.Color("212")).Bold(true)
		}

		line := fmt.Sprintf("%s%s", cursor, info.Slug)
		s.WriteString(style.Render(line) + "\n")

		detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		detail := fmt.Sprintf("  %d docs, %d sources", info.Docs, info.Sources)
		if !info.Modified.IsZero() {
			detail += " - " + info.Modified.Format("2006-01-02 15:04")
		}
		s.WriteString(detailStyle.Render(detail) + "\n")
	}

	return s.String()
}

func (m model) renderDoc() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	if len(m.docNames) == 0 {
		s.WriteString(headerStyle.Render("Documents") + "\n\n")
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
		s.WriteString(emptyStyle.Render("No documents in this project"))
		return s.String()
	}

	title := fmt.Sprintf("%s (%d/%d)", m.docNames[m.docCursor], m.docCursor+1, len(m.docNames))
	s.WriteString(headerStyle.Render(title) + "\n")
	dividerWidth := m.rightViewport.Width - 2
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	s.WriteString(strings.Repeat("─", dividerWidth) + "\n\n")

	content, err := m.store.ReadDoc(m.projects[m.cursor].Slug, m.docNames[m.docCursor])
	if err != nil {
		s.WriteString(fmt.Sprintf("Error loading document: %v", err))
		return s.String()
	}

	wrapWidth := m.rightViewport.Width - 3
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	for _, raw := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		for _, line := range wrapText(raw, wrapWidth) {
			s.WriteString(contentStyle.Render(line) + "\n")
		}
	}

	return s.String()
}

// wrapText wraps text to fit within the specified width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) > width {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine += " " + word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	return fmt.Sprintf("%s\n%s\n%s", header, m.renderSplitView(), footer)
}

func (m model) renderSplitView() string {
	leftStyle := lipgloss.NewStyle().
		Width(m.leftViewport.Width).
		Height(m.leftViewport.Height)

	rightStyle := lipgloss.NewStyle().
		Width(m.rightViewport.Width).
		Height(m.rightViewport.Height)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Height(m.leftViewport.Height)

	divider := strings.Builder{}
	for i := 0; i < m.leftViewport.Height; i++ {
		divider.WriteString("│")
		if i < m.leftViewport.Height-1 {
			divider.WriteString("\n")
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.leftViewport.View()),
		dividerStyle.Render(divider.String()),
		rightStyle.Render(m.rightViewport.View()),
	)
}

func (m model) renderHeader() string {
	title := "maai - Projects"
	if m.cursor < len(m.projects) {
		title = fmt.Sprintf("maai - %s", m.projects[m.cursor].Slug)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	return style.Render(title)
}

func (m model) renderFooter() string {
	info := "↑/↓: project • ←/→: document • q: quit"

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render(info)
}

// Browse lists the projects in the store and runs the interactive browser.
// With no projects it prints a hint and returns without starting the UI.
func Browse(store *project.Store) error {
	projects, err := store.List()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects yet. Run 'maai idea \"<name>\"' to create one.")
		return nil
	}

	p := tea.NewProgram(
		initialModel(store, projects),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running project browser: %w", err)
	}
	return nil
}
