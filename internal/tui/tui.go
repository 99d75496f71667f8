package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/rofi-recent/pkg/models"
)

type viewMode int

const (
	programView viewMode = iota
	fileView
)

type model struct {
	ctx       context.Context
	load      Loader
	requestID string
	loading   bool
	indicator *LoadingIndicator

	groups          models.ProgramGroups
	programs        []string
	currentMode     viewMode
	programCursor   int
	fileCursor      int
	selectedProgram string
	selectedFile    *models.FileEntry

	viewport      viewport.Model
	leftViewport  viewport.Model // file list in split view
	rightViewport viewport.Model // file details in split view
	ready         bool
	err           error
	width         int
	height        int
}

func initialModel(ctx context.Context, load Loader) model {
	return model{
		ctx:         ctx,
		load:        load,
		requestID:   newRequestID(),
		loading:     true,
		indicator:   NewLoadingIndicator("Reading recently used files..."),
		currentMode: programView,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadGroupsCmd(m.ctx, m.requestID, m.load), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		leftWidth := msg.Width/2 - 1
		rightWidth := msg.Width - leftWidth - 1
		viewHeight := msg.Height - 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewHeight)
			m.leftViewport = viewport.New(leftWidth, viewHeight)
			m.rightViewport = viewport.New(rightWidth, viewHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewHeight
			m.leftViewport.Width = leftWidth
			m.leftViewport.Height = viewHeight
			m.rightViewport.Width = rightWidth
			m.rightViewport.Height = viewHeight
		}
		m.updateViewport()

	case GroupsLoadedMsg:
		if msg.RequestID != m.requestID {
			return m, nil
		}
		m.loading = false
		if msg.Error != nil {
			m.err = msg.Error
			return m, nil
		}
		m.err = nil
		m.applyGroups(msg.Groups)
		return m, nil

	case TickMsg:
		if !m.loading {
			return m, nil
		}
		m.indicator.Tick()
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			if !m.loading {
				return m, m.refresh()
			}

		case "up", "k":
			if m.currentMode == programView {
				if m.programCursor > 0 {
					m.programCursor--
					m.updateViewport()
				}
			} else if m.fileCursor > 0 {
				m.fileCursor--
				m.updateViewport()
			}

		case "down", "j":
			if m.currentMode == programView {
				if m.programCursor < len(m.programs)-1 {
					m.programCursor++
					m.updateViewport()
				}
			} else if m.fileCursor < len(m.currentFiles())-1 {
				m.fileCursor++
				m.updateViewport()
			}

		case "enter":
			if m.currentMode == programView {
				if m.programCursor < len(m.programs) {
					m.selectedProgram = m.programs[m.programCursor]
					m.currentMode = fileView
					m.fileCursor = 0
					m.updateViewport()
				}
			} else {
				files := m.currentFiles()
				if m.fileCursor < len(files) {
					m.selectedFile = files[m.fileCursor]
					return m, tea.Quit
				}
			}

		case "esc", "backspace":
			if m.currentMode == fileView {
				m.currentMode = programView
				m.selectedProgram = ""
				m.fileCursor = 0
				m.updateViewport()
			}
		}
		// cursor keys are handled above; only the mouse scrolls viewports
		return m, nil
	}

	if m.currentMode == programView {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var leftCmd, rightCmd tea.Cmd
		m.leftViewport, leftCmd = m.leftViewport.Update(msg)
		m.rightViewport, rightCmd = m.rightViewport.Update(msg)
		cmds = append(cmds, leftCmd, rightCmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh starts a new load; earlier in-flight loads become stale
func (m *model) refresh() tea.Cmd {
	m.requestID = newRequestID()
	m.loading = true
	m.err = nil
	m.indicator.SetMessage("Refreshing...")
	return tea.Batch(loadGroupsCmd(m.ctx, m.requestID, m.load), tickCmd())
}

func (m *model) applyGroups(groups models.ProgramGroups) {
	m.groups = groups
	m.programs = groups.Programs()

	if m.programCursor >= len(m.programs) {
		m.programCursor = max(len(m.programs)-1, 0)
	}
	if m.currentMode == fileView {
		if _, ok := groups[m.selectedProgram]; !ok {
			m.currentMode = programView
			m.selectedProgram = ""
			m.fileCursor = 0
		} else if m.fileCursor >= len(groups[m.selectedProgram]) {
			m.fileCursor = max(len(groups[m.selectedProgram])-1, 0)
		}
	}
	m.updateViewport()
}

func (m model) currentFiles() []*models.FileEntry {
	if m.selectedProgram == "" {
		return nil
	}
	return m.groups[m.selectedProgram]
}

func (m *model) updateViewport() {
	if m.currentMode == programView {
		m.viewport.SetContent(m.renderPrograms())
	} else {
		m.leftViewport.SetContent(m.renderFileList())
		m.rightViewport.SetContent(m.renderDetails())
	}
}

func (m model) renderPrograms() string {
	if len(m.programs) == 0 {
		return "  No recent files found"
	}

	var s strings.Builder
	for i, program := range m.programs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.programCursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("212")).Bold(true)
		}

		files := m.groups[program]
		line := fmt.Sprintf("%s%s (%d files)", cursor, program, len(files))
		if len(files) > 0 {
			line += " - " + files[0].LastModified.Local().Format("2006-01-02 15:04")
		}
		s.WriteString(style.Render(line) + "\n")
	}
	return s.String()
}

func (m model) renderFileList() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Files") + "\n")
	s.WriteString(strings.Repeat("─", max(m.leftViewport.Width-2, 10)) + "\n\n")

	files := m.currentFiles()
	for i, entry := range files {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		dirStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		if i == m.fileCursor {
			cursor = "> "
			nameStyle = nameStyle.Foreground(lipgloss.Color("212")).Bold(true)
			dirStyle = dirStyle.Foreground(lipgloss.Color("245"))
		}

		s.WriteString(nameStyle.Render(cursor+entry.DisplayName) + "\n")
		if entry.PathAttached {
			s.WriteString(dirStyle.Render("  "+filepath.Dir(entry.Path)) + "\n")
		}
		if i < len(files)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m model) renderDetails() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Details") + "\n")
	s.WriteString(strings.Repeat("─", max(m.rightViewport.Width-2, 10)) + "\n\n")

	files := m.currentFiles()
	if m.fileCursor >= len(files) {
		return s.String()
	}
	entry := files[m.fileCursor]

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	wrapWidth := max(m.rightViewport.Width-12, 20)
	row := func(label, value string) {
		for i, line := range wrapText(value, wrapWidth) {
			if i == 0 {
				s.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
			} else {
				s.WriteString(strings.Repeat(" ", 10))
			}
			s.WriteString(valueStyle.Render(line) + "\n")
		}
	}

	row("Path", entry.Path)
	row("Type", entry.ContentType)
	row("Opened", entry.LastModified.Local().Format("2006-01-02 15:04"))
	for _, term := range entry.SearchTerms {
		row("App", term.AppName+" ("+term.Command+")")
	}
	return s.String()
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) > width {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine += " " + word
		}
	}
	return append(lines, currentLine)
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	if m.loading && m.groups == nil {
		return LoadingOverlay(m.width, m.height, m.indicator)
	}

	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n%s", m.err, m.renderFooter())
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	if m.currentMode == programView {
		return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
	}
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

	divider := strings.TrimSuffix(strings.Repeat("│\n", max(m.leftViewport.Height, 1)), "\n")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.leftViewport.View()),
		dividerStyle.Render(divider),
		rightStyle.Render(m.rightViewport.View()),
	)
}

func (m model) renderHeader() string {
	title := "Recent Files - Programs"
	if m.currentMode == fileView && m.selectedProgram != "" {
		title = fmt.Sprintf("Recent Files - %s", m.selectedProgram)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	header := style.Render(title)
	if m.loading {
		header += " " + m.indicator.View()
	}
	return header
}

func (m model) renderFooter() string {
	info := "↑/↓: navigate • enter: select"
	if m.currentMode == fileView {
		info += " • esc: back"
	}
	info += " • r: refresh • q: quit"

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(info)
}

// ShowTUI displays the TUI and returns the selected file, or nil when the
// user quits without choosing one
func ShowTUI(ctx context.Context, load Loader) (*models.FileEntry, error) {
	p := tea.NewProgram(
		initialModel(ctx, load),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(model)
	return m.selectedFile, nil
}
