package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/blockkit/delimiter/internal/config"
	"github.com/blockkit/delimiter/internal/delimiter"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/logger"
	"github.com/blockkit/delimiter/internal/render"
)

func newPreviewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview a delimiter block and its settings menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if flags.configPath != "" {
				loaded, err := config.Load(flags.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			tool := delimiter.New(delimiter.Params{Config: cfg, Log: log})
			tool.Render()

			program := tea.NewProgram(newPreviewModel(tool), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	return cmd
}

type previewKeymap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func defaultPreviewKeymap() previewKeymap {
	return previewKeymap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous entry")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next entry")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "show saved state")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type previewModel struct {
	tool    *delimiter.Tool
	entries []editor.MenuEntry
	cursor  int
	columns int
	saved   string
	keys    previewKeymap
}

func newPreviewModel(tool *delimiter.Tool) previewModel {
	return previewModel{
		tool:    tool,
		entries: tool.RenderSettings(),
		keys:    defaultPreviewKeymap(),
	}
}

// Init satisfies tea.Model.
func (m previewModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.entries) && m.entries[m.cursor].OnActivate != nil {
				m.entries[m.cursor].OnActivate()
			}
			// The menu shape depends on current state, e.g. thickness
			// entries appear only while the rule shows.
			m.entries = m.tool.RenderSettings()
			if m.cursor >= len(m.entries) {
				m.cursor = len(m.entries) - 1
			}
			m.saved = ""
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.saved = string(m.tool.Save())
			return m, nil
		}
	}

	return m, nil
}

// View renders the live block above its settings menu.
func (m previewModel) View() string {
	columns := m.columns
	if columns <= 0 {
		columns = 60
	}

	renderer := render.NewTextRenderer(columns - 8)
	block := previewStyle.Render(renderer.Render(m.tool.Root()))

	var sections []string
	sections = append(sections, titleStyle.Render("Delimiter preview"), block, m.viewMenu())

	if m.saved != "" {
		sections = append(sections, savedStyle.Render("saved: "+m.saved))
	}
	sections = append(sections, helpStyle.Render("↑/↓ move • enter toggle • s saved state • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m previewModel) viewMenu() string {
	var lines []string
	lastGroup := ""

	for i, entry := range m.entries {
		if group := menuGroupTitle(entry.Group); group != lastGroup {
			lines = append(lines, groupStyle.Render(group))
			lastGroup = group
		}

		marker := "○"
		if entry.IsActive {
			marker = activeStyle.Render("●")
		}

		line := "  " + marker + " " + entry.Label
		if i == m.cursor {
			line = cursorStyle.Render("› " + marker + " " + entry.Label)
		} else {
			line = entryStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func menuGroupTitle(group string) string {
	switch group {
	case "star", "dash":
		return "Style"
	case "line":
		return "Line width"
	case "thickness":
		return "Thickness"
	default:
		return group
	}
}
