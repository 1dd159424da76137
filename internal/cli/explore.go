package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/posetviz/pkg/poset"
	"github.com/matzehuels/posetviz/pkg/posetfile"
)

// newExploreCmd creates the "explore" command: an interactive terminal UI
// for browsing a poset's diagram and removing elements live.
func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <poset.toml>",
		Short: "Browse a poset interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := buildInstance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			model := newExploreModel(inst)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := prog.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(exploreModel); ok && m.removed > 0 {
				printInfo("Removed %d elements this session", m.removed)
			}
			return nil
		},
	}
}

// exploreRow is one member of the poset with its display columns and a
// handle to remove it from the underlying structure.
type exploreRow struct {
	label    string
	parents  string
	children string
	remove   func() bool
}

// exploreModel is the bubbletea model for interactive poset browsing.
type exploreModel struct {
	inst    *posetfile.Instance
	rows    []exploreRow
	cursor  int
	offset  int
	height  int
	status  string
	removed int
}

func newExploreModel(inst *posetfile.Instance) exploreModel {
	return exploreModel{
		inst:   inst,
		rows:   instanceRows(inst),
		height: 15,
	}
}

// instanceRows builds the display rows for whichever element domain the
// instance carries, in insertion order.
func instanceRows(inst *posetfile.Instance) []exploreRow {
	if inst.Ints != nil {
		return rowsOf(inst.Ints)
	}
	return rowsOf(inst.Strings)
}

func rowsOf[E comparable](p *poset.Poset[E]) []exploreRow {
	var rows []exploreRow
	for _, e := range p.Elements() {
		parents, _ := p.Parents(e)
		children, _ := p.Children(e)
		rows = append(rows, exploreRow{
			label:    fmt.Sprintf("%v", e),
			parents:  strings.Join(formatAll(parents), ", "),
			children: strings.Join(formatAll(children), ", "),
			remove:   func() bool { return p.Remove(e) },
		})
	}
	return rows
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "d", "x":
			if len(m.rows) == 0 {
				break
			}
			row := m.rows[m.cursor]
			if row.remove() {
				m.removed++
				m.status = fmt.Sprintf("removed %s", row.label)
				if err := m.inst.Check(); err != nil {
					m.status = fmt.Sprintf("removed %s - CHECK FAILED: %v", row.label, err)
				}
			}
			m.rows = instanceRows(m.inst)
			if m.cursor >= len(m.rows) && m.cursor > 0 {
				m.cursor = len(m.rows) - 1
			}
			if m.offset > m.cursor {
				m.offset = m.cursor
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	title := m.inst.Name
	if title == "" {
		title = m.inst.Ordering.Name
	}
	b.WriteString(StyleTitle.Render("Explore " + title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  d delete  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(StyleDim.Render("  (empty poset)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.label, r.parents, r.children})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Element", "Parents", "Children").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(StyleWarning.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}
