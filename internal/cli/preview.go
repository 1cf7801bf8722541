package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
	"github.com/matzehuels/justify/pkg/pipeline"
)

// maxPreviewWidth caps the width reachable with the arrow keys.
const maxPreviewWidth = 1000

var (
	previewRulerStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewEdgeStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// previewModel - Interactive width selection
// =============================================================================

// previewModel is the bubbletea model behind "justify preview". It reflows
// text every time the width changes.
type previewModel struct {
	text       string
	whitespace justify.Whitespace

	width    int
	minWidth int // longest word; narrower widths cannot be justified

	doc *justify.Document
	err error
}

func newPreviewModel(text string, width int, ws justify.Whitespace) previewModel {
	m := previewModel{
		text:       text,
		whitespace: ws,
		minWidth:   1,
	}
	for _, w := range justify.Split(text, ws) {
		if n := justify.Length(w); n > m.minWidth {
			m.minWidth = n
		}
	}
	m.setWidth(width)
	return m
}

func (m *previewModel) setWidth(width int) {
	width = max(width, m.minWidth)
	width = min(width, max(maxPreviewWidth, m.minWidth))
	m.width = width
	m.doc, m.err = justify.Justify(m.text, width, justify.WithWhitespace(m.whitespace))
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.setWidth(m.width - 1)
		case "right", "l":
			m.setWidth(m.width + 1)
		case "down", "j":
			m.setWidth(m.width - 10)
		case "up", "k":
			m.setWidth(m.width + 10)
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Justify Preview"))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(fmt.Sprintf("width %d", m.width)))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ ±1  ↑/↓ ±10  q quit"))
	b.WriteString("\n\n")

	b.WriteString(previewRulerStyle.Render(ruler(m.width)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(errs.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}

	edge := previewEdgeStyle.Render("│")
	for _, line := range m.doc.Lines {
		b.WriteString(line)
		b.WriteString(edge)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render(fmt.Sprintf("%d lines", m.doc.Len())))
	if m.width == m.minWidth && m.doc.Len() > 0 {
		b.WriteString(StyleDim.Render(" · "))
		b.WriteString(StyleWarning.Render(fmt.Sprintf("minimum width: the longest word has %d characters", m.minWidth)))
	}
	b.WriteString("\n")
	return b.String()
}

// ruler renders a column ruler of the given width with a mark every 10 columns.
func ruler(width int) string {
	var b strings.Builder
	for col := 1; col <= width; col++ {
		switch {
		case col%10 == 0:
			label := fmt.Sprint(col / 10 % 10)
			b.WriteString(label)
		case col%5 == 0:
			b.WriteByte('+')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var opts justifyOpts

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Adjust the line width interactively",
		Long: `Preview opens a terminal view of the justified paragraph. Use the arrow keys
(or h/l and j/k) to change the width and watch the text reflow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts, err := opts.pipelineOptions(cmd, cfg)
			if err != nil {
				return err
			}
			if err := popts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			input, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			text := pipeline.NewRunner(nil, nil, c.Logger).Prepare(input, popts)

			progOpts := []tea.ProgramOption{
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if path == "-" {
				progOpts = append(progOpts, tea.WithInputTTY())
			}

			final, err := tea.NewProgram(newPreviewModel(text, popts.Width, popts.WhitespacePolicy()), progOpts...).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(previewModel); ok {
				printInfo(cmd.ErrOrStderr(), "Final width %d", m.width)
				printDetail(cmd.ErrOrStderr(), "justify --width %d", m.width)
			}
			return nil
		},
	}
	opts.registerLayout(cmd)
	return cmd
}
