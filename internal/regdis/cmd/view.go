package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"regdis/internal/bytecode"
	"regdis/internal/codefile"
	"regdis/internal/logging"
	"regdis/internal/opcode"
	"regdis/internal/ui/colorize"
)

type listingMsg struct {
	text string
	err  error
}

type viewModel struct {
	filepath string
	viewport viewport.Model
	spinner  spinner.Model
	loading  bool
	err      error
	width    int
	height   int
}

func newViewModel(filepath string) viewModel {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(24)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	return viewModel{
		filepath: filepath,
		viewport: vp,
		spinner:  s,
		loading:  true,
		width:    80,
		height:   24,
	}
}

func loadListingCmd(path string, raw bool) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return listingMsg{err: err}
		}
		var text string
		if raw || codefile.Sniff(data) == codefile.KindRaw {
			text, err = bytecode.TextBytes(opcode.Default(), data)
		} else {
			var cu *bytecode.CodeUnit
			cu, err = codefile.Unmarshal(data)
			if err == nil {
				text, err = bytecode.Text(opcode.Default(), cu, nil)
			}
		}
		if err != nil {
			return listingMsg{err: describeDecodeError(err)}
		}
		if colored, cerr := colorize.Listing(text); cerr == nil {
			text = colored
		}
		return listingMsg{text: text}
	}
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(
		loadListingCmd(m.filepath, flagRaw),
		m.spinner.Tick,
	)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case listingMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.viewport.SetContent(msg.text)
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("62"))

func (m viewModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}
	if m.loading {
		return fmt.Sprintf("%s Decoding %s...", m.spinner.View(), m.filepath)
	}
	status := fmt.Sprintf(" %s • %3.0f%% • q: quit ", m.filepath, m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + statusStyle.Render(status)
}

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Browse a disassembly listing interactively",
	Long:  "Open the disassembly of a code unit container (or raw bytecode) in a scrollable pager.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(true)
		defer logger.Close()
		logger.Debug("Opening listing pager", "file", args[0])

		program := tea.NewProgram(
			newViewModel(args[0]),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			logger.Error("Pager failed", "err", err)
			return fmt.Errorf("view error: %v", err)
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&flagRaw, "raw", false, "Treat input as a bare instruction buffer")
	rootCmd.AddCommand(viewCmd)
}
