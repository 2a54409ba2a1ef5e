package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_cross"
	"github.com/SeamusWaldron/gocube_cross/internal/render"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id|last>",
	Short: "Step through a saved run",
	Long: `Replay a saved run move by move, starting from its scrambled cube.

Keys:
  SPACE/n  next move        b  previous move
  p        play/pause       r  reset
  +/-      speed            q  quit`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	run, moves, err := loadRun(db, args[0])
	if err != nil {
		return err
	}
	start, err := run.StartCube()
	if err != nil {
		return err
	}

	return runReplayViewer(start, moves)
}

func runReplayViewer(start *gocube.Cube, moves []gocube.Move) error {
	model := newReplayModel(start, moves, cfg.ReplayInterval, renderer())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	start    *gocube.Cube
	cube     *gocube.Cube
	moves    []gocube.Move
	index    int
	interval time.Duration
	playing  bool
	quitting bool
	render   *render.Renderer
}

func newReplayModel(start *gocube.Cube, moves []gocube.Move, interval time.Duration, r *render.Renderer) *replayModel {
	return &replayModel{
		start:    start,
		cube:     start.Clone(),
		moves:    moves,
		interval: interval,
		render:   r,
	}
}

type replayTickMsg time.Time

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.playing = false
			m.next()

		case "b", "left":
			m.playing = false
			m.prev()

		case "p":
			m.playing = !m.playing
			if m.playing {
				if m.index >= len(m.moves) {
					m.reset()
				}
				return m, m.tick()
			}

		case "r":
			m.playing = false
			m.reset()

		case "+", "=":
			m.interval /= 2
			if m.interval < 50*time.Millisecond {
				m.interval = 50 * time.Millisecond
			}

		case "-":
			m.interval *= 2
			if m.interval > 4*time.Second {
				m.interval = 4 * time.Second
			}
		}

	case replayTickMsg:
		if !m.playing {
			return m, nil
		}
		m.next()
		if m.index >= len(m.moves) {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *replayModel) next() {
	if m.index < len(m.moves) {
		m.cube.Apply(m.moves[m.index])
		m.index++
	}
}

// prev undoes the last applied move.
func (m *replayModel) prev() {
	if m.index > 0 {
		m.index--
		m.cube.Apply(m.moves[m.index].Reverse())
	}
}

func (m *replayModel) reset() {
	m.cube = m.start.Clone()
	m.index = 0
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(render.Title("gocross replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.playing {
		progress += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%s per move)\n", m.interval))

	if m.index > 0 {
		b.WriteString(fmt.Sprintf("Last: %s\n", render.Moves(m.moves[m.index-1:m.index])))
	} else {
		b.WriteString("Last: -\n")
	}
	b.WriteString(fmt.Sprintf("Phase: %s\n\n", render.Phase(m.cube.DetectPhase())))

	b.WriteString(m.render.Net(m.cube, crossStickers(m.cube)...))
	b.WriteString("\n")

	// Recent moves
	if m.index > 0 {
		b.WriteString("Moves: ")
		start := 0
		if m.index > 20 {
			start = m.index - 20
			b.WriteString("... ")
		}
		b.WriteString(render.Moves(m.moves[start:m.index]))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("SPACE/n=next  b=back  p=play  r=reset  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}
