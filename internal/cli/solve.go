package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_cross"
	"github.com/SeamusWaldron/gocube_cross/internal/analysis"
	"github.com/SeamusWaldron/gocube_cross/internal/render"
	"github.com/SeamusWaldron/gocube_cross/internal/storage"
	"github.com/SeamusWaldron/gocube_cross/solver"
)

var (
	solveScramble string
	solveFacelets string
	solveNotes    string
	solveSave     bool
	solveReplay   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the bottom cross",
	Long: `Build the bottom cross of a cube and print the moves.

The cube is either the solved cube with a scramble applied (--scramble) or
54 facelet letters (--facelets) given face by face in the order Top, Left,
Front, Right, Back, Bottom, each face row by row. Whitespace is ignored.

Examples:
  gocross solve --scramble "F B' L R' U D'"
  gocross solve --scramble "R U2 F'" --save
  gocross solve --facelets "YYYYYYYYY OOOOOOOOO ..." --replay`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveScramble, "scramble", "s", "", "Scramble applied to the solved cube")
	solveCmd.Flags().StringVarP(&solveFacelets, "facelets", "f", "", "54 facelet letters, face by face")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes stored with a saved run")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the run to the database")
	solveCmd.Flags().BoolVar(&solveReplay, "replay", false, "Step through the solution interactively")
}

func runSolve(cmd *cobra.Command, args []string) error {
	start, err := loadCube(solveScramble, solveFacelets)
	if err != nil {
		return err
	}

	c := start.Clone()
	moves := solver.Solve(c, solver.WithLogger(logger))
	phase := c.DetectPhase()

	logger.Info("bottom cross solved",
		slog.Int("moves", len(moves)),
		slog.String("phase", phase.String()),
	)

	out := cmd.OutOrStdout()
	r := renderer()
	printSolution(out, r, start, c, moves)

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewRunRepository(db).Save(storage.NewRun{
			Scramble:   solveScramble,
			Start:      start,
			End:        c,
			Stage:      solver.BottomCross{}.Name(),
			FinalPhase: phase,
			Notes:      solveNotes,
		}, moves)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSaved run %s\n", id)
	}

	if solveReplay {
		return runReplayViewer(start, moves)
	}

	return nil
}

// printSolution writes the start and end nets, the moves and summary
// statistics.
func printSolution(out io.Writer, r *render.Renderer, start, end *gocube.Cube, moves []gocube.Move) {
	s := analysis.Summarize(moves, end.DetectPhase())

	fmt.Fprintln(out, render.Title("Start"))
	fmt.Fprint(out, r.Net(start))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s %s\n", render.Label("Moves:"), render.Moves(moves))
	fmt.Fprintf(out, "%s %d (compact %d: %s)\n", render.Label("Count:"), s.TotalMoves, s.CompactMoves, s.Compact)
	fmt.Fprintf(out, "%s %d quarter turns, efficiency %.0f%%\n", render.Label("Metric:"), s.QuarterTurns, s.Efficiency*100)
	if s.Profile.MostUsedFace != "" {
		fmt.Fprintf(out, "%s %s\n", render.Label("Most used face:"), s.Profile.MostUsedFace)
	}
	fmt.Fprintf(out, "%s %s\n", render.Label("Phase:"), render.Phase(end.DetectPhase()))
	fmt.Fprintln(out)

	fmt.Fprintln(out, render.Title("Result"))
	fmt.Fprint(out, r.Net(end, crossStickers(end)...))
}

// crossStickers returns the facelets holding the bottom colored sticker of
// each cross edge.
func crossStickers(c *gocube.Cube) []gocube.Position {
	cross := c.BottomColor()
	var out []gocube.Position
	for _, e := range gocube.EdgesWith(cross) {
		if p, ok := c.EdgeFacelet(e, cross); ok {
			out = append(out, p)
		}
	}
	return out
}
