package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	gocube "github.com/SeamusWaldron/gocube_cross"
	"github.com/SeamusWaldron/gocube_cross/internal/analysis"
	"github.com/SeamusWaldron/gocube_cross/internal/render"
	"github.com/SeamusWaldron/gocube_cross/internal/storage"
)

var (
	listLimit   int
	showFormat  string
	patternMinN int
	patternMaxN int
	patternTopK int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved runs",
	Long:  `Commands for browsing saved solver runs and mining them for patterns.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id|last>",
	Short: "Show details of a run",
	Long: `Display a saved run: its scramble, the starting cube, the moves and
summary statistics. Use "last" for the most recent run.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

var historyPatternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Find move sequences repeated across runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPatterns,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Number of runs to show")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text or yaml")

	historyCmd.AddCommand(historyPatternsCmd)
	historyPatternsCmd.Flags().IntVar(&patternMinN, "min", 3, "Shortest sequence length")
	historyPatternsCmd.Flags().IntVar(&patternMaxN, "max", 6, "Longest sequence length")
	historyPatternsCmd.Flags().IntVar(&patternTopK, "top", 5, "Sequences shown per length")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs saved yet. Save one with: gocross solve --save")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-19s  %5s  %-12s  %s\n", "ID", "CREATED", "MOVES", "PHASE", "SCRAMBLE")
	for _, run := range runs {
		scramble := "-"
		if run.ScrambleText != nil {
			scramble = truncate(*run.ScrambleText, 30)
		}
		fmt.Fprintf(out, "%-36s  %-19s  %5d  %-12s  %s\n",
			run.RunID,
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.MoveCount,
			run.FinalPhase,
			scramble,
		)
	}

	return nil
}

// runReport is the yaml form of a saved run.
type runReport struct {
	RunID     string            `yaml:"run_id"`
	CreatedAt time.Time         `yaml:"created_at"`
	Scramble  string            `yaml:"scramble,omitempty"`
	Start     string            `yaml:"start_facelets"`
	End       string            `yaml:"end_facelets"`
	Stage     string            `yaml:"stage"`
	Moves     string            `yaml:"moves"`
	Notes     string            `yaml:"notes,omitempty"`
	Summary   *analysis.Summary `yaml:"summary"`
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
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
	end := start.Clone()
	end.Apply(moves...)

	out := cmd.OutOrStdout()
	switch showFormat {
	case "yaml":
		report := runReport{
			RunID:     run.RunID,
			CreatedAt: run.CreatedAt,
			Start:     run.StartFacelets,
			End:       run.EndFacelets,
			Stage:     run.Stage,
			Moves:     gocube.FormatMoves(moves),
			Summary:   analysis.Summarize(moves, end.DetectPhase()),
		}
		if run.ScrambleText != nil {
			report.Scramble = *run.ScrambleText
		}
		if run.Notes != nil {
			report.Notes = *run.Notes
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode run: %w", err)
		}
		return enc.Close()

	case "text":
		fmt.Fprintf(out, "%s %s\n", render.Label("Run:"), run.RunID)
		fmt.Fprintf(out, "%s %s\n", render.Label("Created:"), run.CreatedAt.Local().Format(time.RFC3339))
		if run.ScrambleText != nil {
			fmt.Fprintf(out, "%s %s\n", render.Label("Scramble:"), *run.ScrambleText)
		}
		if run.Notes != nil {
			fmt.Fprintf(out, "%s %s\n", render.Label("Notes:"), *run.Notes)
		}
		fmt.Fprintln(out)
		printSolution(out, renderer(), start, end, moves)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", showFormat)
	}
}

func runHistoryPatterns(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewMoveRepository(db).AllByRun()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := analysis.MineNGramsAcrossRuns(runs, patternMinN, patternMaxN, patternTopK)
	if len(report.TopNGrams) == 0 {
		fmt.Fprintf(out, "No repeated sequences across %d runs.\n", len(runs))
		return nil
	}

	lengths := make([]int, 0, len(report.TopNGrams))
	for n := range report.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	for _, n := range lengths {
		fmt.Fprintln(out, render.Title(fmt.Sprintf("Length %d", n)))
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(out, "  %4dx  %s\n", ng.Count, strings.Join(ng.Sequence, " "))
		}
	}

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewRunRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
	return nil
}

// loadRun fetches a run and its moves. The ID "last" names the most recent run.
func loadRun(db *storage.DB, id string) (*storage.Run, []gocube.Move, error) {
	runs := storage.NewRunRepository(db)

	var run *storage.Run
	var err error
	if id == "last" {
		run, err = runs.GetLast()
	} else {
		run, err = runs.Get(id)
	}
	if errors.Is(err, storage.ErrRunNotFound) {
		return nil, nil, fmt.Errorf("no saved run %q", id)
	}
	if err != nil {
		return nil, nil, err
	}

	records, err := storage.NewMoveRepository(db).GetByRun(run.RunID)
	if err != nil {
		return nil, nil, err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return nil, nil, err
	}

	return run, moves, nil
}
