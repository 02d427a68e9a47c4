package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/npuzzle/internal/board"
	"github.com/rybkr/npuzzle/internal/generator"
	"github.com/rybkr/npuzzle/internal/solver"
)

var (
	numBoards int
	boardSize int
	steps     string
	seed      int64
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random solvable boards",
		Long: `Generate one or more scrambled sliding-tile boards in the input
format that solve consumes: the side length k on its own line, then the k²
tile values row by row.

Examples:
  npuzzle gen -k 3
  npuzzle gen -k 4 -n 5 --steps 60
  npuzzle gen -k 3 --steps 20:50 --seed 42`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numBoards, "number", "n", 1, "Number of boards to generate")
	genCmd.Flags().IntVarP(&boardSize, "size", "k", 3, "Board side length 1-5")
	genCmd.Flags().StringVar(&steps, "steps", strconv.Itoa(generator.DefaultSteps), "Scramble length, a number or range like 20:50")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible boards (0 = time-based)")

	rootCmd.AddCommand(genCmd)
}

// parseStepsRange parses a scramble length which can be:
// - A single number: "40"
// - A range: "20:50"
// Returns min, max, and an error
func parseStepsRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid steps: %w", err)
		}
		return val, val, nil
	case 2:
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid steps min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid steps max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("steps min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid steps format: %s (use format like '40' or '20:50')", s)
}

// writeBoard emits a board in solve's input format.
func writeBoard(out *bufio.Writer, b *board.Board) {
	fmt.Fprintln(out, b.Size())
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if col > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, b.Get(b.MakePos(row, col)))
		}
		fmt.Fprintln(out)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	minSteps, maxSteps, err := parseStepsRange(steps)
	if err != nil {
		return err
	}
	if minSteps < 0 || maxSteps > generator.MaxSteps {
		return fmt.Errorf("steps must be between 0 and %d", generator.MaxSteps)
	}

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	for i := 0; i < numBoards; i++ {
		// Pick a scramble length from the range if one was given.
		selectedSteps := minSteps
		if maxSteps > minSteps {
			selectedSteps = minSteps + rng.Intn(maxSteps-minSteps+1)
		}

		opts := generator.DefaultOptions(boardSize)
		opts.Steps = selectedSteps
		// Distinct deterministic seed per board.
		opts.Seed = rngSeed + int64(i)

		gen := generator.New(opts)
		b, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if !solver.Solvable(b) {
			// Random walks from the goal cannot produce this.
			return fmt.Errorf("generated board is unsolvable: %s", b)
		}
		writeBoard(out, b)
	}
	return nil
}
