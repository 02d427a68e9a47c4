package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rybkr/npuzzle/internal/board"
	"github.com/rybkr/npuzzle/internal/solver"
)

var (
	inputFile string
	maxMoves  int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a sliding-tile puzzle",
		Long: `Solve a k×k sliding-tile puzzle read from stdin or a file.

Input is one integer k followed by k² integers in row-major order, 0
marking the blank. Output is the move count on the first line, then one
token per line (LEFT, RIGHT, UP, DOWN) naming the direction the blank
slides. Already-solved and unsolvable boards both print 0.

Examples:
  echo "2  1 0 2 3" | npuzzle solve
  npuzzle solve --input puzzle.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the puzzle from a file instead of stdin")
	solveCmd.Flags().IntVar(&maxMoves, "max-moves", solver.DefaultMaxMoves, "Longest solution the search will attempt")

	rootCmd.AddCommand(solveCmd)
}

// readBoard parses one integer k and then k² tile values from r.
func readBoard(r io.Reader) (*board.Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	k, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("reading board size: %w", err)
	}
	if k < 1 || k > board.MaxK {
		return nil, fmt.Errorf("board size %d out of range [1, %d]", k, board.MaxK)
	}

	tiles := make([]int, k*k)
	for i := range tiles {
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("reading tile %d of %d: %w", i+1, len(tiles), err)
		}
		tiles[i] = v
	}
	return board.NewFromTiles(k, tiles)
}

// nextInt scans a single whitespace-delimited integer.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(sc.Text())
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	b, err := readBoard(in)
	if err != nil {
		return err
	}

	s := solver.New(b, &solver.Options{
		MaxMoves: maxMoves,
		Logger:   log,
	})

	path, stats, err := s.Solve()
	switch {
	case err == nil:
	case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrMoveCapExceeded):
		// Both verdicts print a zero-length solution.
		log.WithError(err).Debug("reporting no solution")
		path = nil
	default:
		return err
	}

	log.WithFields(logrus.Fields{
		"moves":    len(path),
		"nodes":    stats.Nodes,
		"probes":   stats.Probes,
		"bound":    stats.Bound,
		"duration": stats.Duration,
	}).Debug("search finished")

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	fmt.Fprintln(out, len(path))
	for _, m := range path {
		fmt.Fprintln(out, m)
	}
	return nil
}
