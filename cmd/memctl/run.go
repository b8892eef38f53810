package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joshuapare/memkit/internal/scenario"
	"github.com/joshuapare/memkit/pool"
	"github.com/joshuapare/memkit/pool/fit"
	"github.com/spf13/cobra"
)

var (
	runWords    int
	runWordSize int
	runStrategy string
	runBitmap   bool
	runFreeList bool
	runSummary  bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runWords, "words", 0, "Initialize the pool with this many words before the script (0 = script must init)")
	cmd.Flags().IntVar(&runWordSize, "word-size", 8, "Word size in bytes")
	cmd.Flags().StringVar(&runStrategy, "strategy", "best", "Initial fit strategy (best, worst, first)")
	cmd.Flags().BoolVar(&runBitmap, "bitmap", false, "Print the occupancy bitmap export as hex")
	cmd.Flags().BoolVar(&runFreeList, "free-list", false, "Print the free-list export as hex")
	cmd.Flags().BoolVar(&runSummary, "summary", false, "Print the occupancy summary")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run an allocation scenario and print the resulting memory map",
		Long: `The run command executes a line-oriented allocation script against a
fresh pool and prints the resulting memory map.

Script directives: init N, alloc BYTES, free INDEX, strategy NAME, dump PATH.
"free INDEX" releases the INDEX-th successful allocation (0-based).

Example:
  memctl run scenario.txt --words 96 --word-size 8
  memctl run scenario.txt --strategy worst --bitmap --summary
  memctl run scenario.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

// runReport is the JSON shape for --json output.
type runReport struct {
	Steps    int          `json:"steps"`
	Failures int          `json:"failures"`
	Holes    []fit.Hole   `json:"holes"`
	Summary  pool.Summary `json:"summary"`
	Stats    pool.Stats   `json:"stats"`
}

func runRun(args []string) error {
	s, ok := fit.ByName(runStrategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q (want best, worst or first)", runStrategy)
	}

	m, err := pool.New(runWordSize, s)
	if err != nil {
		return err
	}
	defer m.Shutdown()

	if runWords > 0 {
		if err := m.Initialize(runWords); err != nil {
			return fmt.Errorf("initialize pool: %w", err)
		}
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open scenario: %w", err)
	}
	steps, perr := scenario.Parse(f)
	f.Close()
	if perr != nil {
		return perr
	}

	results := scenario.Apply(m, steps)
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			printVerbose("line %d: FAILED: %v\n", r.Step.Line, r.Err)
			continue
		}
		if r.Step.Op == scenario.OpAlloc {
			printVerbose("line %d: alloc %d bytes -> ref %d\n", r.Step.Line, r.Step.Arg, r.Ref)
		}
	}

	if !m.Ready() {
		return fmt.Errorf("scenario never initialized the pool (use --words or an init directive)")
	}

	if jsonOut {
		return printJSON(runReport{
			Steps:    len(results),
			Failures: failures,
			Holes:    m.Holes(),
			Summary:  m.Summarize(),
			Stats:    m.Stats(),
		})
	}

	if err := m.WriteMemoryMap(os.Stdout); err != nil {
		return err
	}
	printInfo("\n")

	if runFreeList {
		printInfo("free list: %s\n", hex.EncodeToString(m.FreeList()))
	}
	if runBitmap {
		printInfo("bitmap:    %s\n", hex.EncodeToString(m.Bitmap()))
	}
	if runSummary {
		if err := m.WriteSummary(os.Stdout); err != nil {
			return err
		}
	}
	if failures > 0 {
		printInfo("%d of %d steps failed (rerun with --verbose for details)\n", failures, len(results))
	}
	return nil
}
