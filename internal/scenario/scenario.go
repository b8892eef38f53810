// Package scenario parses and runs the line-oriented pool scripts used
// by memctl and the test suites.
//
// A script holds one directive per line; blank lines and '#' comments
// are skipped:
//
//	init 96
//	strategy worst
//	alloc 40
//	alloc 16
//	free 0
//	dump map.txt
//
// Sizes are in bytes. "free N" releases the ref returned by the N-th
// successful alloc (0-based), which keeps scripts readable without
// exposing raw offsets.
package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/memkit/pool"
	"github.com/joshuapare/memkit/pool/fit"
)

// Op identifies a script directive.
type Op int

const (
	OpInit Op = iota
	OpAlloc
	OpFree
	OpStrategy
	OpDump
)

// Step is one parsed directive.
type Step struct {
	Op   Op
	Arg  int    // word count for init, byte size for alloc, alloc index for free
	Name string // strategy name for strategy, file path for dump
	Line int    // 1-based source line, for error reporting
}

// Parse reads a script from r. Parse fails on the first malformed
// line; a script that parses is still allowed to fail step by step
// when applied.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		step, err := parseStep(fields)
		if err != nil {
			return nil, fmt.Errorf("scenario: line %d: %w", line, err)
		}
		step.Line = line
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}
	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	verb := fields[0]
	switch verb {
	case "init", "alloc", "free":
		if len(fields) != 2 {
			return Step{}, fmt.Errorf("%s wants one numeric argument", verb)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Step{}, fmt.Errorf("%s: bad number %q", verb, fields[1])
		}
		if n < 0 {
			return Step{}, fmt.Errorf("%s: negative argument %d", verb, n)
		}
		switch verb {
		case "init":
			return Step{Op: OpInit, Arg: n}, nil
		case "alloc":
			return Step{Op: OpAlloc, Arg: n}, nil
		default:
			return Step{Op: OpFree, Arg: n}, nil
		}
	case "strategy":
		if len(fields) != 2 {
			return Step{}, fmt.Errorf("strategy wants a name")
		}
		if _, ok := fit.ByName(fields[1]); !ok {
			return Step{}, fmt.Errorf("unknown strategy %q", fields[1])
		}
		return Step{Op: OpStrategy, Name: fields[1]}, nil
	case "dump":
		if len(fields) != 2 {
			return Step{}, fmt.Errorf("dump wants a file path")
		}
		return Step{Op: OpDump, Name: fields[1]}, nil
	}
	return Step{}, fmt.Errorf("unknown directive %q", verb)
}

// Result records the outcome of one applied step.
type Result struct {
	Step Step
	Ref  pool.Ref // set for successful allocs
	Err  error    // nil when the step succeeded
}

// Apply runs steps against m in order and returns one Result per
// step. Step failures (no fit, bad free index, bad dump sink) are
// recorded and execution continues, mirroring how the pool itself
// treats caller mistakes.
func Apply(m *pool.Manager, steps []Step) []Result {
	results := make([]Result, 0, len(steps))
	var refs []pool.Ref
	for _, st := range steps {
		res := Result{Step: st}
		switch st.Op {
		case OpInit:
			res.Err = m.Initialize(st.Arg)
		case OpAlloc:
			ref, _, err := m.Alloc(st.Arg)
			if err != nil {
				res.Err = err
			} else {
				res.Ref = ref
				refs = append(refs, ref)
			}
		case OpFree:
			if st.Arg >= len(refs) {
				res.Err = fmt.Errorf("scenario: free %d: only %d allocations so far", st.Arg, len(refs))
			} else {
				m.Free(refs[st.Arg])
			}
		case OpStrategy:
			s, _ := fit.ByName(st.Name)
			m.SetStrategy(s)
		case OpDump:
			res.Err = m.DumpMemoryMap(st.Name)
		}
		results = append(results, res)
	}
	return results
}
