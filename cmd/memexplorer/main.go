package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	words := 96
	wordSize := 8

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("memexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		case "--words", "-w":
			i++
			n, err := intArg(args, i, "--words")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			words = n
		case "--word-size", "-s":
			i++
			n, err := intArg(args, i, "--word-size")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			wordSize = n
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", args[i])
			printUsage()
			os.Exit(1)
		}
	}

	m, err := NewModel(words, wordSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	// Clean up resources
	if model, ok := finalModel.(Model); ok {
		_ = model.Close()
	}
}

func intArg(args []string, i int, flag string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s wants a number", flag)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: bad value %q", flag, args[i])
	}
	return n, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: memexplorer [--words N] [--word-size N]\n")
	fmt.Fprintf(os.Stderr, "Try 'memexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("memexplorer - Interactive TUI for a simulated memory pool")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  memexplorer [options]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI showing a word-addressed memory")
	fmt.Println("  pool as a live grid. Allocate and free regions from the keyboard and")
	fmt.Println("  watch how best-fit, worst-fit and first-fit carve the arena.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    a           Allocate (prompts for a byte size)")
	fmt.Println("    f           Free (prompts for an allocation number)")
	fmt.Println("    F           Free the most recent allocation")
	fmt.Println("    s           Cycle fit strategy (best → worst → first)")
	fmt.Println("    r           Reset the pool")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -w, --words N      Pool capacity in words (default 96)")
	fmt.Println("  -s, --word-size N  Word size in bytes (default 8)")
	fmt.Println("  -h, --help         Show this help message")
	fmt.Println("  -v, --version      Show version information")
	fmt.Println()
	fmt.Println("For non-interactive scenarios, use the 'memctl' command instead.")
}
