package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/declview/viewcore/flatten"
)

func main() {
	var (
		treeName    = flag.String("tree", "", "Sample tree to flatten")
		list        = flag.Bool("list", false, "List sample trees and exit")
		dump        = flag.Bool("dump", false, "Dump the flattened leaves and exit")
		maxDepth    = flag.Int("depth", flatten.DefaultMaxDepth, "Maximum nesting depth")
		expand      = flag.String("expand", "stateless", "Body expansion policy (stateless, always, never)")
		verbose     = flag.Bool("v", false, "Verbose traversal logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		flatten.SetLogger(logger)
	}

	if *list {
		fmt.Println("Sample trees:")
		for _, s := range samples() {
			fmt.Printf("  %-10s %s\n", s.name, s.describe)
		}
		return
	}

	policy, err := parseExpansion(*expand)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	opts := []flatten.Option{
		flatten.WithMaxDepth(*maxDepth),
		flatten.WithBodyExpansion(policy),
	}

	// Pipes and redirects get the plain dump even without -dump.
	tty := isatty.IsTerminal(os.Stdout.Fd())
	if *interactive && tty {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *treeName == "" && !*dump && !tty {
		*dump = true
	}
	if *treeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: viewtree -tree <name> [-dump] [-depth n] [-expand policy]")
		fmt.Fprintln(os.Stderr, "       viewtree -list")
		fmt.Fprintln(os.Stderr, "       viewtree -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*treeName, tty, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseExpansion(s string) (flatten.BodyExpansion, error) {
	switch s {
	case "stateless":
		return flatten.ExpandStateless, nil
	case "always":
		return flatten.ExpandAlways, nil
	case "never":
		return flatten.ExpandNever, nil
	default:
		return 0, fmt.Errorf("unknown expansion policy %q", s)
	}
}

func run(treeName string, tty bool, opts []flatten.Option) error {
	sample, ok := sampleByName(treeName)
	if !ok {
		return fmt.Errorf("unknown sample tree %q, try -list", treeName)
	}

	leaves, err := flatten.CollectLeaves(sample.build(), opts...)
	if err != nil {
		return fmt.Errorf("flatten: %w", err)
	}

	width := 0
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	fmt.Printf("Tree: %s (%s)\n", sample.name, sample.describe)
	fmt.Printf("Leaves: %d\n\n", len(leaves))
	for i, l := range leaves {
		line := fmt.Sprintf("%3d  %-28s %-8s %s", i, l.Type, l.Traits, l.Path)
		if width > 0 && len(line) > width {
			line = line[:width-1] + "…"
		}
		fmt.Println(line)
	}

	// Per-type summary so repeated leaves are easy to spot.
	byType := make(map[string]int)
	var order []string
	for _, l := range leaves {
		name := l.Type.String()
		if byType[name] == 0 {
			order = append(order, name)
		}
		byType[name]++
	}
	fmt.Println("\nBy type:")
	for _, name := range order {
		fmt.Printf("  %-28s %d\n", name, byType[name])
	}

	return nil
}
