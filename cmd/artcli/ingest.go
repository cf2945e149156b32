package main

import (
	"fmt"
	"os"

	"github.com/colstore/art"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ingestCheck bool

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Build a tree from a key/row-id file and print its statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verbose)
		entries, err := loadEntries(args[0])
		if err != nil {
			return err
		}
		log.Info().Int("entries", len(entries)).Str("file", args[0]).Msg("loaded")

		t := buildTree(entries)
		if ingestCheck {
			if err := t.Check(); err != nil {
				return fmt.Errorf("invariant check failed: %w", err)
			}
			log.Info().Msg("invariants ok")
		}
		printStats(t.Stats())
		return nil
	},
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestCheck, "check", false, "validate structural invariants before reporting")
	rootCmd.AddCommand(ingestCmd)
}

// printStats renders a Stats snapshot as a two-column table, colorized when
// stdout is a terminal and plain otherwise.
func printStats(s art.Stats) {
	rows := []struct {
		name  string
		value any
	}{
		{"null count", s.NullCount},
		{"unique keys", s.UniqueKeyCount},
		{"max key length", s.MaxKeyLength},
		{"total key bytes", s.TotalKeyBytes},
		{"arena length", s.ArenaLength},
		{"node4 count", s.Node4Count},
		{"node16 count", s.Node16Count},
		{"node48 count", s.Node48Count},
		{"node256 count", s.Node256Count},
		{"total nodes", s.TotalNodeCount()},
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, r := range rows {
			fmt.Printf("%-18s %v\n", r.name, r.value)
		}
		return
	}
	label := color.New(color.FgCyan)
	value := color.New(color.FgYellow, color.Bold)
	for _, r := range rows {
		label.Printf("%-18s ", r.name)
		value.Println(r.value)
	}
}
