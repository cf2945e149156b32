package main

import (
	"fmt"

	"github.com/colstore/art"
	"github.com/spf13/cobra"
)

var mergeCheck bool

var mergeCmd = &cobra.Command{
	Use:   "merge <fileA> <fileB>",
	Short: "Build two trees sharing one row-id arena and join the second into the first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verbose)

		entriesA, err := loadEntries(args[0])
		if err != nil {
			return err
		}
		entriesB, err := loadEntries(args[1])
		if err != nil {
			return err
		}

		capacity := 0
		for _, e := range append(append([]entry{}, entriesA...), entriesB...) {
			if int(e.rowID)+1 > capacity {
				capacity = int(e.rowID) + 1
			}
		}

		left := art.New(capacity)
		right := left.Split()
		for _, e := range entriesA {
			if len(e.key) == 0 {
				left.AddNull(e.rowID)
				continue
			}
			left.AddEntry(e.key, e.rowID)
		}
		for _, e := range entriesB {
			if len(e.key) == 0 {
				right.AddNull(e.rowID)
				continue
			}
			right.AddEntry(e.key, e.rowID)
		}
		log.Info().
			Uint64("left_unique", left.UniqueKeyCount()).
			Uint64("right_unique", right.UniqueKeyCount()).
			Msg("built donor and recipient trees")

		if err := left.Join(right); err != nil {
			return fmt.Errorf("join: %w", err)
		}
		log.Info().Uint64("merged_unique", left.UniqueKeyCount()).Msg("joined")

		if mergeCheck {
			if err := left.Check(); err != nil {
				return fmt.Errorf("invariant check failed after join: %w", err)
			}
			log.Info().Msg("invariants ok")
		}
		printStats(left.Stats())
		return nil
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeCheck, "check", false, "validate structural invariants after joining")
	rootCmd.AddCommand(mergeCmd)
}
