package main

import (
	"os"

	"github.com/colstore/art"
	"github.com/spf13/cobra"
)

var dotOut string

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "Build a tree from a key/row-id file and render it as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verbose)
		entries, err := loadEntries(args[0])
		if err != nil {
			return err
		}
		t := buildTree(entries)
		log.Info().Int("entries", len(entries)).Msg("rendering dot graph")

		out := os.Stdout
		if dotOut != "" {
			f, err := os.Create(dotOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		art.Dot(t, out)
		return nil
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOut, "out", "o", "", "write DOT output to this file instead of stdout")
	rootCmd.AddCommand(dotCmd)
}
