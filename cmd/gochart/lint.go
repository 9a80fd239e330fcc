package main

import (
	"errors"
	"fmt"

	"github.com/gochart/gochart"
	"github.com/gochart/gochart/chart"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint FILE...",
	Short: "Parse files and report the first error in each",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := parseOptions()
		failed := 0
		for _, path := range args {
			ch, err := gochart.LoadFile(path, opts...)
			if err != nil {
				failed++
				var perr *chart.ParseError
				if errors.As(err, &perr) {
					fmt.Printf("%s: line %d: %v\n", path, perr.Line, err)
				} else {
					fmt.Printf("%s: %v\n", path, err)
				}
				continue
			}
			fmt.Printf("%s: ok (%d sections)\n", path, len(ch.Sections))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
		}
		return nil
	},
}
