package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gochart/gochart"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "List section names with event and metadata counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := gochart.LoadFile(args[0], parseOptions()...)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SECTION\tNOTES\tSPECIALS\tBPMS\tTIMESIGS\tEVENTS\tMETADATA")
		for _, sec := range ch.Sections {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
				sec.Name,
				len(sec.NoteEvents),
				len(sec.SpecialEvents),
				len(sec.BpmEvents),
				len(sec.TimeSigEvents),
				len(sec.Events),
				len(sec.KeyValuePairs))
		}
		return w.Flush()
	},
}
