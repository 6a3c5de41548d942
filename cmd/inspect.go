package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-lyon/porcaro/grid"
	"github.com/m-lyon/porcaro/input"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <onsets.json>",
	Short: "Prints grid and anchor diagnostics for an onsets document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		doc, err := input.Decode(f)
		if err != nil {
			return err
		}

		meta := doc.Metadata()
		times := make([]float64, len(doc.Onsets))
		for i, o := range doc.Onsets {
			times[i] = o.PeakTime
		}
		anchor, err := grid.EstimateAnchor(meta, times)
		if err != nil {
			return err
		}
		raw, err := grid.Build(meta, times[anchor])
		if err != nil {
			return err
		}
		synced := grid.Sync(raw, times, meta.BPM.ThirtySecondNote(), meta.BPM.EighthNote())

		fmt.Printf("onsets:        %d\n", len(times))
		fmt.Printf("bpm:           %v\n", meta.BPM)
		fmt.Printf("time sig:      %v\n", meta.TimeSignature)
		fmt.Printf("anchor offset: %d (onset at %.4fs)\n", anchor, times[anchor])
		fmt.Printf("measure start: %.4fs\n", raw[0])
		fmt.Printf("grid points:   %d\n", len(raw))
		fmt.Printf("final drift:   %+.4fs\n", synced[len(synced)-1]-raw[len(raw)-1])
		return nil
	},
}
