package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(opts *rootOptions) *cobra.Command {
	var (
		width  float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "inspect [form-document]",
		Short: "Dump the computed layout snapshot as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd.Context(), args)
			if err != nil {
				return err
			}
			source, err := opts.configSource()
			if err != nil {
				return err
			}

			eng, _, err := computeSnapshot(doc, width, source)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(eng.Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			return writeOutput(output, append(data, '\n'))
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 960, "container width in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
