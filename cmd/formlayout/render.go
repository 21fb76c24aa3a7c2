package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/render"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var (
		width        float64
		rendererName string
		output       string
		showMeta     bool
	)

	cmd := &cobra.Command{
		Use:   "render [form-document]",
		Short: "Render the computed layout with a registered renderer",
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

			registry, err := newRendererRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Get(rendererName)
			if err != nil {
				return err
			}

			out, err := renderer.Render(cmd.Context(), render.Form{
				Title:    doc.Title,
				Snapshot: eng.Snapshot(),
			}, render.Options{ShowMeta: showMeta})
			if err != nil {
				return err
			}
			return writeOutput(output, out)
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 960, "container width in pixels")
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "html", "renderer name (html|terminal)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&showMeta, "meta", false, "include resolution details")

	return cmd
}
