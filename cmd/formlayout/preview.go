package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/render"
	"github.com/goliatone/go-formlayout/pkg/renderers/terminal"
)

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	var showMeta bool

	cmd := &cobra.Command{
		Use:   "preview [form-document]",
		Short: "Interactive terminal preview that reflows on resize",
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

			eng, surface, err := computeSnapshot(doc, 0, source)
			if err != nil {
				return err
			}

			model := terminal.NewModel(eng, surface, doc.Title, render.Options{ShowMeta: showMeta})
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&showMeta, "meta", false, "include resolution details")

	return cmd
}
