package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/formdef"
	"github.com/goliatone/go-formlayout/pkg/render"
	"github.com/goliatone/go-formlayout/pkg/watch"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var (
		width        float64
		rendererName string
		output       string
		showMeta     bool
	)

	cmd := &cobra.Command{
		Use:   "watch <form-document>",
		Short: "Re-render whenever the document or configuration changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.OpenAPI != "" {
				return errors.New("watch works on local form documents, not --openapi")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			docPath := args[0]
			doc, err := opts.document(ctx, args)
			if err != nil {
				return err
			}
			source, err := opts.configSource()
			if err != nil {
				return err
			}

			eng, surface, err := computeSnapshot(doc, width, source)
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

			emit := func(title string) error {
				out, err := renderer.Render(ctx, render.Form{
					Title:    title,
					Snapshot: eng.Snapshot(),
				}, render.Options{ShowMeta: showMeta})
				if err != nil {
					return err
				}
				return writeOutput(output, out)
			}
			if err := emit(doc.Title); err != nil {
				return err
			}

			paths := []string{docPath}
			if opts.ConfigDir != "" {
				paths = append(paths, opts.ConfigDir)
			}

			watcher, err := watch.New(paths, func(changes []watch.Change) {
				slog.Debug("reloading after change batch", slog.Int("changes", len(changes)))

				data, err := os.ReadFile(docPath)
				if err != nil {
					slog.Warn("reading document", slog.Any("error", err))
					return
				}
				next, err := formdef.Parse(data)
				if err != nil {
					slog.Warn("parsing document", slog.Any("error", err))
					return
				}
				surface.Replace(next)

				if opts.ConfigDir != "" {
					reloaded, err := opts.configSource()
					if err != nil {
						slog.Warn("reloading configuration", slog.Any("error", err))
					} else {
						eng.SetConfigSource(reloaded)
					}
				}

				eng.Notify(engine.Structural())
				if err := emit(next.Title); err != nil {
					slog.Warn("rendering", slog.Any("error", err))
				}
			}, watch.Options{Extensions: []string{".json", ".yaml", ".yml"}})
			if err != nil {
				return err
			}
			defer watcher.Stop()

			watcher.Start(ctx)
			fmt.Fprintln(os.Stderr, "watching for changes, ctrl+c to stop")
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 960, "container width in pixels")
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "terminal", "renderer name (html|terminal)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&showMeta, "meta", false, "include resolution details")

	return cmd
}
