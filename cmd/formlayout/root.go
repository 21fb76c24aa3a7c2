package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/formdef"
	"github.com/goliatone/go-formlayout/pkg/render"
	"github.com/goliatone/go-formlayout/pkg/renderers/htmlgrid"
	"github.com/goliatone/go-formlayout/pkg/renderers/terminal"
	"github.com/goliatone/go-formlayout/pkg/uiconfig"

	internalopenapi "github.com/goliatone/go-formlayout/internal/openapi"
	pkgopenapi "github.com/goliatone/go-formlayout/pkg/openapi"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	ConfigDir string
	OpenAPI   string
	Operation string
	Verbose   bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "formlayout",
		Short: "Adaptive grid layout for form fields",
		Long: "formlayout resolves presets, spans, and responsive columns for form\n" +
			"fields, from declarative form documents or OpenAPI operations.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigDir, "config", "c", "", "directory of layout configuration documents")
	cmd.PersistentFlags().StringVar(&opts.OpenAPI, "openapi", "", "OpenAPI document path or URL (requires --operation)")
	cmd.PersistentFlags().StringVar(&opts.Operation, "operation", "", "operation id inside the OpenAPI document")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newSimulateCommand(opts))
	cmd.AddCommand(newPreviewCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))

	return cmd
}

// configSource loads the configuration directory when one is set.
func (o *rootOptions) configSource() (engine.ConfigSource, error) {
	if o.ConfigDir == "" {
		return engine.StaticConfig{}, nil
	}
	store, err := uiconfig.LoadFS(os.DirFS(o.ConfigDir))
	if err != nil {
		return nil, err
	}
	return store, nil
}

// document resolves the form document: a positional file argument, or an
// OpenAPI operation flattened to controls.
func (o *rootOptions) document(ctx context.Context, args []string) (formdef.Document, error) {
	if o.OpenAPI != "" {
		if o.Operation == "" {
			return formdef.Document{}, errors.New("--openapi requires --operation")
		}
		return o.openAPIDocument(ctx)
	}
	if len(args) < 1 {
		return formdef.Document{}, errors.New("a form document path is required (or use --openapi)")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return formdef.Document{}, fmt.Errorf("read %s: %w", args[0], err)
	}
	doc, err := formdef.Parse(data)
	if err != nil {
		return formdef.Document{}, fmt.Errorf("parse %s: %w", args[0], err)
	}
	return doc, nil
}

func (o *rootOptions) openAPIDocument(ctx context.Context) (formdef.Document, error) {
	var src pkgopenapi.Source
	if strings.HasPrefix(o.OpenAPI, "http://") || strings.HasPrefix(o.OpenAPI, "https://") {
		parsed, err := pkgopenapi.URLSource(o.OpenAPI)
		if err != nil {
			return formdef.Document{}, err
		}
		src = parsed
	} else {
		src = pkgopenapi.FileSource(o.OpenAPI)
	}

	loader := internalopenapi.NewLoader(pkgopenapi.NewLoaderOptions())
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return formdef.Document{}, err
	}

	controls := internalopenapi.NewControlSource(pkgopenapi.NewControlOptions())
	form, err := controls.Controls(ctx, doc, o.Operation)
	if err != nil {
		return formdef.Document{}, err
	}

	out := formdef.Document{Title: form.Title}
	for _, ctl := range form.Controls {
		attrs := make(map[string]any, len(ctl.Attrs))
		for key, value := range ctl.Attrs {
			attrs[key] = value
		}
		if len(attrs) == 0 {
			attrs = nil
		}
		out.Controls = append(out.Controls, formdef.ControlDef{
			Kind:  string(ctl.Kind),
			Name:  ctl.Name,
			Attrs: attrs,
		})
	}
	return out, nil
}

// newRendererRegistry wires the built-in renderers.
func newRendererRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := htmlgrid.New()
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	registry.MustRegister(html)
	registry.MustRegister(terminal.New())

	return registry, nil
}

// computeSnapshot runs one full pass over the document at the given width.
func computeSnapshot(doc formdef.Document, width float64, source engine.ConfigSource) (*engine.Engine, *formdef.Surface, error) {
	surface := formdef.NewSurface(doc)
	if width > 0 {
		surface.SetWidth(width)
	}

	eng, err := engine.New(surface, engine.WithConfigSource(source))
	if err != nil {
		return nil, nil, err
	}
	eng.Recompute()
	return eng, surface, nil
}

// writeOutput prints to stdout or writes the named file.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
