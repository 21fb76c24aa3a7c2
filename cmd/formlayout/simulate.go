package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/formdef"
	"github.com/goliatone/go-formlayout/pkg/render"
)

// breakpoints are the canned container widths offered by simulate, matching
// common device classes.
var breakpoints = []struct {
	label string
	width float64
}{
	{"phone (480px)", 480},
	{"tablet (768px)", 768},
	{"laptop (1024px)", 1024},
	{"desktop (1440px)", 1440},
}

func newSimulateCommand(opts *rootOptions) *cobra.Command {
	var (
		rendererName string
		showMeta     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [form-document]",
		Short: "Interactively probe the layout at different widths",
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

			registry, err := newRendererRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Get(rendererName)
			if err != nil {
				return err
			}

			return runSimulation(cmd.Context(), surveyDriver{}, os.Stdout, simulation{
				engine:   eng,
				surface:  surface,
				renderer: renderer,
				title:    doc.Title,
				options:  render.Options{ShowMeta: showMeta},
			})
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "terminal", "renderer name (html|terminal)")
	cmd.Flags().BoolVar(&showMeta, "meta", false, "include resolution details")

	return cmd
}

type simulation struct {
	engine   *engine.Engine
	surface  *formdef.Surface
	renderer render.Renderer
	title    string
	options  render.Options
}

// runSimulation loops prompting for a width, recomputing, and rendering
// until the user quits or aborts.
func runSimulation(ctx context.Context, driver promptDriver, out io.Writer, sim simulation) error {
	options := make([]string, 0, len(breakpoints)+2)
	for _, bp := range breakpoints {
		options = append(options, bp.label)
	}
	options = append(options, "custom width", "quit")

	for {
		choice, err := driver.Select(ctx, "Container width", options)
		if err != nil {
			if errors.Is(err, errPromptAborted) {
				return nil
			}
			return err
		}

		var width float64
		switch {
		case choice >= 0 && choice < len(breakpoints):
			width = breakpoints[choice].width
		case choice == len(breakpoints):
			raw, err := driver.Input(ctx, "Width in pixels", validateWidth)
			if err != nil {
				if errors.Is(err, errPromptAborted) {
					return nil
				}
				return err
			}
			width, _ = strconv.ParseFloat(raw, 64)
		default:
			return nil
		}

		sim.surface.SetWidth(width)
		sim.engine.Notify(engine.Geometry())

		rendered, err := sim.renderer.Render(ctx, render.Form{
			Title:    sim.title,
			Snapshot: sim.engine.Snapshot(),
		}, sim.options)
		if err != nil {
			return err
		}
		if _, err := out.Write(rendered); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
}

func validateWidth(raw string) error {
	width, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	if width <= 0 {
		return errors.New("width must be positive")
	}
	return nil
}
