package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/export"
)

// exportCommand renders the map to an image or graph file.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format     string
		output     string
		scale      float64
		background string
		engine     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the map as PNG, PDF, SVG or DOT",
		Long: `Export the map as an image. Toolbar, zoom controls and minimap are never
part of the output. PNG and PDF are rasterized at --scale times the canvas size;
the PDF page is exactly as large as that image.

The format is taken from --format, or else from the extension of --output.
Use --output - to write to standard output.`,
		Example: `  mindmap export -o map.png
  mindmap export -f pdf --scale 3
  mindmap export -f svg --engine graphviz -o - > map.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveExportFormat(format, output)
			if err != nil {
				return err
			}
			if output == "" {
				output = export.DefaultFilename(f)
			}

			opts := c.cfg.ExportOptions()
			flags := cmd.Flags()
			if flags.Changed("scale") {
				opts = append(opts, export.WithScale(scale))
			}
			if flags.Changed("background") {
				if err := errors.ValidateColor(background); err != nil {
					return err
				}
				opts = append(opts, export.WithBackground(background))
			}
			if flags.Changed("engine") {
				e, err := export.ParseEngine(engine)
				if err != nil {
					return err
				}
				opts = append(opts, export.WithEngine(e))
			}

			s, err := c.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			canvas := export.NewCanvas(s.store)
			if output == "-" {
				return export.Export(ctx, canvas, f, stdout, opts...)
			}

			sp := newSpinner(ctx, "Exporting "+string(f)+"...").start()
			err = export.ExportFile(ctx, canvas, f, output, opts...)
			sp.stopWith(err, c.exportLabel(f))
			if err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png, pdf, svg, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default mindmap.<format>)")
	cmd.Flags().Float64Var(&scale, "scale", export.DefaultScale, "pixel ratio for png and pdf")
	cmd.Flags().StringVar(&background, "background", export.DefaultBackground, "background color")
	cmd.Flags().StringVar(&engine, "engine", string(export.EngineNative), "renderer for png and svg: native, graphviz")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolveExportFormat picks the format from the flag, then from the output
// extension, then falls back to PNG.
func resolveExportFormat(format, output string) (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	if ext := filepath.Ext(output); output != "-" && ext != "" {
		return export.ParseFormat(ext)
	}
	return export.PNG, nil
}

// exportLabel is the localized menu label for f.
func (c *CLI) exportLabel(f export.Format) string {
	t := c.translations()
	switch f {
	case export.PNG:
		return t.Export + " " + t.ExportPNG
	case export.PDF:
		return t.Export + " " + t.ExportPDF
	default:
		return t.Export + " " + string(f)
	}
}
