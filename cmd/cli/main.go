package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"roadmap/adapters/svg"
	"roadmap/app"
	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"
	"roadmap/domain/viewport"
	"roadmap/internal/config"
	"roadmap/internal/container"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var contentPath string

	rootCmd := &cobra.Command{
		Use:           "roadmap-cli",
		Short:         "Render and export the roadmap wheel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content file (.yaml, .json, .xlsx, .csv); overrides ROADMAP_CONTENT")

	load := func(ctx context.Context) (*container.Container, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if contentPath != "" {
			cfg.Roadmap.ContentPath = contentPath
		}
		c, err := container.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := c.Init(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}

	rootCmd.AddCommand(
		newRenderCmd(load),
		newExportCmd(load),
		newYearsCmd(load),
		newViewportCmd(),
	)
	return rootCmd
}

type loader func(ctx context.Context) (*container.Container, error)

func newRenderCmd(load loader) *cobra.Command {
	var variant, year, out string
	var active int
	var inline, asJSON bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one roadmap as SVG (or the scene as JSON)",
		Long: `Render the roadmap for one year, variant and active quarter.

Example: roadmap-cli render --variant mobile --quarter 3 --year 2024 --out q3.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := roadmap.ParseKind(variant)
			if err != nil {
				return err
			}
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}
			if active == 0 {
				active = c.Config.Roadmap.DefaultActive
			}
			q, err := quarter.ParseID(strconv.Itoa(active))
			if err != nil {
				return err
			}
			scene, year, err := c.Roadmaps.Scene(year, kind, q)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{"year": year, "scene": scene})
			}
			return svg.DocumentWriter{Inline: inline}.Render(w, year, scene)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "desktop", "desktop or mobile")
	cmd.Flags().StringVar(&year, "year", "", "roadmap year (default: content default)")
	cmd.Flags().IntVarP(&active, "quarter", "q", 0, "active quarter 1-4 (default: ROADMAP_ACTIVE)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&inline, "inline", false, "omit the XML prolog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scene as JSON instead of SVG")

	return cmd
}

func newExportCmd(load loader) *cobra.Command {
	var dir string
	var years []string
	var workers int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every year, variant and active quarter to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}
			exporter := c.Exporter
			if workers > 0 {
				exporter = app.NewExportService(c.Roadmaps, svg.DocumentWriter{}, workers)
			}
			jobs, err := exporter.Export(cmd.Context(), dir, years)
			if err != nil {
				return err
			}
			for _, job := range jobs {
				fmt.Fprintln(cmd.OutOrStdout(), job.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "roadmap-export", "output directory")
	cmd.Flags().StringSliceVar(&years, "year", nil, "years to export (default: all)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent renders (default: EXPORT_WORKERS)")
	return cmd
}

func newYearsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years in the content, marking the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}
			book := c.Roadmaps.Book()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (source %s)\n", strings.Join(book.Years(), " "), c.Content.Describe())
			fmt.Fprintf(cmd.OutOrStdout(), "default: %s\n", book.DefaultYear())
			return nil
		},
	}
}

func newViewportCmd() *cobra.Command {
	var sweepTo, step int

	cmd := &cobra.Command{
		Use:   "viewport WIDTH [HEIGHT]",
		Short: "Show the device class and variant for a viewport width",
		Long: `Show the badge for a viewport. With --to, widen (or narrow) the viewport
one step per frame and print every device or variant transition.

Example: roadmap-cli viewport 500 --to 1200 --step 50`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if sweepTo == 0 {
				printBadge(w, viewport.NewBadge(size))
				return nil
			}
			if step <= 0 {
				return fmt.Errorf("--step must be positive")
			}
			return sweep(w, size, sweepTo, step)
		},
	}

	cmd.Flags().IntVar(&sweepTo, "to", 0, "final width of a resize sweep")
	cmd.Flags().IntVar(&step, "step", 10, "width change per frame during a sweep")
	return cmd
}

func parseSize(args []string) (viewport.Size, error) {
	var size viewport.Size
	var err error
	if size.Width, err = strconv.Atoi(args[0]); err != nil || size.Width < 0 {
		return size, fmt.Errorf("invalid width %q", args[0])
	}
	if len(args) > 1 {
		if size.Height, err = strconv.Atoi(args[1]); err != nil || size.Height < 0 {
			return size, fmt.Errorf("invalid height %q", args[1])
		}
	}
	return size, nil
}

func printBadge(w io.Writer, b viewport.Badge) {
	fmt.Fprintf(w, "%dx%d %s %s\n%s\n", b.Size.Width, b.Size.Height, b.Device, b.Variant, b.Legend)
}

func sweep(w io.Writer, from viewport.Size, to, step int) error {
	svc := app.NewViewportService(from)
	svc.OnTransition(func(t app.Transition) {
		fmt.Fprintf(w, "%d: %s/%s -> %s/%s\n", t.To.Size.Width, t.From.Device, t.From.Variant, t.To.Device, t.To.Variant)
	})

	dir := 1
	if to < from.Width {
		dir = -1
	}
	for width := from.Width; ; width += dir * step {
		if (dir > 0 && width > to) || (dir < 0 && width < to) {
			width = to
		}
		svc.Resize(viewport.Size{Width: width, Height: from.Height})
		svc.Frame()
		if width == to {
			break
		}
	}
	printBadge(w, svc.Current())
	return nil
}
