package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caoyingkang/Voronoi-diagram/pkg/config"
	"github.com/caoyingkang/Voronoi-diagram/pkg/input"
	"github.com/caoyingkang/Voronoi-diagram/pkg/logger"
	"github.com/caoyingkang/Voronoi-diagram/pkg/render"
	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

type sweepOptions struct {
	until    float64
	htmlPath string
	verify   bool
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	opts := &sweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep <sites-file>",
		Short: "Sweep a site file and print the beach line",
		Long: `Reads a site file (a count n followed by n "x y" pairs), runs the sweep
line down to --until (or past every site) and prints the arcs of the beach
line from left to right.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verify") {
				cfg.Sweep.Verify = opts.verify
			}
			if !cmd.Flags().Changed("until") {
				opts.until = math.Inf(-1)
			}

			sites, err := input.ReadFile(args[0])
			if err != nil {
				return err
			}

			log := root.newLogger()
			defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

			return runSweep(cmd.OutOrStdout(), sites, opts, cfg, log)
		},
	}

	cmd.Flags().Float64Var(&opts.until, "until", 0, "stop the sweep line at this height")
	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "also write the beach line chart to this HTML file")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check the beach line invariants after the sweep")
	return cmd
}

func runSweep(w io.Writer, sites []voronoi.Site, opts *sweepOptions, cfg *config.Config, log *logger.ZapLogger) error {
	sw, err := voronoi.NewSweep(sites, log)
	if err != nil {
		return err
	}
	sw.RunUntil(opts.until)

	tree := sw.Beachline()
	if cfg.Sweep.Verify {
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("verify beach line: %w", err)
		}
		log.Info("[sweep] Beach line verified", zap.Int("height", tree.Height()))
	}

	directrix := opts.until
	if math.IsInf(directrix, -1) {
		directrix = sw.SweepY()
	}

	arcs := sw.Snapshot(directrix)
	st := sw.Stats()
	fmt.Fprintf(w, "sweep line: %g\n", directrix)
	fmt.Fprintf(w, "sites: %d (top layer %d, duplicates %d)\n", st.Sites, st.TopLayer, st.Duplicates)
	fmt.Fprintf(w, "arcs: %d\n", len(arcs))
	for _, arc := range arcs {
		fmt.Fprintf(w, "  site %d\t[%g, %g]\n", arc.Site, arc.Left, arc.Right)
	}

	if opts.htmlPath == "" {
		return nil
	}
	return writeChart(opts.htmlPath, sites, arcs, directrix, cfg)
}

func writeChart(path string, sites []voronoi.Site, arcs []voronoi.Arc, directrix float64, cfg *config.Config) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart: %w", cerr)
		}
	}()

	scene := render.Scene{
		Sites:     sites,
		Arcs:      arcs,
		Directrix: directrix,
		Bounds:    boundsOf(sites),
		Samples:   cfg.Render.Samples,
	}
	return render.Render(f, scene)
}

// boundsOf returns the bounding box of sites padded by a tenth of its size.
func boundsOf(sites []voronoi.Site) render.Bounds {
	if len(sites) == 0 {
		return render.Bounds{MaxX: 1, MaxY: 1}
	}
	b := render.Bounds{MinX: sites[0].X, MaxX: sites[0].X, MinY: sites[0].Y, MaxY: sites[0].Y}
	for _, s := range sites[1:] {
		b.MinX = math.Min(b.MinX, s.X)
		b.MaxX = math.Max(b.MaxX, s.X)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxY = math.Max(b.MaxY, s.Y)
	}
	padX := math.Max((b.MaxX-b.MinX)/10, 1)
	padY := math.Max((b.MaxY-b.MinY)/10, 1)
	b.MinX -= padX
	b.MaxX += padX
	b.MinY -= padY
	b.MaxY += padY
	return b
}
