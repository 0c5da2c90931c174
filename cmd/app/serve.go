package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caoyingkang/Voronoi-diagram/pkg/config"
	"github.com/caoyingkang/Voronoi-diagram/pkg/logger"
	"github.com/caoyingkang/Voronoi-diagram/pkg/render"
	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
	"github.com/caoyingkang/Voronoi-diagram/static"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive beach line page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), cfg, opts.newLogger())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.ZapLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/", &diagramHandler{cfg: cfg})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("[serve] Listening", zap.String("addr", cfg.Server.Addr))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("[serve] Shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// pageParams are the form values of the page.
type pageParams struct {
	width, height, stations int
	// sweep is the sweep line position in percent of the height from the top
	sweep  float64
	random bool
}

// parseForm fills params from a POST form, keeping the defaults for empty
// fields.
func parseForm(r *http.Request, cfg *config.Config) (pageParams, error) {
	p := pageParams{
		width:    cfg.Canvas.Width,
		height:   cfg.Canvas.Height,
		stations: cfg.Canvas.Stations,
		sweep:    50,
		random:   cfg.Canvas.Random,
	}
	if r.Method != http.MethodPost {
		return p, nil
	}
	if err := r.ParseForm(); err != nil {
		return p, err
	}

	ints := []struct {
		key string
		dst *int
		max int
	}{
		{"width", &p.width, 5000},
		{"height", &p.height, 5000},
		{"stations", &p.stations, 2000},
	}
	for _, f := range ints {
		raw := r.FormValue(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > f.max {
			return p, fmt.Errorf("%s: want an integer in [1, %d], got %q", f.key, f.max, raw)
		}
		*f.dst = v
	}

	if raw := r.FormValue("sweep"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			return p, fmt.Errorf("sweep: want a percentage, got %q", raw)
		}
		p.sweep = v
	}
	p.random = r.FormValue("random") == "true"
	return p, nil
}

type diagramHandler struct {
	cfg *config.Config
}

func (h *diagramHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := parseForm(r, h.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var sites []voronoi.Site
	if params.random {
		seed := h.cfg.Canvas.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sites = generateRandStations(params.stations, params.width, params.height, rand.New(rand.NewSource(seed)))
	} else {
		sites = generateFixStations(params.stations, params.width, params.height)
	}

	log := logger.New()
	defer log.ClearLogs()

	directrix := float64(params.height) * (1 - params.sweep/100)
	scene, err := sweepScene(sites, directrix, h.cfg, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	scene.Bounds = render.Bounds{MaxX: float64(params.width), MaxY: float64(params.height)}

	fmt.Fprintln(w, static.Part1)

	if err := render.Render(w, scene); err != nil {
		log.Error("[serve] Render failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, log.HTML())
	fmt.Fprintln(w, static.Part3)
}

// sweepScene runs a sweep down to directrix and captures the beach line.
func sweepScene(sites []voronoi.Site, directrix float64, cfg *config.Config, log *logger.ZapLogger) (render.Scene, error) {
	sw, err := voronoi.NewSweep(sites, log)
	if err != nil {
		return render.Scene{}, err
	}
	sw.RunUntil(directrix)

	if cfg.Sweep.Verify {
		if err := sw.Beachline().Verify(); err != nil {
			return render.Scene{}, err
		}
	}

	arcs := sw.Snapshot(directrix)
	log.Info("[serve] Beach line captured",
		zap.Float64("directrix", directrix),
		zap.Int("arcs", len(arcs)),
		zap.String("tree", sw.Beachline().String()),
	)

	return render.Scene{
		Sites:     sites,
		Arcs:      arcs,
		Directrix: directrix,
		Samples:   cfg.Render.Samples,
	}, nil
}
