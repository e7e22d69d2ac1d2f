// Command ls-starmap is a terminal star-map viewer with planar and
// perspective views of a star catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/report"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/transform"
	"github.com/litescript/ls-starmap/internal/ui"
	"github.com/litescript/ls-starmap/internal/view"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
	plotPath     string
	miniSkyMode  bool
	opsText      string
	brightest    int
	outWidth     int
	outHeight    int
)

const (
	maxWorkers = 64

	// cellPixelsPerUnit is the 2D zoom of terminal output, one projected
	// unit being about 57 degrees at the centre.
	cellPixelsPerUnit = 20

	defaultSnapshotWidth  = 1280
	defaultSnapshotHeight = 720
)

// skyOptions selects the data and projection of a sky.
type skyOptions struct {
	catalogPath        string
	constellationsPath string
	projection         astro.ProjectionKind
	declutter          astro.Declutter
	useDistance        bool
	cutoffDeg          float64
	workers            int
}

func main() {
	// Parse flags
	catalogPath := flag.String("catalog", catalog.Builtin, "Star catalog in Bright Star Catalogue format (builtin for the embedded list)")
	constPath := flag.String("constellations", catalog.Builtin, "Constellation CSV file (builtin for the embedded list)")
	projection := flag.String("projection", "stereographic", "2D projection (stereographic, equirectangular)")
	modeName := flag.String("mode", "2d", "Initial view (2d, 3d)")
	declutterR := flag.Float64("declutter", 0, "Declutter radius in projected units (0 disables)")
	declutterS := flag.Float64("declutter-strength", 0.5, "Declutter push at the projection centre")
	distance := flag.Bool("distance", false, "Place stars at catalog distance in the 3D view")
	cutoff := flag.Float64("cutoff", 0, "Hide stars farther than this many degrees from the centre (0 disables)")
	fps := flag.Int("fps", ui.DefaultFPS, "Frame rate of the interactive view")
	workers := flag.Int("workers", 0, "Goroutines for per-star transforms (0 or 1 runs inline)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Append log output to this file")
	flag.BoolVar(&summaryMode, "summary", false, "Print catalog summary instead of TUI")
	flag.IntVar(&brightest, "brightest", 10, "Rows in the summary table")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON frame snapshot to file (use - for stdout)")
	flag.StringVar(&plotPath, "plot", "", "Render the frame to an image file (png, svg, pdf)")
	flag.BoolVar(&miniSkyMode, "mini-sky", false, "Show ASCII mini sky view")
	flag.StringVar(&opsText, "ops", "", "Headless operation list, e.g. rotate:30,scale:2")
	flag.IntVar(&outWidth, "width", 0, "Headless output width (cells for -mini-sky, pixels for snapshots)")
	flag.IntVar(&outHeight, "height", 0, "Headless output height")
	flag.Parse()

	// Validate limits
	*fps = ui.ClampFPS(*fps)
	if *workers < 0 {
		*workers = 0
	} else if *workers > maxWorkers {
		*workers = maxWorkers
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))
	if *logFile != "" {
		closer, err := logger.OpenFile(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
	}

	kind, err := astro.ParseProjectionKind(*projection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	mode, err := state.ParseViewMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	sk, err := loadSky(skyOptions{
		catalogPath:        *catalogPath,
		constellationsPath: *constPath,
		projection:         kind,
		declutter:          astro.Declutter{RMax: *declutterR, Strength: *declutterS},
		useDistance:        *distance,
		cutoffDeg:          *cutoff,
		workers:            *workers,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Headless mode: no TUI
	headless := summaryMode || snapshotPath != "" || plotPath != "" || miniSkyMode
	if headless {
		if err := runHeadless(os.Stdout, sk, mode, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The TUI owns the terminal.
	if *logFile == "" {
		logger.SetOutput(io.Discard)
	}

	cfg := view.DefaultConfig()
	cfg.PixelsPerUnit = cellPixelsPerUnit
	model := ui.New(sk, mode,
		ui.WithPipeline(view.NewPipeline(cfg)),
		ui.WithFPS(*fps),
		ui.WithLogger(logger),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadSky reads the catalog and constellation files and builds the sky.
// Missing files leave the corresponding data set empty.
func loadSky(o skyOptions, logger *logging.Logger) (*sky.Sky, error) {
	loader := catalog.NewLoader(catalog.WithLogger(logger))

	records, err := loader.Stars(o.catalogPath)
	if err != nil && !errors.Is(err, catalog.ErrMissingResource) {
		return nil, fmt.Errorf("load stars: %w", err)
	}
	defs, err := loader.Constellations(o.constellationsPath)
	if err != nil && !errors.Is(err, catalog.ErrMissingResource) {
		return nil, fmt.Errorf("load constellations: %w", err)
	}

	p := astro.NewProjector(o.projection, records)
	p.Declutter = o.declutter
	p.UseDistance = o.useDistance

	opts := []sky.Option{sky.WithWorkers(o.workers), sky.WithLogger(logger)}
	if o.cutoffDeg > 0 {
		opts = append(opts, sky.WithFilter(&sky.Filter{RA0: p.RA0, Dec0: p.Dec0, MaxSepDeg: o.cutoffDeg}))
	}
	sk := sky.NewSky(records, defs, p, opts...)

	st := sk.Stats()
	logger.Debug("sky ready: %d stars, %d/%d constellations bound, %s",
		st.Stars, st.Bound, st.Constellations, p)
	return sk, nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(w io.Writer, sk *sky.Sky, mode state.ViewMode, logger *logging.Logger) error {
	s := state.NewInteraction(mode)
	ops := view.BuildOperations(&s)
	if opsText != "" {
		parsed, err := transform.ParseOperations(opsText)
		if err != nil {
			return fmt.Errorf("parse -ops: %w", err)
		}
		ops = parsed
	}

	cfg := view.DefaultConfig()
	now := time.Now()

	// Export JSON and image if requested
	if snapshotPath != "" || plotPath != "" {
		vp := view.Viewport{
			Width:  float64(orDefault(outWidth, defaultSnapshotWidth)),
			Height: float64(orDefault(outHeight, defaultSnapshotHeight)),
			Aspect: 1,
		}
		f, err := view.NewPipeline(cfg).RenderOps(sk, &s, ops, vp)
		if err != nil {
			return fmt.Errorf("render snapshot: %w", err)
		}
		if err := writeSnapshot(w, f, sk, now, logger); err != nil {
			return err
		}
		if plotPath != "" {
			pc := report.DefaultPlotConfig()
			pc.Title = fmt.Sprintf("%s %s", sk.Projector, s.Mode)
			if err := report.SavePlot(plotPath, f, pc); err != nil {
				return err
			}
			logger.Info("plot written to %s", plotPath)
		}
	}

	// Print summary table if requested
	if summaryMode {
		report.WriteSummaryTable(w, sk, brightest, now)
	}

	// Mini sky view
	if miniSkyMode {
		msCfg := miniSkyConfig()
		cfg.PixelsPerUnit = cellPixelsPerUnit
		f, err := view.NewPipeline(cfg).RenderOps(sk, &s, ops, msCfg.Viewport())
		if err != nil {
			return fmt.Errorf("render mini sky: %w", err)
		}
		fmt.Fprintln(w)
		report.WriteMiniSky(w, f, msCfg)
	}
	return nil
}

// writeSnapshot exports f as JSON to snapshotPath, or to w for "-".
func writeSnapshot(w io.Writer, f view.Frame, sk *sky.Sky, now time.Time, logger *logging.Logger) error {
	if snapshotPath == "" {
		return nil
	}
	export := report.ExportFrame(f, sk, now)
	if snapshotPath == "-" {
		if err := export.WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	out, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer out.Close()
	if err := export.WriteJSON(out); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	logger.Info("snapshot written to %s", snapshotPath)
	return nil
}

// miniSkyConfig sizes the mini sky from the flags, else from the terminal.
func miniSkyConfig() report.MiniSkyConfig {
	cfg := report.DefaultMiniSkyConfig()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 && h > 6 {
			// Border, footer and the blank line above.
			cfg.Width, cfg.Height = w-2, h-5
		}
	}
	if outWidth > 0 {
		cfg.Width = outWidth
	}
	if outHeight > 0 {
		cfg.Height = outHeight
	}
	return cfg
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
