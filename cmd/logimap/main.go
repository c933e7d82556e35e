package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/logimap/internal/analysis"
	"github.com/san-kum/logimap/internal/config"
	"github.com/san-kum/logimap/internal/curvefit"
	"github.com/san-kum/logimap/internal/logistic"
	"github.com/san-kum/logimap/internal/render"
	"github.com/san-kum/logimap/internal/store"
	"github.com/san-kum/logimap/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	rMin     float64
	rMax     float64
	numR     int
	nIter    int
	nDiscard int
	x0       float64
	workers  int
	noSave   bool
	svgOut   string

	rValues []float64
	rSingle float64

	// decay model parameters
	decayA     float64
	decayAlpha float64
	decayB     float64
	decayBeta  float64
	tMax       float64
	nPoints    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logimap",
		Short: "logistic map exploration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".logimap", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a bifurcation sweep over the growth-rate parameter",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "lower sweep bound")
	sweepCmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "upper sweep bound")
	sweepCmd.Flags().IntVar(&numR, "num-r", config.DefaultNumR, "number of parameter values")
	sweepCmd.Flags().IntVar(&nIter, "iter", config.DefaultNIter, "iterations per trajectory")
	sweepCmd.Flags().IntVar(&nDiscard, "discard", config.DefaultNDiscard, "transient iterations to discard")
	sweepCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial condition")
	sweepCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers (0 = all cpus)")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	sweepCmd.Flags().StringVar(&svgOut, "svg", "", "write the diagram to an SVG file")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "plot time series for a set of r values",
		RunE:  runSeries,
	}
	seriesCmd.Flags().Float64SliceVar(&rValues, "r", []float64{2.0, 3.2, 3.45, 3.6}, "growth rates")
	seriesCmd.Flags().IntVar(&nIter, "iter", config.DefaultSeriesN, "iterations per trajectory")
	seriesCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial condition")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "power spectrum of a post-transient trajectory",
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&rSingle, "r", 3.5, "growth rate")
	spectrumCmd.Flags().IntVar(&nIter, "iter", 1024, "iterations")
	spectrumCmd.Flags().IntVar(&nDiscard, "discard", 512, "transient iterations to discard")
	spectrumCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial condition")

	fitDecayCmd := &cobra.Command{
		Use:   "fit-decay",
		Short: "explore a two-term exponential decay model",
		RunE:  runFitDecay,
	}
	fitDecayCmd.Flags().Float64Var(&decayA, "a", 1000, "amplitude A")
	fitDecayCmd.Flags().Float64Var(&decayAlpha, "alpha", 0.5, "decay rate alpha")
	fitDecayCmd.Flags().Float64Var(&decayB, "b", 500, "amplitude B")
	fitDecayCmd.Flags().Float64Var(&decayBeta, "beta", 0.1, "decay rate beta")
	fitDecayCmd.Flags().Float64Var(&tMax, "t-max", 10, "end of the time range")
	fitDecayCmd.Flags().IntVar(&nPoints, "points", 100, "samples over the time range")

	fitLineCmd := &cobra.Command{
		Use:   "fit-line [file]",
		Short: "least-squares line fit of two-column data",
		Args:  cobra.ExactArgs(1),
		RunE:  runFitLine,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep as a terminal scatter",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved sweep to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved sweep to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available sweep presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-8s r=[%g, %g] num_r=%d iter=%d discard=%d\n",
					p, cfg.Sweep.RMin, cfg.Sweep.RMax, cfg.Sweep.NumR, cfg.Sweep.NIter, cfg.Sweep.NDiscard)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive orbit explorer",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&rSingle, "r", 3.2, "growth rate")
	liveCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial condition")

	rootCmd.AddCommand(sweepCmd, seriesCmd, spectrumCmd, fitDecayCmd, fitLineCmd,
		listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweepCfg := logistic.SweepConfig{
		RMin: rMin, RMax: rMax, NumR: numR,
		NIter: nIter, NDiscard: nDiscard, X0: x0,
	}

	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		sweepCfg = cfg.Sweep.SweepConfig()
		if cfg.Sweep.Workers != 0 && !cmd.Flags().Changed("workers") {
			workers = cfg.Sweep.Workers
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config values.
		if !cmd.Flags().Changed("r-min") {
			sweepCfg.RMin = cfg.Sweep.RMin
		}
		if !cmd.Flags().Changed("r-max") {
			sweepCfg.RMax = cfg.Sweep.RMax
		}
		if !cmd.Flags().Changed("num-r") {
			sweepCfg.NumR = cfg.Sweep.NumR
		}
		if !cmd.Flags().Changed("iter") {
			sweepCfg.NIter = cfg.Sweep.NIter
		}
		if !cmd.Flags().Changed("discard") {
			sweepCfg.NDiscard = cfg.Sweep.NDiscard
		}
		if !cmd.Flags().Changed("x0") {
			sweepCfg.X0 = cfg.Sweep.X0
		}
		if !cmd.Flags().Changed("workers") && cfg.Sweep.Workers != 0 {
			workers = cfg.Sweep.Workers
		}
	}

	fmt.Printf("sweeping r over [%g, %g] (%d values, %d iterations, %d discarded)...\n",
		sweepCfg.RMin, sweepCfg.RMax, sweepCfg.NumR, sweepCfg.NIter, sweepCfg.NDiscard)

	start := time.Now()
	var result *logistic.Result
	var err error
	if workers == 1 {
		result, err = logistic.Sweep(sweepCfg)
	} else {
		result, err = logistic.SweepParallel(context.Background(), sweepCfg, workers)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("samples: %d\n\n", result.Len())

	fmt.Println(render.Scatter(result.Params, result.States, 100, 25))
	fmt.Printf("r: %g .. %g    x: attractor values per column\n", sweepCfg.RMin, sweepCfg.RMax)

	if svgOut != "" {
		svg := render.ScatterSVG(result.Params, result.States, 1200, 600)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgOut)
	}

	if noSave {
		return nil
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sweepCfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	for _, r := range rValues {
		traj := logistic.Iterate(r, x0, nIter)

		graph := asciigraph.Plot(traj,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("r = %g", r)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	if nDiscard >= nIter {
		return fmt.Errorf("discard (%d) must be smaller than iter (%d)", nDiscard, nIter)
	}

	traj := logistic.Iterate(rSingle, x0, nIter)
	tail := traj[nDiscard:]

	ps := analysis.PowerSpectrum(tail)

	graph := asciigraph.Plot(ps[1:],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (r=%g)", rSingle)),
	)
	fmt.Println(graph)
	fmt.Println()

	values := analysis.Attractor(tail, 1e-3)
	if len(values) <= 16 {
		fmt.Printf("attractor values: %d\n", len(values))
	} else {
		fmt.Printf("attractor values: %d (likely chaotic)\n", len(values))
	}

	idx := analysis.DominantFrequency(ps)
	if idx > 0 {
		period := float64(len(ps)-1) * 2 / float64(idx)
		fmt.Printf("dominant bin: %d (period ~%.1f iterations)\n", idx, period)
	}
	return nil
}

func runFitDecay(cmd *cobra.Command, args []string) error {
	model := curvefit.DecayModel{A: decayA, Alpha: decayAlpha, B: decayB, Beta: decayBeta}
	ts := curvefit.Linspace(0, tMax, nPoints)
	ys := model.Curve(ts)

	graph := asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("A=%g alpha=%g B=%g beta=%g", decayA, decayAlpha, decayB, decayBeta)),
	)
	fmt.Println(graph)
	fmt.Printf("\nload at t=0: %.2f   load at t=%g: %.2f\n", model.Eval(0), tMax, model.Eval(tMax))
	return nil
}

func runFitLine(cmd *cobra.Command, args []string) error {
	xs, ys, err := loadColumns(args[0])
	if err != nil {
		return err
	}

	m, c, err := curvefit.FitLine(xs, ys)
	if err != nil {
		return err
	}

	fmt.Printf("points: %d\n", len(xs))
	fmt.Printf("slope m = %.6e\n", m)
	fmt.Printf("intercept c = %.6e\n", c)

	h, relErr, err := curvefit.PlanckConstant(m)
	if err != nil {
		fmt.Printf("planck constant: not derivable (%v)\n", err)
		return nil
	}
	fmt.Printf("planck constant h = %.6e J·s (%.2f%% from reference)\n", h, relErr)
	return nil
}

// loadColumns reads whitespace-separated two-column numeric data.
func loadColumns(path string) (xs, ys []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%s:%d: expected two columns", path, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, scanner.Err()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tRANGE\tNUM_R\tITER\tDISCARD\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t[%g, %g]\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.RMin, run.RMax,
			run.NumR,
			run.NIter,
			run.NDiscard,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("r: [%g, %g]   samples: %d\n\n", meta.RMin, meta.RMax, result.Len())

	fmt.Println(render.Scatter(result.Params, result.States, 100, 25))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	result, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"r", "x"}); err != nil {
		return err
	}
	for i := range result.States {
		row := []string{
			strconv.FormatFloat(result.Params[i], 'g', -1, 64),
			strconv.FormatFloat(result.States[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, meta, result)
}

func runLive(cmd *cobra.Command, args []string) error {
	m := viz.NewModel(rSingle, x0)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
