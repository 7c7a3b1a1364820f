package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/metrics"
	"github.com/san-kum/lifelab/internal/pattern"
	"github.com/san-kum/lifelab/internal/storage"
	"github.com/san-kum/lifelab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	fps         int
	gridWidth   int
	gridHeight  int
	density     float64
	seed        int64
	generations int
	aliveGlyph  string
	deadGlyph   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "interactive cellular automata lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the raw-terminal player when no command given
			return runPlay(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	playCmd := &cobra.Command{
		Use:   "play [pattern]",
		Short: "play in the terminal, painting cells with the mouse",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&aliveGlyph, "alive", config.DefaultAlive, "glyph for live cells")
	playCmd.Flags().StringVar(&deadGlyph, "dead", config.DefaultDead, "glyph for dead cells")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full-screen dashboard with stats and charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addBoardFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run headless and record metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	addBoardFlags(runCmd)
	runCmd.Flags().IntVar(&generations, "generations", 1000, "generations to run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		RunE:  listPatterns,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark generation stepping",
		RunE:  benchStep,
	}
	benchCmd.Flags().IntVar(&generations, "generations", 500, "generations per size")

	rootCmd.AddCommand(playCmd, tuiCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, patternsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "generations per second (0 = unthrottled)")
	cmd.Flags().IntVar(&gridWidth, "width", 0, "board width (0 = fit terminal)")
	cmd.Flags().IntVar(&gridHeight, "height", 0, "board height (0 = fit terminal)")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random soup density")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// loadConfig merges defaults, an optional config file, and CLI flags.
// Flags set on the command line win over the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = gridWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = gridHeight
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = density
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("alive") {
		cfg.AliveGlyph = aliveGlyph
	}
	if cmd.Flags().Changed("dead") {
		cfg.DeadGlyph = deadGlyph
	}

	return cfg, cfg.Validate()
}

// seedGrid builds a w x h board seeded with a named pattern, or a random
// soup when name is empty or "random".
func seedGrid(w, h int, name string, dens float64, sd int64) (*life.Grid, error) {
	g, err := life.NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	if name == "" || name == "random" {
		if sd == 0 {
			sd = time.Now().UnixNano()
		}
		pattern.Random(g, dens, sd)
		return g, nil
	}

	p := pattern.Get(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pattern: %s (see lifelab patterns)", name)
	}
	p.PlaceCentered(g)
	return g, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}

	g, err := seedGrid(w, h, name, cfg.Density, cfg.Seed)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng := life.NewEngine(g, life.Discard, nil)
	mset := metrics.NewSet(metrics.Default()...)
	hist := &storage.History{}
	eng.AddObserver(mset)
	eng.AddObserver(hist)

	fmt.Printf("running %s on %dx%d...\n", name, w, h)
	start := time.Now()

	if err := eng.RunGenerations(context.Background(), generations); err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, w, h, cfg.Seed, hist, mset.Values())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", len(hist.Rows))
	fmt.Println("\nmetrics:")
	for name, val := range mset.Values() {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tGENS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Generations,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s (%dx%d)\n", meta.Pattern, meta.Width, meta.Height)
	fmt.Printf("generations: %d\n\n", len(rows))

	pop := make([]float64, len(rows))
	changed := make([]float64, len(rows))
	for i, row := range rows {
		pop[i] = float64(row.Population)
		changed[i] = float64(row.Changed)
	}

	fmt.Println(asciigraph.Plot(pop,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(changed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("changed cells per generation"),
	))

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, rows)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rows, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, rows)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDESCRIPTION")

	for _, name := range pattern.List() {
		p := pattern.Get(name)
		rows, cols := p.Size()
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.Name, cols, rows, p.Desc)
	}

	return w.Flush()
}

func benchStep(cmd *cobra.Command, args []string) error {
	sizes := []int{64, 128, 256, 512}

	fmt.Printf("benchmarking %d generations per size\n\n", generations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tGENS\tTIME\tGENS/SEC")

	for _, size := range sizes {
		g, err := life.NewGrid(size, size)
		if err != nil {
			return err
		}
		pattern.Random(g, 0.25, 42)

		eng := life.NewEngine(g, life.Discard, nil)

		start := time.Now()
		if err := eng.RunGenerations(context.Background(), generations); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
			size, size, generations, elapsed.Round(time.Millisecond),
			float64(generations)/elapsed.Seconds())
	}

	return w.Flush()
}
