package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/bench"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/store"
	"github.com/san-kum/sortviz/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	size       int
	algorithm  string
	fps        int
	seed       int64
	theme      string
	autoplay   bool
	repeat     int
	// run
	save     bool
	jsonOut  string
	showPath bool
	svgOut   string
	// bench
	benchSizes  []int
	benchTrials int
)

// main registers commands and flags, launches the interactive visualizer when
// no subcommand is given, and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for stored runs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "number of values to sort")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	addPlayFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&algorithm, "algo", "", "starting algorithm")
		cmd.Flags().IntVar(&fps, "fps", 0, "frame rate")
		cmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
		cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start stepping automatically")
		cmd.Flags().IntVar(&repeat, "repeat", 0, "steps per key press")
	}
	addPlayFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive visualizer",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	addPlayFlags(playCmd)

	runCmd := &cobra.Command{
		Use:   "run [algo]",
		Short: "run an algorithm to completion without the visualizer",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&save, "save", false, "store the run and its step trace")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "export the step trace as JSON (- for stdout)")
	runCmd.Flags().BoolVar(&showPath, "show", false, "print the order after every step")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "draw the initial and final bars as svg (writes <path>_initial.svg and <path>_final.svg)")
	runCmd.Flags().StringVar(&theme, "theme", "", "svg color theme")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare the work every algorithm needs on identical inputs",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", bench.DefaultConfig().Sizes, "sizes to benchmark")
	benchCmd.Flags().IntVar(&benchTrials, "trials", bench.DefaultConfig().Trials, "trials per size")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for i, k := range algo.Kinds() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, k, k.Description())
			}
			w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s size %d, %d fps\n", name, p.Size, p.FPS)
			}
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "replay a yaml scenario of driver commands",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	rootCmd.AddCommand(playCmd, runCmd, benchCmd, listCmd, runsCmd, presetsCmd, scriptCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the preset, the config file and explicit flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Lookup("algo") != nil && flags.Changed("algo") {
		cfg.Algorithm = algorithm
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("autoplay") != nil && flags.Changed("autoplay") {
		cfg.Autoplay = autoplay
	}
	if flags.Lookup("repeat") != nil && flags.Changed("repeat") {
		cfg.Repeat = repeat
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to stderr unless a log file is given. The visualizer owns
// the terminal, so play discards logs without --log-file.
func newLogger(interactive bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)

	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		log.SetOutput(f)
		log.SetFormatter(&logrus.JSONFormatter{})
		closeFn = func() { f.Close() }
	case interactive:
		log.SetLevel(logrus.PanicLevel)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, closeFn, nil
}

func newRegistry(cfg *config.Config, log logrus.FieldLogger) (*registry.Registry, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	return registry.New(cfg.Size,
		registry.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		registry.WithLogger(log),
		registry.WithActive(kind),
		registry.WithMaxRepeat(cfg.MaxRepeat),
		registry.WithRepeat(cfg.Repeat),
	), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	reg, err := newRegistry(cfg, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"size": cfg.Size, "seed": cfg.Seed, "algo": reg.Active()}).Info("starting visualizer")
	return tui.Run(reg, cfg, log)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	kind, err := algo.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, algo.Kinds())
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	e := algo.New(kind, cfg.Size, rand.New(rand.NewSource(cfg.Seed)))
	initial := e.Values()
	initialState := e.Render()

	var trace *store.Trace
	if save || jsonOut != "" || showPath {
		trace = store.Capture(e, algo.MaxSteps(cfg.Size))
	} else {
		algo.Run(e, algo.MaxSteps(cfg.Size))
	}
	if !e.Done() {
		return fmt.Errorf("%s did not finish within %d steps", kind, algo.MaxSteps(cfg.Size))
	}

	if showPath {
		for _, f := range trace.Frames {
			fmt.Printf("%6d  %v\n", f.Step, f.Values)
		}
	}

	st := e.Stats()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "algorithm\t%s\n", kind)
	fmt.Fprintf(w, "size\t%d\n", cfg.Size)
	fmt.Fprintf(w, "seed\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "steps\t%d\n", st.Steps)
	fmt.Fprintf(w, "comparisons\t%d\n", st.Comparisons)
	fmt.Fprintf(w, "swaps\t%d\n", st.Swaps)
	if cfg.Size <= 32 {
		fmt.Fprintf(w, "initial\t%v\n", initial)
		fmt.Fprintf(w, "final\t%v\n", e.Values())
	}
	w.Flush()

	if jsonOut == "-" {
		if err := store.WriteJSON(os.Stdout, cfg.Seed, trace); err != nil {
			return err
		}
	} else if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, cfg.Seed, trace); err != nil {
			return err
		}
		fmt.Printf("exported %s\n", jsonOut)
	}

	if svgOut != "" {
		th := tui.GetTheme(cfg.Theme)
		palette := func(r algo.Role) string { return string(th.RoleColor(r)) }
		base := strings.TrimSuffix(svgOut, ".svg")
		if err := export.WriteSVG(base+"_initial.svg", initialState, palette, 1); err != nil {
			return err
		}
		if err := export.WriteSVG(base+"_final.svg", e.Render(), palette, 1); err != nil {
			return err
		}
		fmt.Printf("drew %s_initial.svg and %s_final.svg\n", base, base)
	}

	if save {
		runs := store.New(cfg.DataDir)
		if err := runs.Init(); err != nil {
			return err
		}
		runID, err := runs.Save(cfg.Seed, trace)
		if err != nil {
			return err
		}
		log.WithField("run", runID).Info("saved run")
		fmt.Printf("saved %s\n", runID)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := bench.Config{Sizes: benchSizes, Trials: benchTrials, Seed: seed}
	if cfg.Seed == 0 {
		cfg.Seed = bench.DefaultConfig().Seed
	}

	ctx := context.Background()
	start := time.Now()
	results, err := bench.Run(ctx, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "size\talgorithm\tsteps\tcomparisons\tswaps\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\t\n", r.Size, r.Kind, r.Steps, r.Comparisons, r.Swaps)
	}
	w.Flush()

	if len(cfg.Sizes) > 1 {
		fmt.Println()
		fmt.Println(bench.Chart(results, 12, 60))
	}
	fmt.Printf("\n%d trials per size in %v\n", cfg.Trials, time.Since(start).Round(time.Millisecond))
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		scenario.Size = size
	}
	if cmd.Flags().Changed("seed") {
		scenario.Seed = seed
	}

	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if scenario.Name != "" {
		fmt.Printf("%s", scenario.Name)
		if scenario.Description != "" {
			fmt.Printf(": %s", scenario.Description)
		}
		fmt.Println()
	}

	checkpoints, err := automation.RunScenario(cmd.Context(), scenario, log)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#	ACTION	ALGORITHM	STEPS	COMPARISONS	SWAPS	DONE")
	for _, cp := range checkpoints {
		st := cp.State.Stats
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%v\n", cp.Index, cp.Action, cp.State.Kind, st.Steps, st.Comparisons, st.Swaps, cp.State.Done)
	}
	w.Flush()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	dir := config.DefaultDataDir
	if dataDir != "" {
		dir = dataDir
	}
	runs, err := store.New(dir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tSIZE\tSTEPS\tSWAPS\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", r.ID, r.Algorithm, r.Size, r.Steps, r.Swaps, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
