package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/san-kum/dancecube/internal/config"
	"github.com/san-kum/dancecube/internal/gui"
	"github.com/san-kum/dancecube/internal/logger"
	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/tui"
)

var (
	configFile    string
	preset        string
	seed          int64
	count         int
	rightColor    string
	leftColor     string
	interpolation float32
	mode          string
	logPath       string
	verbose       bool

	// inspect
	frames    int
	tracePath string
	pathSVG   string

	// snapshot
	snapshotAt  float64
	snapshotOut string
	cols        int
	rows        int
	printCanvas bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands. Without a subcommand the window opens.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dancecube",
		Short:        "a lattice of colored cubes dancing between two particle clouds",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&count, "count", scene.DefaultParticleCount, "particles per cloud")
	pf.StringVar(&rightColor, "right-color", scene.DefaultRightColor, "first particle color")
	pf.StringVar(&leftColor, "left-color", scene.DefaultLeftColor, "second particle color")
	pf.Float32Var(&interpolation, "interpolation", scene.DefaultInterpolation, "gradient interpolation divisor")
	pf.StringVar(&mode, "mode", string(scene.ModeGradient), "particle color mode (gradient, alternate)")
	pf.StringVar(&logPath, "log", logger.DefaultPath, "log file path (empty keeps logs in memory)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the scene in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "run the animation headless and summarize it",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().IntVar(&frames, "frames", 300, "number of frames to simulate")
	inspectCmd.Flags().StringVar(&tracePath, "trace", "", "write per-frame trace as JSON")
	inspectCmd.Flags().StringVar(&pathSVG, "path", "", "write the camera path as SVG")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&snapshotAt, "at", 3, "animation time in seconds")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "dancecube.svg", "output file")
	snapshotCmd.Flags().IntVar(&cols, "cols", 100, "canvas width in characters")
	snapshotCmd.Flags().IntVar(&rows, "rows", 40, "canvas height in characters")
	snapshotCmd.Flags().BoolVar(&printCanvas, "print", false, "also print the canvas to stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(guiCmd, tuiCmd, inspectCmd, snapshotCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig resolves preset, config file and flags, in that order of
// precedence from lowest to highest.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("count") {
		cfg.Particles.Count = count
	}
	if flags.Changed("right-color") {
		cfg.Particles.RightColor = rightColor
	}
	if flags.Changed("left-color") {
		cfg.Particles.LeftColor = leftColor
	}
	if flags.Changed("interpolation") {
		cfg.Particles.Interpolation = interpolation
	}
	if flags.Changed("mode") {
		cfg.Particles.Mode = mode
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger() (*logger.Logger, logr.Logger) {
	lines := logger.New(logPath)
	v := 0
	if verbose {
		v = 1
	}
	return lines, lines.Logr(v)
}

// setup builds the scene for a command. The caller closes the context.
func setup(cmd *cobra.Command) (*config.Config, *scene.Context, *logger.Logger, logr.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, logr.Discard(), err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	lines, log := newLogger()
	opts := cfg.SceneOptions()
	opts.Logger = log
	ctx, err := scene.NewContext(opts)
	if err != nil {
		return nil, nil, nil, log, err
	}
	return cfg, ctx, lines, log, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, ctx, lines, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()
	return gui.Run(ctx, cfg.AnimSettings(), cfg.Window, lines, log)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, ctx, lines, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()
	return tui.Run(ctx, cfg.AnimSettings(), lines, log)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
