package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/neurosphere/internal/audio"
	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/export"
	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/gui"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/viz"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/spf13/cobra"
)

var (
	configFile string
	size       string
	voice      bool
	audioMode  string
	audioLevel float64
	fps        int
	// gui
	backend  string
	backdrop bool
	hud      bool
	// tui
	theme string
	// snapshot / record
	ticks  int
	output string
	scale  float64
)

var background = render.RGBA8(5, 6, 18, 1)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	rootCmd := &cobra.Command{
		Use:          "neurosphere",
		Short:        "animated node sphere that reacts to pointer and voice",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&size, "size", config.DefaultSize, "size tier (small|medium|large)")
	pf.BoolVar(&voice, "voice", false, "start in voice mode")
	pf.StringVar(&audioMode, "audio", config.DefaultAudio, "audio level source (none|synthetic|mic)")
	pf.Float64Var(&audioLevel, "audio-level", 0, "fixed audio level used with --audio none")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "window backend (raylib|ebiten)")
	rootCmd.Flags().BoolVar(&backdrop, "backdrop", true, "paint the background glow")
	rootCmd.Flags().BoolVar(&hud, "hud", true, "show the status overlay")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the sphere in a native window",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "window backend (raylib|ebiten)")
	guiCmd.Flags().BoolVar(&backdrop, "backdrop", true, "paint the background glow")
	guiCmd.Flags().BoolVar(&hud, "hud", true, "show the status overlay")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "render the sphere in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to PNG or SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks to run before capturing")
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "sphere.png", "output file (.png or .svg)")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 1, "backing pixels per logical pixel")
	snapshotCmd.Flags().BoolVar(&backdrop, "backdrop", true, "paint the background glow")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "frames to record")
	recordCmd.Flags().StringVarP(&output, "output", "o", "sphere.gif", "output file")
	recordCmd.Flags().Float64Var(&scale, "scale", 1, "backing pixels per logical pixel")
	recordCmd.Flags().BoolVar(&backdrop, "backdrop", true, "paint the background glow")

	geometryCmd := &cobra.Command{
		Use:   "geometry",
		Short: "print node and connection statistics",
		RunE:  runGeometry,
	}

	tiersCmd := &cobra.Command{
		Use:   "tiers",
		Short: "list size tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIER\tCANVAS\tRADIUS\tPARTICLES")
			for _, name := range config.ListTiers() {
				t, _ := config.ParseTier(name)
				rc, _ := config.Lookup(t)
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%d\n", name, rc.CanvasSize, rc.BaseRadius, rc.ParticleCount)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, recordCmd, geometryCmd, tiersCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file, if any, under the command line: a file
// value only applies when its flag was not set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if configFile == "" || flags.Changed("size") {
		cfg.Size = size
	}
	if configFile == "" || flags.Changed("voice") {
		cfg.Voice = voice
	}
	if configFile == "" || flags.Changed("audio") {
		cfg.Audio = audioMode
	}
	if configFile == "" || flags.Changed("audio-level") {
		cfg.AudioLevel = audioLevel
	}
	if configFile == "" || flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Lookup("backend") != nil && (configFile == "" || flags.Changed("backend")) {
		cfg.Backend = backend
	}
	if flags.Lookup("backdrop") != nil && (configFile == "" || flags.Changed("backdrop")) {
		cfg.Backdrop = backdrop
	}
	if flags.Lookup("theme") != nil && (configFile == "" || flags.Changed("theme")) {
		cfg.Theme = theme
	}
	if flags.Lookup("ticks") != nil && (configFile == "" || flags.Changed("ticks")) {
		cfg.Ticks = ticks
	}
	if flags.Lookup("output") != nil && (configFile == "" || flags.Changed("output") || cfg.Output == "") {
		cfg.Output = output
	}
	if flags.Lookup("scale") != nil && (configFile == "" || flags.Changed("scale")) {
		cfg.Scale = scale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// levelSource opens the configured audio source. The returned stop func is
// always safe to call.
func levelSource(cfg *config.Config) (audio.LevelSource, func(), error) {
	switch cfg.Audio {
	case "synthetic":
		return audio.NewSynthetic(), func() {}, nil
	case "mic":
		m := audio.NewMeter()
		if err := m.Start(); err != nil {
			return nil, func() {}, err
		}
		return m, m.Stop, nil
	default:
		return audio.Fixed(cfg.AudioLevel), func() {}, nil
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tier, _ := config.ParseTier(cfg.Size)
	src, stop, err := levelSource(cfg)
	if err != nil {
		return err
	}
	defer stop()

	return gui.Run(cfg.Backend, gui.Options{
		Tier:     tier,
		Voice:    cfg.Voice,
		Level:    src,
		FPS:      cfg.FPS,
		Backdrop: cfg.Backdrop,
		HUD:      hud,
		Logger:   log.Default(),
	})
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tier, _ := config.ParseTier(cfg.Size)
	src, stop, err := levelSource(cfg)
	if err != nil {
		return err
	}
	defer stop()

	// the alt screen owns stdout, so sphere warnings go to stderr only
	logger := log.New(os.Stderr, "neurosphere: ", log.LstdFlags)
	return viz.Run(viz.Options{
		Tier:   tier,
		Voice:  cfg.Voice,
		Level:  src,
		FPS:    cfg.FPS,
		Theme:  cfg.Theme,
		Logger: logger,
	})
}

// captureOptions builds headless capture settings. Live microphone input
// makes no sense offline, so mic falls back to the synthetic envelope.
func captureOptions(cfg *config.Config) export.CaptureOptions {
	tier, _ := config.ParseTier(cfg.Size)
	var src audio.LevelSource = audio.Fixed(cfg.AudioLevel)
	if cfg.Audio != "none" {
		src = audio.NewSynthetic()
	}
	return export.CaptureOptions{
		Tier:       tier,
		Ticks:      cfg.Ticks,
		FPS:        cfg.FPS,
		Scale:      cfg.Scale,
		Voice:      cfg.Voice,
		Level:      src,
		Backdrop:   cfg.Backdrop,
		Background: background,
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := captureOptions(cfg)
	rc, _ := config.Lookup(opts.Tier)

	var last export.Frame
	err = export.Capture(opts, func(f export.Frame) error {
		if f.Index == opts.Ticks-1 {
			last = f
		}
		return nil
	})
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(cfg.Output)) {
	case ".svg":
		_, err = out.WriteString(export.CallsToSVG(last.Calls, rc.CanvasSize, background.Hex()))
	case ".png":
		err = export.WritePNG(out, last.Image)
	default:
		err = fmt.Errorf("%w: output must end in .png or .svg, got %q", config.ErrInvalidConfig, cfg.Output)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (tick %d, %d draw calls)\n", cfg.Output, last.Info.Tick, last.Info.Stats.DrawCalls())
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := captureOptions(cfg)
	opts.FadeIn = true

	anim := export.NewGIF(cfg.FPS)
	err = export.Capture(opts, func(f export.Frame) error {
		anim.AddFrame(f.Image)
		if (f.Index+1)%cfg.FPS == 0 {
			fmt.Printf("\rrecorded %d/%d frames", f.Index+1, opts.Ticks)
		}
		return nil
	})
	fmt.Println()
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := anim.Encode(out); err != nil {
		return errors.Join(err, os.Remove(cfg.Output))
	}
	fmt.Printf("wrote %s (%d frames)\n", cfg.Output, anim.Len())
	return nil
}

func runGeometry(cmd *cobra.Command, args []string) error {
	g := geometry.Generate(geometry.NodeCount)
	deg := g.Degrees()

	hist := make([]float64, 0, 16)
	minDeg, maxDeg, total := len(g.Nodes), 0, 0
	for _, d := range deg {
		minDeg = min(minDeg, d)
		maxDeg = max(maxDeg, d)
		total += d
		for len(hist) <= d {
			hist = append(hist, 0)
		}
		hist[d]++
	}

	fmt.Printf("nodes:       %d\n", len(g.Nodes))
	fmt.Printf("connections: %d (distance < %.2f)\n", len(g.Connections), geometry.ConnectionDistance)
	if len(deg) > 0 {
		fmt.Printf("degree:      min %d  max %d  mean %.2f\n", minDeg, maxDeg, float64(total)/float64(len(deg)))
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(hist,
		asciigraph.Height(10),
		asciigraph.Caption("nodes per degree"),
	))
	return nil
}
