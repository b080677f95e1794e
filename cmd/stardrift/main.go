package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/astrokit/stardrift/internal/animate"
	"github.com/astrokit/stardrift/internal/catalog"
	"github.com/astrokit/stardrift/internal/config"
	"github.com/astrokit/stardrift/internal/export"
	"github.com/astrokit/stardrift/internal/gui"
	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/player"
	"github.com/astrokit/stardrift/internal/render"
	"github.com/astrokit/stardrift/internal/star"
)

var (
	configFile string
	presetName string
	logLevel   string

	endpoint string
	table    string
	minPM    float64
	limit    int
	cacheDir string
	offline  bool

	yearsPerStep float64
	steps        int
	intervalMs   int

	chartW      int
	chartH      int
	themeName   string
	paletteName string
	vmin        float64
	vmax        float64

	gifPath string
	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stardrift",
		Short: "watch the solar neighborhood drift apart",
		Long: "stardrift queries high proper motion stars from the Gaia archive and\n" +
			"propagates them through space, as a live terminal chart, an animated\n" +
			"GIF, or a 3D viewer.",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "fetch the star catalog and print a summary",
		RunE:  runQuery,
	}
	addCatalogFlags(queryCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one sky + space snapshot at the catalog epoch",
		RunE:  runRender,
	}
	addCatalogFlags(renderCmd)
	addDisplayFlags(renderCmd)
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write the snapshot as SVG")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "play the drift animation in the terminal",
		RunE:  runAnimate,
	}
	addCatalogFlags(animateCmd)
	addDisplayFlags(animateCmd)
	addAnimateFlags(animateCmd)
	animateCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated GIF instead of playing")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play the drift in a 3D window",
		RunE:  runGUI,
	}
	addCatalogFlags(guiCmd)
	addDisplayFlags(guiCmd)
	addAnimateFlags(guiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "stardrift.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(queryCmd, renderCmd, animateCmd, guiCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&endpoint, "endpoint", config.DefaultEndpoint, "TAP sync endpoint")
	cmd.Flags().StringVar(&table, "table", config.DefaultTable, "catalog table")
	cmd.Flags().Float64Var(&minPM, "min-pm", config.DefaultMinPM, "minimum proper motion (mas/yr)")
	cmd.Flags().IntVar(&limit, "limit", config.DefaultLimit, "maximum rows")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "catalog cache directory")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the newest cached catalog, no network")
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&chartW, "width", config.DefaultWidth, "panel width in cells")
	cmd.Flags().IntVar(&chartH, "height", config.DefaultHeight, "panel height in cells")
	cmd.Flags().StringVar(&themeName, "theme", "dark", "chrome theme")
	cmd.Flags().StringVar(&paletteName, "palette", "viridis", "distance palette (viridis|plasma|mono)")
	cmd.Flags().Float64Var(&vmin, "vmin", 0, "color scale minimum distance (pc)")
	cmd.Flags().Float64Var(&vmax, "vmax", 0, "color scale maximum distance (pc)")
}

func addAnimateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&yearsPerStep, "years", config.DefaultYearsPerStep, "years per frame")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of frames")
	cmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "frame interval (ms)")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// effectiveConfig layers preset, config file, and flags, in that order.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("endpoint") {
		cfg.Catalog.URL = endpoint
	}
	if f.Changed("table") {
		cfg.Catalog.Table = table
	}
	if f.Changed("min-pm") {
		cfg.Catalog.MinPM = minPM
	}
	if f.Changed("limit") {
		cfg.Catalog.Limit = limit
	}
	if f.Changed("cache-dir") {
		cfg.Catalog.CacheDir = cacheDir
	}
	if f.Changed("years") {
		cfg.Animate.YearsPerStep = yearsPerStep
	}
	if f.Changed("steps") {
		cfg.Animate.Steps = steps
	}
	if f.Changed("interval") {
		cfg.Animate.IntervalMs = intervalMs
	}
	if f.Changed("width") {
		cfg.Display.Width = chartW
	}
	if f.Changed("height") {
		cfg.Display.Height = chartH
	}
	if f.Changed("theme") {
		cfg.Display.Theme = themeName
	}
	if f.Changed("palette") {
		cfg.Display.Palette = paletteName
	}
	if f.Changed("vmin") {
		v := vmin
		cfg.Display.VMin = &v
	}
	if f.Changed("vmax") {
		v := vmax
		cfg.Display.VMax = &v
	}
	return cfg, nil
}

func cachePath(cfg *config.Config) string {
	if cfg.Catalog.CacheDir != "" {
		return cfg.Catalog.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".stardrift"
	}
	return filepath.Join(base, "stardrift")
}

// loadSet returns the working star set, from the archive or the cache.
func loadSet(ctx context.Context, cfg *config.Config, logger *slog.Logger) (star.Set, error) {
	epoch := catalog.EpochTime(cfg.Catalog.EpochYear)
	cache := catalog.NewCache(cachePath(cfg), cfg.Catalog.MaxCacheFiles)

	if offline {
		data, ts, err := cache.LoadLatest()
		if err != nil {
			return star.Set{}, fmt.Errorf("offline mode: %w", err)
		}
		logger.Info("using cached catalog", "fetched", ts.Format("2006-01-02 15:04"))
		return catalog.Parse(bytes.NewReader(data), epoch, logger)
	}

	client := catalog.NewClient(cfg.Catalog.URL, logger)
	q := catalog.Query{Table: cfg.Catalog.Table, MinPM: cfg.Catalog.MinPM, Limit: cfg.Catalog.Limit}
	data, err := client.Fetch(ctx, q)
	if err != nil {
		if cached, ts, cerr := cache.LoadLatest(); cerr == nil {
			logger.Warn("fetch failed, falling back to cache",
				"error", err, "fetched", ts.Format("2006-01-02 15:04"))
			return catalog.Parse(bytes.NewReader(cached), epoch, logger)
		}
		return star.Set{}, err
	}
	if err := cache.Write(data, time.Now()); err != nil {
		logger.Warn("cache write failed", "error", err)
	}
	return catalog.Parse(bytes.NewReader(data), epoch, logger)
}

func explicitScale(cfg *config.Config) *render.ColorScale {
	if lo, hi, ok := cfg.Display.ScaleBounds(); ok {
		return &render.ColorScale{Min: lo, Max: hi}
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	set, err := loadSet(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	lo, hi, err := set.DistanceRange()
	if err != nil {
		return err
	}

	fmt.Printf("%d stars at epoch %s, %.4g..%.4g pc\n\n",
		set.Len(), set.Epoch.Format("2006-01-02"), lo, hi)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DESIGNATION\tRA(deg)\tDEC(deg)\tDIST(pc)\tPMRA(mas/yr)\tPMDEC(mas/yr)\tRV(km/s)")

	show := set.Len()
	if show > 20 {
		show = 20
	}
	for _, s := range set.Stars[:show] {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.3f\t%.1f\t%.1f\t%.1f\n",
			s.Designation, s.RA.Deg(), s.Dec.Deg(), s.Distance,
			s.PMRA.Sec()*1000, s.PMDec.Sec()*1000, s.RadialVelocity)
	}
	if show < set.Len() {
		fmt.Fprintf(w, "... %d more\n", set.Len()-show)
	}
	return w.Flush()
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	set, err := loadSet(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	r := render.New(cfg.Display.Width, cfg.Display.Height, render.PaletteByName(cfg.Display.Palette))
	frame, err := r.Render(set, render.Options{Scale: explicitScale(cfg)})
	if err != nil {
		return err
	}

	snap := frame.Snapshot(fmt.Sprintf("%d stars, epoch %s", set.Len(), set.Epoch.Format("2006-01-02")))
	fmt.Println(snap.Compose())

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SnapshotSVG(snap, r.Palette, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	set, err := loadSet(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	r := render.New(cfg.Display.Width, cfg.Display.Height, render.PaletteByName(cfg.Display.Palette))
	an := animate.New(kinematics.Linear{}, r, logger)
	an.Interval = cfg.Interval()

	seq, err := an.Animate(set, kinematics.Years(cfg.Animate.YearsPerStep), cfg.Animate.Steps,
		render.Options{Scale: explicitScale(cfg)})
	if err != nil {
		return err
	}

	if gifPath != "" {
		f, err := os.Create(gifPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.SequenceGIF(f, seq, r.Palette); err != nil {
			return err
		}
		fmt.Printf("wrote %s, %d frames spanning %g yr\n", gifPath, seq.Len(), float64(seq.Span()))
		return nil
	}

	m := player.NewModel(seq, r.Palette, set.Len(), cfg.Display.Theme)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	set, err := loadSet(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	offsets, err := animate.Offsets(cfg.Animate.Steps, kinematics.Years(cfg.Animate.YearsPerStep))
	if err != nil {
		return err
	}
	scale, err := render.ResolveScale(set, explicitScale(cfg))
	if err != nil {
		return err
	}

	app, err := gui.Build(set, kinematics.Linear{}, offsets, scale,
		render.PaletteByName(cfg.Display.Palette), cfg.Interval())
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMIN_PM\tLIMIT\tYEARS/STEP\tSTEPS\tPALETTE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%d\t%g\t%d\t%s\n",
			name, p.Catalog.MinPM, p.Catalog.Limit,
			p.Animate.YearsPerStep, p.Animate.Steps, p.Display.Palette)
	}
	return w.Flush()
}
