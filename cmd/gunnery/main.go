package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/navsight/gunnery/internal/api"
	"github.com/navsight/gunnery/internal/ballistics"
	"github.com/navsight/gunnery/internal/catalog"
	"github.com/navsight/gunnery/internal/config"
	"github.com/navsight/gunnery/internal/database"
	"github.com/navsight/gunnery/internal/geo"
	"github.com/navsight/gunnery/internal/influx"
	"github.com/navsight/gunnery/internal/logging"
	"github.com/navsight/gunnery/internal/monitor"
	intOtel "github.com/navsight/gunnery/internal/otel"
	"github.com/navsight/gunnery/internal/parser"
	"github.com/navsight/gunnery/internal/predictor"
	"github.com/navsight/gunnery/internal/smoothing"
	"github.com/navsight/gunnery/pkg/core"

	"github.com/rs/zerolog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"gorm.io/gorm"
)

// Version can be set at build time via ldflags
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	AppName string = "gunnery"
)

var (
	SessionStartTime time.Time = time.Now()

	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// OTelProvider handles OpenTelemetry
	OTelProvider *intOtel.Provider

	logFile *os.File
)

type options struct {
	configDir string

	text    string
	watch   bool
	monitor bool

	distanceKm float64
	speedKnots float64
	bearingDeg float64
	shipClass  string
	shipID     string

	centerX int
	centerY int

	sweep   string
	sweepKm float64

	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configDir, "config", ".", "directory containing gunnery.cfg.json")
	flag.StringVar(&opts.text, "text", "", "recognized telemetry text to parse instead of numeric flags")
	flag.BoolVar(&opts.watch, "watch", false, "read telemetry lines from stdin and solve each")
	flag.BoolVar(&opts.monitor, "monitor", false, "report per-interval solver counters (watch mode)")
	flag.Float64Var(&opts.distanceKm, "distance", 0, "target distance in km")
	flag.Float64Var(&opts.speedKnots, "speed", 0, "target speed in knots")
	flag.Float64Var(&opts.bearingDeg, "bearing", 90, "target bearing relative to own heading, degrees")
	flag.StringVar(&opts.shipClass, "class", "", "target ship class (destroyer, cruiser, battleship)")
	flag.StringVar(&opts.shipID, "ship", "", "target ship name for catalog lookup")
	flag.IntVar(&opts.centerX, "x", -1, "aim origin x in pixels (default: screen center)")
	flag.IntVar(&opts.centerY, "y", -1, "aim origin y in pixels (default: screen center)")
	flag.StringVar(&opts.sweep, "sweep", "", "calibration sweep polyline [[x,y],...]; prints pixelsPerKm and exits")
	flag.Float64Var(&opts.sweepKm, "sweep-km", 1.0, "run length of the calibration sweep in km")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

// setupLogging opens the session log file and wires slog plus optional OTel.
func setupLogging() {
	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(nil, config.GetString("logLevel"), nil)
	Logger = SlogManager.Logger()

	logsDir := config.GetString("logsDir")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		os.Mkdir(logsDir, 0755)
	}

	logFilePath := logging.LogFilePath(logsDir, AppName, SessionStartTime)
	var err error
	logFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		Logger.Error("Failed to create/open log file!", "error", err, "path", logFilePath)
		return
	}

	// Initialize OTel provider if enabled (after log file is created)
	otelCfg := config.GetOTelConfig()
	if otelCfg.Enabled {
		OTelProvider, err = intOtel.New(intOtel.Config{
			Enabled:        otelCfg.Enabled,
			ServiceName:    otelCfg.ServiceName,
			BatchTimeout:   otelCfg.BatchTimeout,
			ExportInterval: otelCfg.ExportInterval,
			LogWriter:      logFile,
			Endpoint:       otelCfg.Endpoint,
			Insecure:       otelCfg.Insecure,
		})
		if err != nil {
			Logger.Error("Failed to initialize OTel provider", "error", err)
		} else if otelCfg.Endpoint != "" {
			Logger.Info("OTel provider initialized", "file", logFilePath, "endpoint", otelCfg.Endpoint)
		} else {
			Logger.Info("OTel provider initialized", "file", logFilePath)
		}
	}

	// Re-setup logging with file output and optional OTel
	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}
	SlogManager.Setup(logFile, config.GetString("logLevel"), otelLogProvider)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", logFilePath)
}

// setupCatalog loads ship parameters from the configured source.
func setupCatalog() *catalog.Catalog {
	catCfg := catalog.Config{
		Source: config.GetString("catalog.source"),
		Path:   config.GetString("catalog.path"),
	}

	var db *gorm.DB
	if catCfg.Source == "db" {
		zl := zerolog.New(logFile).With().Timestamp().Logger()
		dbManager := database.NewManager(zl)
		if err := dbManager.Connect(); err != nil {
			Logger.Error("Failed to connect catalog database", "error", err)
		} else if err := dbManager.Setup(); err != nil {
			Logger.Error("Failed to set up catalog database", "error", err)
		} else {
			db = dbManager.DB
		}
	}

	var fetcher catalog.Fetcher
	if catCfg.Source == "http" {
		client := api.New(config.GetString("api.url"), config.GetString("api.key"))
		if err := client.Healthcheck(); err != nil {
			Logger.Warn("Fleet data service unreachable", "error", err)
		}
		fetcher = client
	}

	return catalog.FromSource(catCfg, db, fetcher, Logger)
}

func buildPredictor(cat *catalog.Catalog) (*predictor.Predictor, error) {
	var smoother *smoothing.Window
	if config.GetBool("smoothing.enabled") {
		smoother = smoothing.NewWindow(config.GetInt("smoothing.window"))
	}

	return predictor.New(predictor.Dependencies{
		Catalog: cat,
		Calibration: ballistics.Calibration{
			PixelsPerKm:   config.GetFloat("calibration.pixelsPerKm"),
			PixelsPer100m: config.GetFloat("calibration.pixelsPer100m"),
			ReferenceKm:   config.GetFloat("calibration.referenceKm"),
		},
		Logger:   Logger,
		Smoother: smoother,
	})
}

// solutionOutput is the JSON shape printed for each solve.
type solutionOutput struct {
	LeadPixels   float64 `json:"leadPixels"`
	OffsetX      float64 `json:"offsetX"`
	OffsetY      float64 `json:"offsetY"`
	AimX         int     `json:"aimX"`
	AimY         int     `json:"aimY"`
	DropPixels   float64 `json:"dropPixels"`
	TimeOfFlight float64 `json:"timeOfFlightSec"`
	Branch       string  `json:"paramsBranch"`
	LeadLine     string  `json:"leadLine"`
}

func printSolution(center core.ScreenPoint, sol predictor.Solution) error {
	out := solutionOutput{
		LeadPixels:   sol.Aim.LeadPixels,
		OffsetX:      sol.Aim.OffsetX,
		OffsetY:      sol.Aim.OffsetY,
		AimX:         sol.AimPoint.X,
		AimY:         sol.AimPoint.Y,
		DropPixels:   sol.DropPixels,
		TimeOfFlight: sol.TimeOfFlight,
		Branch:       string(sol.Resolution.Branch),
		LeadLine:     geo.LeadLineWKT(center, sol.AimPoint),
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func main() {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("%s %s (built %s)\n", AppName, Version, BuildDate)
		return
	}

	if err := config.Load(opts.configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLogging()
	defer func() {
		if OTelProvider != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := OTelProvider.Shutdown(ctx); err != nil {
				Logger.Error("OTel shutdown failed", "error", err)
			}
		}
		if logFile != nil {
			logFile.Close()
		}
	}()

	Logger.Info("Starting up", "version", Version, "build", BuildDate)

	if opts.sweep != "" {
		scale, err := geo.SweepScale(opts.sweep, opts.sweepKm)
		if err != nil {
			Logger.Error("Calibration sweep failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("{\"pixelsPerKm\": %g}\n", scale)
		return
	}

	cat := setupCatalog()
	p, err := buildPredictor(cat)
	if err != nil {
		Logger.Error("Failed to create predictor", "error", err)
		os.Exit(1)
	}

	screen := core.ScreenSize{
		Width:  config.GetInt("screen.width"),
		Height: config.GetInt("screen.height"),
	}
	center := core.ScreenPoint{X: screen.Width / 2, Y: screen.Height / 2}
	if opts.centerX >= 0 && opts.centerY >= 0 {
		center = core.ScreenPoint{X: opts.centerX, Y: opts.centerY}
	}

	if opts.watch {
		if err := runWatch(opts, p, center, screen); err != nil {
			Logger.Error("Watch loop failed", "error", err)
			os.Exit(1)
		}
		return
	}

	obs, err := buildObservation(opts)
	if err != nil {
		Logger.Error("Invalid target input", "error", err)
		os.Exit(1)
	}

	sol, err := p.Solve(center, obs, screen)
	if err != nil {
		Logger.Error("Solve failed", "error", err)
		os.Exit(1)
	}

	if err := printSolution(center, sol); err != nil {
		Logger.Error("Failed to encode solution", "error", err)
		os.Exit(1)
	}
}

// buildObservation assembles a target observation from flags, parsing
// recognized text when -text is given.
func buildObservation(opts options) (core.TargetObservation, error) {
	if opts.text != "" {
		obs, err := parser.New(Logger).ParseTargetInfo(opts.text)
		if err != nil {
			return core.TargetObservation{}, err
		}
		obs.BearingDeg = opts.bearingDeg
		return obs, nil
	}

	return core.TargetObservation{
		DistanceKm: opts.distanceKm,
		SpeedKnots: opts.speedKnots,
		BearingDeg: opts.bearingDeg,
		ShipClass:  opts.shipClass,
		ShipID:     opts.shipID,
	}, nil
}

// runWatch reads one telemetry line per update from stdin and prints a
// solution for each, with the interval monitor shipping counters out.
func runWatch(opts options, p *predictor.Predictor, center core.ScreenPoint, screen core.ScreenSize) error {
	var influxManager *influx.Manager
	if config.GetBool("influx.enabled") {
		backupPath := logging.LogFilePath(config.GetString("logsDir"), AppName+"_metrics", SessionStartTime) + ".gz"
		zl := zerolog.New(logFile).With().Timestamp().Logger()
		influxManager = influx.NewManager(zl, backupPath)
		if err := influxManager.Connect(); err != nil {
			Logger.Warn("InfluxDB unavailable, solver counters stay local", "error", err)
			influxManager = nil
		}
	}

	var monitorService *monitor.Service
	if opts.monitor {
		monitorService = monitor.NewService(monitor.Dependencies{
			Predictor:  p,
			LogManager: SlogManager,
			Influx:     influxManager,
			Interval:   time.Second,
		})
		if err := monitorService.Start(); err != nil {
			return err
		}
		defer monitorService.Stop()
	}

	tp := parser.New(Logger)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		obs, err := tp.ParseTargetInfo(line)
		if err != nil {
			Logger.Warn("Skipping unparseable telemetry", "error", err)
			continue
		}
		obs.BearingDeg = opts.bearingDeg

		sol, err := p.Solve(center, obs, screen)
		if err != nil {
			Logger.Warn("Solve failed", "error", err)
			continue
		}

		if err := printSolution(center, sol); err != nil {
			return err
		}
	}

	if monitorService != nil {
		Logger.Info("Session complete", "stats", monitorService.StatusJSON())
	}
	return scanner.Err()
}
