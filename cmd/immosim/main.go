package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mbaillet/immosim/internal/cache"
	"github.com/mbaillet/immosim/internal/config"
	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/internal/params"
	"github.com/mbaillet/immosim/internal/server"
	"github.com/mbaillet/immosim/internal/view"
	"github.com/mbaillet/immosim/pkg/constants"
	"github.com/mbaillet/immosim/pkg/format"
	"github.com/mbaillet/immosim/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	outputFormat := loggingConfig.Format
	if outputFormat == "" {
		outputFormat = "json"
	}

	var zapConfig zap.Config
	switch outputFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", outputFormat)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	paramsLocation := flag.String("params", "", "path to simulation parameters YAML file")
	mode := flag.String("mode", "simple", "simulation mode: simple or expert")
	applyDefaults := flag.Bool("apply-location-defaults", false, "overwrite expert parameters with the location's defaults before submitting")
	serve := flag.Bool("serve", false, "run the HTTP server instead of a one-shot simulation")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	localeFlag := flag.String("locale", "", "display locale override: fr, en")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// The default config file is optional; an explicitly given one is not.
	configPath := *configLocation
	if configPath == constants.DefaultConfigFile {
		if _, err := os.Stat(configPath); err != nil {
			configPath = ""
		}
	}
	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	locale := conf.Locale
	if *localeFlag != "" {
		locale = *localeFlag
	}

	client := engine.NewClient(conf.Engine.URL,
		engine.WithLogger(logger),
		engine.WithTimeout(time.Duration(conf.Engine.TimeoutSeconds)*time.Second),
	)
	thresholds := view.Thresholds{
		RiskFree: conf.Thresholds.RiskFree,
		Discount: conf.Thresholds.Discount,
	}

	if *serve {
		runServer(logger, client, *serverConfigLocation, format.ParseLocale(locale), thresholds)
		return
	}

	if *paramsLocation == "" {
		logger.Fatal("no parameters file given; use -params or -serve",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	err = output.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	report, err := runSimulation(logger, client, *paramsLocation, *mode, *applyDefaults, thresholds, format.ParseLocale(locale))
	if err != nil {
		logger.Fatal("simulation failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(report); err != nil {
			logger.Fatal("failed to encode report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// runSimulation loads the parameters file, runs one simulation in the
// requested mode, and derives the display report.
func runSimulation(logger *zap.Logger, client *engine.Client, paramsPath, mode string, applyDefaults bool, thresholds view.Thresholds, locale format.Locale) (output.Report, error) {
	data, err := os.ReadFile(paramsPath)
	if err != nil {
		return output.Report{}, fmt.Errorf("failed to read parameters file: %w", err)
	}

	ctx := context.Background()

	switch mode {
	case "simple":
		var p params.SimpleParams
		if err := yaml.Unmarshal(data, &p); err != nil {
			return output.Report{}, fmt.Errorf("failed to parse parameters file: %w", err)
		}
		warnings, err := p.Validate()
		if err != nil {
			return output.Report{}, err
		}
		resp, err := client.SimulateSimple(ctx, p.Request())
		if err != nil {
			return output.Report{}, err
		}
		return output.BuildReport(resp, nil, thresholds, locale, warnings), nil

	case "expert":
		var form params.ExpertForm
		if err := yaml.Unmarshal(data, &form); err != nil {
			return output.Report{}, fmt.Errorf("failed to parse parameters file: %w", err)
		}
		p, err := form.BuildParams()
		if err != nil {
			return output.Report{}, err
		}
		if applyDefaults {
			defaults, err := client.LocationDefaults(ctx, p.Location)
			if err != nil {
				// Defaults only pre-fill values; keep the file's own.
				logger.Warn("could not fetch location defaults",
					zap.String("op", "main"),
					zap.String("location", p.Location),
					zap.Error(err),
				)
			} else {
				params.ApplyLocationDefaults(&p, *defaults)
			}
		}
		warnings, err := p.Validate()
		if err != nil {
			return output.Report{}, err
		}
		resp, err := client.SimulateExpert(ctx, p.Request())
		if err != nil {
			return output.Report{}, err
		}
		return output.BuildReport(&resp.SimulationResponse, resp.LMPStatus, thresholds, locale, warnings), nil

	default:
		return output.Report{}, fmt.Errorf("invalid mode %q, expected simple or expert", mode)
	}
}

// runServer starts the BFF HTTP server and blocks until it stops.
func runServer(logger *zap.Logger, client *engine.Client, serverConfigPath string, locale format.Locale, thresholds view.Thresholds) {
	srvConf, err := server.LoadConfig(serverConfigPath)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var store cache.Cache
	if srvConf.RedisAddress != "" {
		redisCache := cache.NewRedisCache(srvConf.RedisAddress)
		defer func() {
			_ = redisCache.Close()
		}()
		store = redisCache
		logger.Info("using redis location cache",
			zap.String("op", "main"),
			zap.String("address", srvConf.RedisAddress),
		)
	} else {
		store = cache.NewMemoryCache()
	}

	handler := server.NewHandler(server.Options{
		Logger:     logger,
		Client:     client,
		Cache:      store,
		Locale:     locale,
		Thresholds: thresholds,
		CacheTTL:   srvConf.CacheTTL(),
		Version:    version,
	})

	srv := &http.Server{
		Addr:         srvConf.Address,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	logger.Info("starting server",
		zap.String("op", "main"),
		zap.String("address", srvConf.Address),
		zap.String("version", version),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
