package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/iulianpascalau/oled-monitoring/commonGo"
	"github.com/iulianpascalau/oled-monitoring/services/display/config"
	"github.com/iulianpascalau/oled-monitoring/services/display/factory"
	"github.com/iulianpascalau/oled-monitoring/services/display/probe"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "display"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
	envFile              = ".env"
	envI2CBus            = "DISPLAY_I2C_BUS"
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	displayHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	log = logger.GetOrCreate("display")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,probe:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the probe package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the service will look for its config and .env files and store the logs.",
		Value: "",
	}
	// configFile defines the page and metric configuration file
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` of the TOML configuration file, relative to the working directory. The stock pages are used if the file is missing.",
		Value: "config.toml",
	}
	// simulate renders the frames in the terminal instead of the I²C panel
	simulate = cli.BoolFlag{
		Name:  "simulate",
		Usage: "Boolean option for rendering the pages in the terminal instead of the SSD1306 panel.",
	}

	envFileContents = map[string]string{
		envI2CBus: "",
	}
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = displayHelpTemplate
	app.Name = "OLED system status display"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for the service rotating system status pages on an SSD1306 OLED panel"
	app.Flags = []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
		configFile,
		simulate,
	}
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}

	app.Action = run

	defer func() {
		if fileLogging != nil {
			_ = fileLogging.Close()
		}
	}()

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	saveLogFile := ctx.GlobalBool(logSaveFile.Name)
	workingDir := ctx.GlobalString(workingDirectory.Name)

	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(log, defaultLogsPath, logFilePrefix, saveLogFile, workingDir)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	log.Info("Starting display service", "version", appVersion, "pid", os.Getpid())

	err = commonGo.ReadEnvOverrides(filepath.Join(workingDir, envFile), envFileContents)
	if err != nil {
		return err
	}

	configPath := filepath.Join(workingDir, ctx.GlobalString(configFile.Name))
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", "path", configPath, "metrics", len(cfg.Metrics), "pages", len(cfg.Pages))
	if len(envFileContents[envI2CBus]) > 0 {
		cfg.Panel.I2CBus = envFileContents[envI2CBus]
	}

	prober, err := factory.CreateProber(*cfg)
	if err != nil {
		return err
	}

	panel, err := factory.CreatePanel(cfg.Panel, ctx.GlobalBool(simulate.Name), os.Stdout)
	if err != nil {
		return err
	}

	handler, err := factory.NewComponentsHandler(factory.ArgsComponentsHandler{
		Config:         *cfg,
		Prober:         prober,
		Panel:          panel,
		TotalMemoryGiB: probe.TotalMemoryGiB,
	})
	if err != nil {
		_ = panel.Close()
		return err
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Display service started", "pages", len(cfg.Pages), "panel", fmt.Sprintf("%dx%d", cfg.Panel.Width, cfg.Panel.Height))

	errRun := handler.Run(signalCtx)

	log.Info("Application closing, calling Close on all subcomponents...")

	errClose := handler.Close()
	if errRun != nil {
		return errRun
	}

	return errClose
}
