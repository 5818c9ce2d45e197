package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/iulianpascalau/oled-monitoring/commonGo"
	"github.com/iulianpascalau/oled-monitoring/services/display/panel"
	"github.com/iulianpascalau/oled-monitoring/services/shutdown/terminator"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	envFile            = ".env"
	envI2CBus          = "DISPLAY_I2C_BUS"
	envSignature       = "DISPLAY_PROCESS_SIGNATURE"
	defaultSignature   = "/usr/local/bin/ssd1306_display"
	pollInterval       = 100 * time.Millisecond
	exitCodeFailure    = 1
	exitCodeNotFound   = 2
	defaultPanelWidth  = 128
	defaultPanelHeight = 32
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"

var (
	shutdownHelpTemplate = `NAME:
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

	log = logger.GetOrCreate("shutdown")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` holding the optional .env file.",
		Value: "",
	}
	// wait is the time allowed for the display process to exit
	wait = cli.DurationFlag{
		Name:  "wait",
		Usage: "The maximum `duration` to wait for the display process to exit before blanking the panel.",
		Value: 5 * time.Second,
	}
	// width of the panel to blank
	width = cli.IntFlag{
		Name:  "width",
		Usage: "The panel width in pixels.",
		Value: defaultPanelWidth,
	}
	// height of the panel to blank
	height = cli.IntFlag{
		Name:  "height",
		Usage: "The panel height in pixels.",
		Value: defaultPanelHeight,
	}

	envFileContents = map[string]string{
		envI2CBus:    "",
		envSignature: defaultSignature,
	}
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = shutdownHelpTemplate
	app.Name = "OLED display shutdown tool"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Terminates the running display service and blanks the OLED panel to avoid burn-in"
	app.Flags = []cli.Flag{
		logLevel,
		workingDirectory,
		wait,
		width,
		height,
	}
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}

	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(exitCodeFailure)
	}
}

func run(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	err = commonGo.ReadEnvOverrides(filepath.Join(ctx.GlobalString(workingDirectory.Name), envFile), envFileContents)
	if err != nil {
		return err
	}

	panelArgs := panel.ArgsSSD1306Panel{
		I2CBus: envFileContents[envI2CBus],
		Width:  ctx.GlobalInt(width.Name),
		Height: ctx.GlobalInt(height.Name),
	}
	blanker, err := terminator.NewPanelBlanker(func() (terminator.Panel, error) {
		oledPanel, errOpen := panel.NewSSD1306Panel(panelArgs)
		if errOpen != nil {
			return nil, errOpen
		}

		return oledPanel, nil
	})
	if err != nil {
		return err
	}

	term, err := terminator.NewTerminator(terminator.ArgsTerminator{
		Processes:    terminator.NewProcessTable(),
		Blanker:      blanker,
		Signature:    envFileContents[envSignature],
		WaitTimeout:  ctx.GlobalDuration(wait.Name),
		PollInterval: pollInterval,
	})
	if err != nil {
		return err
	}

	err = term.Terminate(context.Background())
	switch {
	case err == nil:
		log.Info("display process terminated and panel blanked")
		return nil
	case errors.Is(err, terminator.ErrProcessNotFound):
		return cli.NewExitError(err.Error(), exitCodeNotFound)
	default:
		return cli.NewExitError(err.Error(), exitCodeFailure)
	}
}
