// Package cmd implements the fbd command line application.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finboard"
	"github.com/etnz/finboard/config"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&chartCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&windowsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to "+config.DefaultFile+" if it exists.")
var rawOutput = flag.Bool("raw", false, "Print markdown without terminal styling.")
var verbose = flag.Bool("v", false, "Enable debug logging.")

// errUsage marks errors caused by invalid flags or arguments.
var errUsage = errors.New("usage error")

// usageError marks err as caused by the user input.
func usageError(err error) error { return fmt.Errorf("%w: %w", errUsage, err) }

// errNegative reports a flag that must not be negative.
func errNegative(name string, value int) error {
	return fmt.Errorf("%s must not be negative, got %d", name, value)
}

// exitStatus reports err on stderr and returns the matching exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// loadConfig loads the configuration and sets up the logger accordingly.
func loadConfig() (*config.Config, error) {
	var paths []string
	switch {
	case *configFile != "":
		paths = append(paths, *configFile)
	case fileExists(config.DefaultFile):
		paths = append(paths, config.DefaultFile)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, err
	}
	setupLogger(cfg.Log.Level)
	log.Debug().Strs("files", paths).Str("currency", cfg.Currency).Str("window", cfg.Window).Msg("configuration loaded")
	return cfg, nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// setupLogger configures the default logger to write human readable entries on stderr.
func setupLogger(level string) {
	if *verbose {
		level = "debug"
	}
	log.DefaultLogger = log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:      os.Stderr,
			ColorOutput: log.IsTerminal(os.Stderr.Fd()),
		},
	}
}

// warnSkipped logs the records left out of file.
func warnSkipped(file string, skipped []finboard.RecordError) {
	for _, s := range skipped {
		log.Warn().Str("file", file).Int("record", s.Index).Err(s.Err).Msg("skipped an invalid record")
	}
}

// printMarkdown prints md on stdout, styled for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Warn().Err(err).Msg("cannot style markdown, printing it raw")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// printJSON prints v as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
