// Package config reads command-line flags, with defaults taken from the
// environment (optionally populated from a .env file).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Env var names read for flag defaults.
const (
	EnvMode    = "RECIPEBOX_MODE"
	EnvAddr    = "RECIPEBOX_ADDR"
	EnvLogFile = "RECIPEBOX_LOG_FILE"
)

// DefaultTUILogFile keeps log lines off the Bubble Tea screen.
const DefaultTUILogFile = ".recipebox-logs/recipebox.log"

// Mode selects the front end.
type Mode string

const (
	ModeWeb   Mode = "web"
	ModeTUI   Mode = "tui"
	ModePrint Mode = "print"
)

// Config is the resolved runtime configuration.
type Config struct {
	Mode    Mode
	Addr    string
	Filter  string
	Sort    string
	Export  string // xlsx path for print mode, "" to skip
	LogFile string // "stderr" logs to the console
	Level   logger.Level
}

// ErrBadMode is returned for an unknown -mode value.
var ErrBadMode = errors.New("unknown mode")

// LoadEnv reads .env files into the process environment. Missing files
// are not an error.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Parse resolves flags from args using getenv for defaults. Usage and
// errors go to out.
func Parse(args []string, getenv func(string) string, out io.Writer) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	fs := flag.NewFlagSet("recipebox", flag.ContinueOnError)
	fs.SetOutput(out)

	mode := fs.String("mode", envOr(getenv, EnvMode, string(ModeWeb)), "front end: web, tui or print")
	addr := fs.String("addr", envOr(getenv, EnvAddr, ":8080"), "listen address for web mode")
	filter := fs.String("filter", "", "filter to apply in print mode (all, easy, medium, hard, quick)")
	sort := fs.String("sort", "", "sort to apply in print mode (none, name, time)")
	exportPath := fs.String("export", "", "write the visible recipes to this .xlsx file (print mode)")
	logFile := fs.String("log-file", getenv(EnvLogFile), "file to write logs to (use \"stderr\" to log to console; tui mode defaults to "+DefaultTUILogFile+")")
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Mode:    Mode(*mode),
		Addr:    *addr,
		Filter:  *filter,
		Sort:    *sort,
		Export:  *exportPath,
		LogFile: *logFile,
		Level:   logger.ParseLevel(*verbose, *quiet),
	}
	switch cfg.Mode {
	case ModeWeb, ModePrint:
	case ModeTUI:
		if cfg.LogFile == "" {
			cfg.LogFile = DefaultTUILogFile
		}
	default:
		return Config{}, fmt.Errorf("%w %q", ErrBadMode, cfg.Mode)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "stderr"
	}
	return cfg, nil
}

// Warnings lists flag values that will degrade to the identity transform.
func (c Config) Warnings() []string {
	var out []string
	if c.Filter != "" {
		if _, ok := domain.ParseFilter(c.Filter); !ok {
			out = append(out, fmt.Sprintf("unknown filter %q, showing all recipes", c.Filter))
		}
	}
	if c.Sort != "" {
		if _, ok := domain.ParseSort(c.Sort); !ok {
			out = append(out, fmt.Sprintf("unknown sort %q, keeping store order", c.Sort))
		}
	}
	return out
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
