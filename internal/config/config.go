package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"elsetup/internal/app"
	"elsetup/internal/distro"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envOSRelease  = "ELSETUP_OS_RELEASE"
	envDistro     = "ELSETUP_DISTRO"
	envCatalog    = "ELSETUP_CATALOG"
	envWidth      = "ELSETUP_WIDTH"
	envHeight     = "ELSETUP_HEIGHT"
	envShowFooter = "ELSETUP_FOOTER"
	envVerbose    = "ELSETUP_VERBOSE"
	envTrace      = "ELSETUP_TRACE"
	envLogFile    = "ELSETUP_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("elsetup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	osRelease := fs.String("os-release", envOrDefault(env, envOSRelease, ""), "path to an os-release file (defaults to /etc/os-release)")
	distroName := fs.String("distro", envOrDefault(env, envDistro, ""), "skip detection and assume this distribution (rhel, centos, rocky, almalinux)")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML file with extra catalog entries")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key-hint footer row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *distroName != "" && distro.FromID(*distroName) == distro.Unknown {
		return Config{}, fmt.Errorf("unknown distribution %q", *distroName)
	}

	cfg := Config{
		App: app.Config{
			OSReleasePath: *osRelease,
			DistroName:    strings.ToLower(*distroName),
			CatalogPath:   *catalogPath,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"osRelease": *osRelease,
			"distro":    *distroName,
			"catalog":   *catalogPath,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
