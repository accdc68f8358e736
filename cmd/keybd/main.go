package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/keybd/internal/config"
	"github.com/Alia5/keybd/internal/configpaths"
	"github.com/Alia5/keybd/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

const configEnv = "KEYBD_CONFIG"

func main() {
	var cli config.CLI
	ctx := kong.Parse(&cli, parseOptions(os.Args[1:])...)

	logger, closers, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	rawLogger, rawCloser := openRawLogger(cli.Log, logger)
	if rawCloser != nil {
		closers = append(closers, rawCloser)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	err = ctx.Run()

	for _, c := range closers {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
}

// parseOptions describes the application and layers json, yaml and toml configuration
// below flags and environment.
func parseOptions(args []string) []kong.Option {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userConfigPath(args, os.Getenv(configEnv)))
	return []kong.Option{
		kong.Name("keybd"),
		kong.Description("Simulate keyboard events on Linux, macOS and Windows"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
}

// userConfigPath returns the --config value from args, or env when the flag is absent.
// Configuration resolvers run before kong parses flags, so the flag is read by hand.
func userConfigPath(args []string, env string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return env
}

// openRawLogger honors --log.raw-file, falling back to stdout at trace level.
func openRawLogger(cfg config.Log, logger *slog.Logger) (log.RawLogger, io.Closer) {
	if cfg.RawFile != "" {
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err == nil {
			return log.NewRaw(f), f
		}
		logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
		return log.NewRaw(nil), nil
	}
	if log.ParseLevel(cfg.Level) == log.LevelTrace {
		return log.NewRaw(os.Stdout), nil
	}
	return log.NewRaw(nil), nil
}
