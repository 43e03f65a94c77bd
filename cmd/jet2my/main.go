package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jetware/jet2my/pkg/apply"
	"github.com/jetware/jet2my/pkg/buildinfo"
	"github.com/jetware/jet2my/pkg/export"
	"github.com/joho/godotenv"
)

// Injected at release time via -ldflags.
var (
	version string
	commit  string
	date    string
)

type versionCmd struct{}

func (v *versionCmd) Run() error {
	fmt.Println(buildinfo.Get().String())
	return nil
}

var cli struct {
	Debug   bool        `help:"Enable debug logging." optional:"" default:"false"`
	Dump    export.Dump `cmd:"" help:"Export a desktop database file to a MySQL-dialect SQL document."`
	Apply   apply.Apply `cmd:"" help:"Replay an exported SQL document against a MySQL server."`
	Version versionCmd  `cmd:"" help:"Print version information."`
}

func main() {
	// A .env file can supply MYSQL_PWD and friends in development.
	_ = godotenv.Load()
	buildinfo.Set(version, commit, date)

	ctx := kong.Parse(&cli,
		kong.Name("jet2my"),
		kong.Description("jet2my: export desktop database files to MySQL"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	ctx.FatalIfErrorf(ctx.Run())
}
