// Package config holds the settings shared by the binaries.
package config

import (
	"os"

	"github.com/namsral/flag"
)

type Config struct {
	DataPath       string
	DBPath         string
	MigrationsPath string
	BindAddr       string
	SecretKey      string
	LogLevel       string

	Workers    int
	KeepStarts int
	Strategies string
	SeedDrill  bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordle-explorer", flag.ContinueOnError)

	fs.StringVar(&c.DataPath, "data-path", os.Getenv("WORDLE_DATA_PATH"),
		"directory holding the word list files")
	fs.StringVar(&c.DBPath, "db-path", "wordle.db",
		"path of the sqlite results database")
	fs.StringVar(&c.MigrationsPath, "migrations-path", "file://db/migrations",
		"source URL of the database migrations")
	fs.StringVar(&c.BindAddr, "bind-addr", ":8180", "address the server listens on")
	fs.StringVar(&c.SecretKey, "secret-key", os.Getenv("WORDLE_SECRET_KEY"),
		"HMAC key for API bearer tokens")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")

	fs.IntVar(&c.Workers, "workers", 4, "concurrent solve loops in batch runs")
	fs.IntVar(&c.KeepStarts, "keep-starts", 10,
		"soft size of the best/worst starting word leaderboards")
	fs.StringVar(&c.Strategies, "strategies", "",
		"comma-separated list of strategies to analyze, instead of all")
	fs.BoolVar(&c.SeedDrill, "seed-drill", true,
		"seed the drill deck with unsolved answers after a batch run")
	return fs.Parse(args)
}
