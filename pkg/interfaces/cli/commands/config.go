package commands

import (
	"io"
	"os"

	"github.com/vsinha/stockpile/pkg/config"
)

// Config holds configuration shared by the report and trips commands
type Config struct {
	App *config.AppConfig

	OutputFile string
	XLSXFile   string
	Format     string
	Verbose    bool

	Limit    int
	TopItems int
	AllItems bool

	Stdout io.Writer
	Stderr io.Writer
}

func (c Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

func (c Config) app() *config.AppConfig {
	if c.App == nil {
		return config.DefaultConfig()
	}
	return c.App
}
