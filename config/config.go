package config

import (
	"errors"
	"flag"
	"fmt"
	"iiwa-config/internal/logger"
	"io"
	"os"
	"time"
)

// Config holds all command-line settings for the application.
type Config struct {
	ConfigFile     string
	Enumerator     string
	Probe          bool
	Timeout        time.Duration
	OutputFile     string
	Format         string
	LogFile        string
	LogLevel       string
	RequireRobotIP bool
}

// ErrHelp is returned when -h or -help was requested.
var ErrHelp = flag.ErrHelp

// Load parses os.Args and returns a populated Config struct.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:], os.Stderr)
}

// LoadArgs parses args; usage and flag errors are printed to out.
func LoadArgs(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("iiwa-config", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.ConfigFile, "file", "", "Robot config file (key: value lines). Empty uses the bundled config.txt.")
	fs.StringVar(&cfg.Enumerator, "enumerator", "net", "Interface enumerator used for robot IP discovery: 'net' or 'pcap'.")
	fs.BoolVar(&cfg.Probe, "probe", false, "Ping the ROS master and dial its port after loading.")
	timeoutMs := fs.Int("timeout", 1000, "Probe timeout in milliseconds.")
	fs.StringVar(&cfg.OutputFile, "output", "", "File to write the resolved configuration to (default: stdout).")
	fs.StringVar(&cfg.Format, "format", "toml", "Output format: 'toml', 'json' or 'text'.")
	fs.StringVar(&cfg.LogFile, "logfile", "", "Also append logs to this file.")
	fs.StringVar(&cfg.LogLevel, "loglevel", "INFO", "Log level: DEBUG, INFO, WARN, ERROR.")
	fs.BoolVar(&cfg.RequireRobotIP, "require-robot-ip", false, "Fail when the robot IP is neither configured nor discovered.")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
		fmt.Fprintln(out, "Loads the KUKA iiwa robot configuration and resolves the robot IP.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}

	if *timeoutMs <= 0 {
		return nil, fmt.Errorf("-timeout must be a positive integer")
	}
	cfg.Timeout = time.Duration(*timeoutMs) * time.Millisecond

	switch cfg.Enumerator {
	case "net", "pcap":
	default:
		return nil, fmt.Errorf("-enumerator must be either 'net' or 'pcap'")
	}
	switch cfg.Format {
	case "toml", "json", "text":
	default:
		return nil, fmt.Errorf("-format must be one of 'toml', 'json' or 'text'")
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("-loglevel: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, nil
}
