// Package provider builds the robot Configuration from a config stream.
//
// The pipeline is Parse (key/value lines) then Build (typed decode, checks,
// and robot address discovery when robot_ip is not given). Every fatal
// condition is one of the models sentinel errors; a failed discovery is not
// fatal and leaves the robot IP unset.
package provider

import (
	_ "embed"
	"fmt"
	"iiwa-config/internal/discovery"
	"iiwa-config/internal/models"
	"iiwa-config/internal/parser"
	"io"
	"log/slog"
	"os"
	"strings"
)

//go:embed config.txt
var defaultConfig string

// Settings is the typed view of the config file keys.
type Settings struct {
	RobotName   string `kv:"robot_name"`
	MasterIP    string `kv:"master_ip"`
	MasterPort  int    `kv:"master_port"`
	RobotIP     string `kv:"robot_ip,optional"`
	NTPWithHost bool   `kv:"ntp_with_host"`
}

// AddressDiscoverer finds the robot address on the master's subnet.
type AddressDiscoverer interface {
	Discover(masterIP string) (ip string, ok bool, err error)
}

// Builder turns parsed config into a Configuration.
type Builder struct {
	Discoverer AddressDiscoverer
	Logger     *slog.Logger
}

// New creates a Builder that discovers addresses with e. A nil e uses the OS
// interface table.
func New(e discovery.Enumerator, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Discoverer: discovery.NewResolver(e, logger), Logger: logger}
}

// Build validates raw and resolves the robot address.
func (b *Builder) Build(raw parser.RawConfig) (models.Configuration, error) {
	log := b.Logger.With(slog.String("component", "provider"))

	var s Settings
	if err := parser.Decode(raw, &s); err != nil {
		return models.Configuration{}, err
	}
	if s.MasterPort < 1 || s.MasterPort > 65535 {
		return models.Configuration{}, fmt.Errorf("%w: master_port %d out of range", models.ErrFormat, s.MasterPort)
	}
	if _, err := discovery.SplitQuad(s.MasterIP); err != nil {
		return models.Configuration{}, fmt.Errorf("master_ip: %w", err)
	}

	robotIP := s.RobotIP
	if robotIP == "" {
		ip, ok, err := b.Discoverer.Discover(s.MasterIP)
		if err != nil {
			return models.Configuration{}, fmt.Errorf("discover robot ip: %w", err)
		}
		if ok {
			log.Info("Discovered robot IP.", "robot_ip", ip, "master_ip", s.MasterIP)
			robotIP = ip
		} else {
			log.Warn("Robot IP not configured and not discovered.", "master_ip", s.MasterIP)
		}
	} else {
		log.Debug("Using configured robot IP.", "robot_ip", robotIP)
	}

	return models.NewConfiguration(s.RobotName, robotIP, s.MasterIP, s.MasterPort, s.NTPWithHost), nil
}

// Create parses r and builds the Configuration. The caller closes r. Only an
// untyped nil r is ErrNullInput; a typed nil such as (*os.File)(nil) fails
// on first read with ErrIO.
func (b *Builder) Create(r io.Reader) (models.Configuration, error) {
	if r == nil {
		return models.Configuration{}, models.ErrNullInput
	}
	raw, err := parser.Parse(r)
	if err != nil {
		return models.Configuration{}, err
	}
	return b.Build(raw)
}

// CreateFromFile opens path and builds the Configuration from it.
func (b *Builder) CreateFromFile(path string) (models.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("%w: open %s: %w", models.ErrIO, path, err)
	}
	defer f.Close()
	return b.Create(f)
}

// CreateFromDefault builds the Configuration from the bundled config.txt.
func (b *Builder) CreateFromDefault() (models.Configuration, error) {
	return b.Create(strings.NewReader(defaultConfig))
}
