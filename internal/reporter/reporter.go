package reporter

import (
	"encoding/json"
	"fmt"
	"iiwa-config/internal/models"
	"iiwa-config/internal/parser"
	"io"
	"log/slog"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Supported output formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatText = "text"
)

// Report is the resolved configuration together with optional probe results.
type Report struct {
	Configuration models.Summary       `json:"configuration" toml:"configuration"`
	Probes        []models.ProbeResult `json:"probes,omitempty" toml:"probe,omitempty"`
}

// New builds a Report for cfg.
func New(cfg models.Configuration, probes ...models.ProbeResult) Report {
	return Report{Configuration: cfg.Summary(), Probes: probes}
}

// Reporter writes reports in one format.
type Reporter struct {
	format string
	logger *slog.Logger
}

// NewReporter creates a Reporter for format (toml, json or text).
func NewReporter(format string, logger *slog.Logger) (*Reporter, error) {
	switch format {
	case FormatTOML, FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Reporter{format: format, logger: logger.With(slog.String("component", "reporter"))}, nil
}

// Write encodes r to w. The text format is the config file line format, so it
// can be fed back to the parser; probe results are not part of it.
func (rp *Reporter) Write(w io.Writer, r Report) error {
	var err error
	switch rp.format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatText:
		err = parser.Format(w, textLines(r.Configuration))
		if len(r.Probes) > 0 {
			rp.logger.Debug("Probe results are omitted from text output.", "count", len(r.Probes))
		}
	}
	if err != nil {
		return fmt.Errorf("write %s report: %w", rp.format, err)
	}
	rp.logger.Debug("Report written.", "format", rp.format, "probes", len(r.Probes))
	return nil
}

func textLines(s models.Summary) parser.RawConfig {
	raw := parser.RawConfig{
		"robot_name":    s.RobotName,
		"master_ip":     s.MasterIP,
		"master_port":   strconv.Itoa(s.MasterPort),
		"ntp_with_host": strconv.FormatBool(s.NTPWithHost),
	}
	if s.RobotIP != "" {
		raw["robot_ip"] = s.RobotIP
	}
	return raw
}
