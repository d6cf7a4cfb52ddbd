package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfiguration(t *testing.T) {
	cfg := NewConfiguration("iiwa", "192.168.1.23", "192.168.1.50", 11311, true)

	assert.Equal(t, "http://192.168.1.50:11311", cfg.MasterURI())
	assert.Equal(t, "robot_name=iiwa robot_ip=192.168.1.23 master_ip=192.168.1.50 master_port=11311 ntp_with_host=true", cfg.String())
	assert.Equal(t, Summary{
		RobotName:   "iiwa",
		RobotIP:     "192.168.1.23",
		MasterIP:    "192.168.1.50",
		MasterPort:  11311,
		NTPWithHost: true,
	}, cfg.Summary())
}

func TestConfiguration_NoRobotIP(t *testing.T) {
	cfg := NewConfiguration("iiwa", "", "192.168.1.50", 11311, false)

	ip, ok := cfg.RobotIP()
	assert.False(t, ok)
	assert.Empty(t, ip)
	assert.Contains(t, cfg.String(), "robot_ip=<none>")
}

func TestProbeResult_LatencyMS(t *testing.T) {
	assert.InDelta(t, 1.5, ProbeResult{Latency: 1500000}.LatencyMS(), 1e-9)
}
