package models

import (
	"fmt"
	"time"
)

// Configuration is the resolved robot configuration handed to the robot driver.
// All fields are unexported so a constructed value cannot change; it is safe
// to share between goroutines without locking.
type Configuration struct {
	robotName   string
	robotIP     string
	hasRobotIP  bool
	masterIP    string
	masterPort  int
	ntpWithHost bool
}

// NewConfiguration builds a Configuration. An empty robotIP means the robot
// address could not be determined.
func NewConfiguration(robotName, robotIP, masterIP string, masterPort int, ntpWithHost bool) Configuration {
	return Configuration{
		robotName:   robotName,
		robotIP:     robotIP,
		hasRobotIP:  robotIP != "",
		masterIP:    masterIP,
		masterPort:  masterPort,
		ntpWithHost: ntpWithHost,
	}
}

func (c Configuration) RobotName() string { return c.robotName }

// RobotIP returns the robot address and whether one is known.
func (c Configuration) RobotIP() (string, bool) { return c.robotIP, c.hasRobotIP }

func (c Configuration) MasterIP() string { return c.masterIP }

func (c Configuration) MasterPort() int { return c.masterPort }

func (c Configuration) NTPWithHost() bool { return c.ntpWithHost }

// MasterURI returns the ROS master URI, e.g. http://192.168.1.50:11311.
func (c Configuration) MasterURI() string {
	return fmt.Sprintf("http://%s:%d", c.masterIP, c.masterPort)
}

func (c Configuration) String() string {
	robotIP := "<none>"
	if c.hasRobotIP {
		robotIP = c.robotIP
	}
	return fmt.Sprintf("robot_name=%s robot_ip=%s master_ip=%s master_port=%d ntp_with_host=%t",
		c.robotName, robotIP, c.masterIP, c.masterPort, c.ntpWithHost)
}

// Summary is a serializable snapshot of a Configuration.
type Summary struct {
	RobotName   string `json:"robot_name" toml:"robot_name"`
	RobotIP     string `json:"robot_ip,omitempty" toml:"robot_ip,omitempty"`
	MasterIP    string `json:"master_ip" toml:"master_ip"`
	MasterPort  int    `json:"master_port" toml:"master_port"`
	NTPWithHost bool   `json:"ntp_with_host" toml:"ntp_with_host"`
}

// Summary converts the configuration into its serializable form.
func (c Configuration) Summary() Summary {
	return Summary{
		RobotName:   c.robotName,
		RobotIP:     c.robotIP,
		MasterIP:    c.masterIP,
		MasterPort:  c.masterPort,
		NTPWithHost: c.ntpWithHost,
	}
}

// Interface is one local network interface and the addresses bound to it,
// in textual form without prefix length.
type Interface struct {
	Name  string
	Addrs []string
}

// Candidate is a local address that shares the master's /24 subnet.
type Candidate struct {
	Interface string
	Addr      string
}

// ProbeStatus represents the result of a reachability probe.
type ProbeStatus string

const (
	StatusOpen        ProbeStatus = "OPEN"
	StatusClosed      ProbeStatus = "CLOSED"
	StatusFiltered    ProbeStatus = "FILTERED"
	StatusReachable   ProbeStatus = "REACHABLE"
	StatusUnreachable ProbeStatus = "UNREACHABLE"
	StatusError       ProbeStatus = "ERROR"
)

// ProbeResult holds the outcome of a single probe of the master host.
type ProbeResult struct {
	Timestamp time.Time     `json:"timestamp" toml:"timestamp"`
	Kind      string        `json:"kind" toml:"kind"`
	Target    string        `json:"target" toml:"target"`
	Status    ProbeStatus   `json:"status" toml:"status"`
	Latency   time.Duration `json:"latency" toml:"latency"`
	Error     string        `json:"error,omitempty" toml:"error,omitempty"`
}

// LatencyMS returns the probe latency in milliseconds.
func (r ProbeResult) LatencyMS() float64 {
	return r.Latency.Seconds() * 1000
}
