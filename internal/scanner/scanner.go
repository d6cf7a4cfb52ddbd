package scanner

import (
	"context"
	"errors"
	"iiwa-config/internal/models"
	"log/slog"
	"net"
	"strconv"
	"time"
)

// Scanner probes a single TCP endpoint.
type Scanner interface {
	Scan(ctx context.Context, ip string, port int) models.ProbeResult
}

// ConnectScanner checks a port with a full TCP three-way handshake.
type ConnectScanner struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewConnectScanner creates a new instance of a ConnectScanner.
func NewConnectScanner(timeout time.Duration, logger *slog.Logger) *ConnectScanner {
	return &ConnectScanner{Timeout: timeout, Logger: logger.With(slog.String("component", "scanner"))}
}

// Scan dials ip:port. A refused connection is CLOSED, a timeout FILTERED.
func (s *ConnectScanner) Scan(ctx context.Context, ip string, port int) models.ProbeResult {
	startTime := time.Now()
	address := net.JoinHostPort(ip, strconv.Itoa(port))
	result := models.ProbeResult{Timestamp: startTime, Kind: "tcp", Target: address}

	s.Logger.Debug("Attempting to dial target", "address", address, "timeout", s.Timeout)

	dialer := net.Dialer{Timeout: s.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	result.Latency = time.Since(startTime)

	if err != nil {
		result.Error = err.Error()
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			result.Status = models.StatusFiltered
			s.Logger.Debug("Target determined filtered (timeout)", "address", address)
		} else {
			result.Status = models.StatusClosed
			s.Logger.Debug("Target determined closed (connection error)", "address", address, "error", err)
		}
		return result
	}
	defer conn.Close()

	if localAddr, ok := conn.LocalAddr().(*net.TCPAddr); ok {
		s.Logger.Debug("Successfully dialed target",
			"source_ip", localAddr.IP.String(),
			"address", address,
			"latency_ms", result.LatencyMS(),
		)
	}
	result.Status = models.StatusOpen
	return result
}
