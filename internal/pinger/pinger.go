package pinger

import (
	"context"
	"errors"
	"iiwa-config/internal/models"
	"iiwa-config/pkg/utils"
	"log/slog"
	"time"

	"github.com/go-ping/ping"
)

// errNoReply is returned when the echo request went out but nothing came back.
var errNoReply = errors.New("no echo reply")

// pingHostFunc is a package-level variable that defaults to the ICMP Ping.
var pingHostFunc = Ping

// Probe sends a single echo request to host and reports whether it answered
// within timeout.
func Probe(ctx context.Context, host string, timeout time.Duration, parentLogger *slog.Logger) models.ProbeResult {
	log := parentLogger.With(slog.String("component", "pinger"))
	result := models.ProbeResult{Timestamp: time.Now(), Kind: "icmp", Target: host}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rtt, err := pingHostFunc(pingCtx, host)
	switch {
	case err == nil:
		result.Status = models.StatusReachable
		result.Latency = rtt
		log.Debug("Host is reachable.", "host", host, "rtt", rtt)
	case errors.Is(err, errNoReply), errors.Is(err, context.DeadlineExceeded):
		result.Status = models.StatusUnreachable
		result.Latency = time.Since(result.Timestamp)
		log.Debug("Host is unreachable or timed out.", "host", host, "error", err)
	default:
		result.Status = models.StatusError
		result.Error = err.Error()
		log.Warn("Ping failed.", "host", host, "error", err)
	}
	return result
}

// Ping sends one ICMP echo to host and returns the round-trip time. Raw ICMP
// is used when the process is privileged, UDP ping sockets otherwise.
func Ping(ctx context.Context, host string) (time.Duration, error) {
	p, err := ping.NewPinger(host)
	if err != nil {
		return 0, err
	}
	p.Count = 1
	p.SetPrivileged(utils.Privileged())
	if deadline, ok := ctx.Deadline(); ok {
		p.Timeout = time.Until(deadline)
	}

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	select {
	case err := <-done:
		if err != nil {
			return 0, err
		}
	case <-ctx.Done():
		p.Stop()
		<-done
		return 0, ctx.Err()
	}

	stats := p.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, errNoReply
	}
	return stats.AvgRtt, nil
}
