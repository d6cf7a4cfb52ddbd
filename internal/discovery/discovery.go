// Package discovery finds the robot's own IPv4 address by matching local
// interface addresses against the ROS master's subnet.
//
// Only a 255.255.255.0 mask is supported: an address matches when its first
// three dotted components are textually equal to the master's. When several
// addresses match, the first one in enumeration order wins; that order is
// whatever the platform reports.
package discovery

import (
	"fmt"
	"iiwa-config/internal/models"
	"log/slog"
	"strconv"
	"strings"
)

// Enumerator lists the local network interfaces with their bound addresses.
type Enumerator interface {
	Interfaces() ([]models.Interface, error)
}

// NewEnumerator returns the enumerator registered under name ("net" or "pcap").
func NewEnumerator(name string) (Enumerator, error) {
	switch name {
	case "", "net":
		return NetEnumerator{}, nil
	case "pcap":
		return PcapEnumerator{}, nil
	}
	return nil, fmt.Errorf("unknown interface enumerator %q", name)
}

// SplitQuad splits a dotted-quad IPv4 address into its four components.
func SplitQuad(ip string) ([4]string, error) {
	var quad [4]string
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return quad, fmt.Errorf("%w: %q is not a dotted-quad IPv4 address", models.ErrFormat, ip)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 || strings.TrimLeft(part, "0123456789") != "" {
			return quad, fmt.Errorf("%w: %q is not a dotted-quad IPv4 address", models.ErrFormat, ip)
		}
		quad[i] = part
	}
	return quad, nil
}

// sameSubnet24 reports whether a and b share the first three components.
func sameSubnet24(a, b [4]string) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// Candidates returns every local address on the master's /24, in enumeration
// order. Addresses that are not dotted quads (IPv6) are skipped.
func Candidates(masterIP string, ifaces []models.Interface) ([]models.Candidate, error) {
	master, err := SplitQuad(masterIP)
	if err != nil {
		return nil, err
	}

	var out []models.Candidate
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			local, err := SplitQuad(addr)
			if err != nil {
				continue
			}
			if sameSubnet24(local, master) {
				out = append(out, models.Candidate{Interface: iface.Name, Addr: addr})
			}
		}
	}
	return out, nil
}

// Resolver discovers the robot address using an Enumerator.
type Resolver struct {
	Enumerator Enumerator
	Logger     *slog.Logger
}

// NewResolver creates a Resolver. A nil enumerator means the OS interface table.
func NewResolver(e Enumerator, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if e == nil {
		e = NetEnumerator{Logger: logger}
	}
	return &Resolver{Enumerator: e, Logger: logger}
}

// Discover returns the first local address on the master's /24. A malformed
// master address is an error. A failed enumeration or no match returns
// ok == false and a nil error.
func (r *Resolver) Discover(masterIP string) (ip string, ok bool, err error) {
	log := r.Logger.With(slog.String("component", "discovery"))

	if _, err := SplitQuad(masterIP); err != nil {
		return "", false, err
	}

	ifaces, err := r.Enumerator.Interfaces()
	if err != nil {
		log.Warn("Failed to enumerate network interfaces, robot IP left unset.", "master_ip", masterIP, "error", err)
		return "", false, nil
	}
	log.Debug("Enumerated network interfaces.", "count", len(ifaces))

	candidates, err := Candidates(masterIP, ifaces)
	if err != nil {
		return "", false, err
	}
	if len(candidates) == 0 {
		log.Debug("No local address on the master subnet.", "master_ip", masterIP)
		return "", false, nil
	}

	for i, c := range candidates {
		log.Debug("Subnet match.", "index", i, "interface", c.Interface, "addr", c.Addr)
	}
	if len(candidates) > 1 {
		log.Info("Several local addresses match the master subnet, using the first.",
			"master_ip", masterIP, "selected", candidates[0].Addr, "matches", len(candidates))
	}
	return candidates[0].Addr, true, nil
}
