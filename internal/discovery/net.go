package discovery

import (
	"fmt"
	"iiwa-config/internal/models"
	"log/slog"
	"net"
)

// NetEnumerator reads the OS interface table through package net. An
// interface whose addresses cannot be read is logged and left out.
type NetEnumerator struct {
	Logger *slog.Logger
}

var (
	netInterfaces  = net.Interfaces
	interfaceAddrs = func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() }
)

// Interfaces implements Enumerator.
func (e NetEnumerator) Interfaces() ([]models.Interface, error) {
	ifaces, err := netInterfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	out := make([]models.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := interfaceAddrs(iface)
		if err != nil {
			e.logger().Warn("Skipping interface, failed to read its addresses.", "interface", iface.Name, "error", err)
			continue
		}
		entry := models.Interface{Name: iface.Name}
		for _, addr := range addrs {
			if ip := addrIP(addr); ip != nil {
				entry.Addrs = append(entry.Addrs, ip.String())
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (e NetEnumerator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	}
	return nil
}
