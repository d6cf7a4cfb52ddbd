//go:build pcap

package discovery

import (
	"fmt"
	"iiwa-config/internal/models"

	"github.com/google/gopacket/pcap"
)

// PcapEnumerator lists capture devices known to libpcap. It sees the same
// addresses as NetEnumerator on most hosts but names devices the way pcap
// tools do, which matters on Windows (\Device\NPF_{...}).
type PcapEnumerator struct{}

var findAllDevs = pcap.FindAllDevs

// Interfaces implements Enumerator.
func (PcapEnumerator) Interfaces() ([]models.Interface, error) {
	devs, err := findAllDevs()
	if err != nil {
		return nil, fmt.Errorf("pcap device list: %w", err)
	}

	out := make([]models.Interface, 0, len(devs))
	for _, dev := range devs {
		entry := models.Interface{Name: dev.Name}
		for _, addr := range dev.Addresses {
			if addr.IP != nil {
				entry.Addrs = append(entry.Addrs, addr.IP.String())
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
