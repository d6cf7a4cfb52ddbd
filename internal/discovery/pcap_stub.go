//go:build !pcap

package discovery

import (
	"errors"
	"iiwa-config/internal/models"
)

// PcapEnumerator is unavailable in builds without the pcap tag; libpcap
// headers are needed at build time.
type PcapEnumerator struct{}

// Interfaces always fails so discovery degrades to no match.
func (PcapEnumerator) Interfaces() ([]models.Interface, error) {
	return nil, errors.New("built without pcap support (rebuild with -tags pcap)")
}
