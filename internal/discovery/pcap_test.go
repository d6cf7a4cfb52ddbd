//go:build pcap

package discovery

import (
	"errors"
	"iiwa-config/internal/models"
	"net"
	"testing"

	"github.com/google/gopacket/pcap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPcapEnumerator_Interfaces(t *testing.T) {
	original := findAllDevs
	defer func() { findAllDevs = original }()

	findAllDevs = func() ([]pcap.Interface, error) {
		return []pcap.Interface{
			{Name: "lo", Addresses: []pcap.InterfaceAddress{{IP: net.ParseIP("127.0.0.1")}}},
			{Name: "any"},
			{Name: "eth0", Addresses: []pcap.InterfaceAddress{
				{IP: net.ParseIP("192.168.1.23"), Netmask: net.CIDRMask(24, 32)},
				{IP: nil},
			}},
		}, nil
	}

	got, err := PcapEnumerator{}.Interfaces()
	require.NoError(t, err)
	assert.Equal(t, []models.Interface{
		{Name: "lo", Addrs: []string{"127.0.0.1"}},
		{Name: "any"},
		{Name: "eth0", Addrs: []string{"192.168.1.23"}},
	}, got)
}

func TestPcapEnumerator_Failure(t *testing.T) {
	original := findAllDevs
	defer func() { findAllDevs = original }()

	findAllDevs = func() ([]pcap.Interface, error) {
		return nil, errors.New("no libpcap")
	}

	_, err := PcapEnumerator{}.Interfaces()
	assert.ErrorContains(t, err, "no libpcap")
}
