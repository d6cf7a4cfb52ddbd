//go:build !pcap

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPcapEnumerator_Stub(t *testing.T) {
	_, err := PcapEnumerator{}.Interfaces()
	assert.ErrorContains(t, err, "-tags pcap")
}
