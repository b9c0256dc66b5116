package ifconf

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/ifsnap/ifsnap/iface"
)

const addIPConf = `---
ifaces:
  - name: veth1
    ipv4:
      addresses:
        - address: "192.0.2.1"
          prefix_len: 24
    ipv6:
      addresses:
        - address: "2001:db8:a::9"
          prefix_len: 64
`

const addDynamicIPConf = `---
ifaces:
  - name: veth1
    ipv4:
      addresses:
        - address: "192.0.2.1"
          prefix_len: 24
          valid_lft: 120sec
          preferred_lft: 60sec
`

func TestDecodeYAMLAddIPConf(t *testing.T) {
	conf, err := DecodeYAML([]byte(addIPConf))
	assert.NilError(t, err)
	assert.Check(t, is.Len(conf.Ifaces, 1))
	e := conf.Ifaces[0]
	assert.Check(t, is.Equal(e.Name, "veth1"))
	assert.Check(t, is.Equal(e.State, iface.StateUp))
	assert.Check(t, e.IPv4 != nil)
	assert.Check(t, is.Equal(e.IPv4.Addresses[0].Address, "192.0.2.1"))
	assert.Check(t, is.Equal(e.IPv4.Addresses[0].PrefixLen, uint8(24)))
	assert.Check(t, e.IPv6 != nil)
	assert.Check(t, is.Equal(e.IPv6.Addresses[0].Address, "2001:db8:a::9"))
}

func TestDecodeYAMLDynamicLifetime(t *testing.T) {
	conf, err := DecodeYAML([]byte(addDynamicIPConf))
	assert.NilError(t, err)
	a := conf.Ifaces[0].IPv4.Addresses[0]
	assert.Check(t, a.ValidLft != nil)
	secs, ok := a.ValidLft.SecondsRemaining()
	assert.Check(t, ok)
	assert.Check(t, is.Equal(secs, uint32(120)))
}

func TestDecodeYAMLDefaultStateIsUp(t *testing.T) {
	conf, err := DecodeYAML([]byte("ifaces:\n  - name: eth0\n"))
	assert.NilError(t, err)
	assert.Check(t, is.Equal(conf.Ifaces[0].State, iface.StateUp))
}

func TestDecodeYAMLAbsentState(t *testing.T) {
	conf, err := DecodeYAML([]byte("ifaces:\n  - name: eth0\n    state: absent\n"))
	assert.NilError(t, err)
	assert.Check(t, is.Equal(conf.Ifaces[0].State, iface.StateAbsent))
}
