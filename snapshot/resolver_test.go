package snapshot

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/ifsnap/ifsnap/iface"
)

func TestResolveVethPeerRewrittenToName(t *testing.T) {
	ifaces := map[string]*iface.Iface{
		"veth0": {Name: "veth0", Index: 5, Veth: &iface.VethInfo{Peer: "6"}},
		"veth1": {Name: "veth1", Index: 6, Veth: &iface.VethInfo{Peer: "5"}},
	}
	Resolve(ifaces)
	assert.Check(t, is.Equal(ifaces["veth0"].Veth.Peer, "veth1"))
	assert.Check(t, is.Equal(ifaces["veth1"].Veth.Peer, "veth0"))
}

func TestResolveVethPeerSkippedWhenNetNSIDSet(t *testing.T) {
	nsid := int32(0)
	ifaces := map[string]*iface.Iface{
		"veth0": {
			Name:        "veth0",
			Index:       5,
			Veth:        &iface.VethInfo{Peer: "6"},
			LinkNetNSID: &nsid,
		},
	}
	Resolve(ifaces)
	assert.Check(t, is.Equal(ifaces["veth0"].Veth.Peer, "6"))
}

func TestResolveControllerNameUnresolvedIndexLeftRaw(t *testing.T) {
	ifaces := map[string]*iface.Iface{
		"eth0": {Name: "eth0", Index: 2, Controller: strPtr("99")},
	}
	Resolve(ifaces)
	assert.Check(t, is.Equal(*ifaces["eth0"].Controller, "99"))
}

func TestResolveBridgeBackRefs(t *testing.T) {
	ifaces := map[string]*iface.Iface{
		"br0":  {Name: "br0", Index: 1, Type: iface.TypeBridge, Bridge: &iface.BridgeInfo{}},
		"eth0": {Name: "eth0", Index: 2, Type: iface.TypeEthernet, Controller: strPtr("1")},
	}
	Resolve(ifaces)
	assert.Check(t, is.Equal(*ifaces["eth0"].Controller, "br0"))
	assert.Check(t, ifaces["eth0"].ControllerType != nil)
	assert.Check(t, is.Equal(*ifaces["eth0"].ControllerType, iface.ControllerBridge))
	assert.Check(t, ifaces["eth0"].BridgePort != nil)
	assert.Check(t, is.Contains(ifaces["br0"].Bridge.Subordinates, "eth0"))
}

func strPtr(s string) *string { return &s }
