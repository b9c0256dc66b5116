package ifconf

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ifsnap/ifsnap/iface"
)

func TestNewLinkVeth(t *testing.T) {
	link, err := newLink(iface.Conf{Name: "veth0", Veth: &iface.VethConf{Peer: "veth1"}})
	assert.NilError(t, err)
	assert.Check(t, link.Attrs().Name == "veth0")
}

func TestNewLinkRequiresKindOrType(t *testing.T) {
	_, err := newLink(iface.Conf{Name: "mystery"})
	assert.Check(t, err != nil)
}

func TestNewLinkUnsupportedType(t *testing.T) {
	_, err := newLink(iface.Conf{Name: "eth9", Type: &iface.TypeVxlan})
	assert.Check(t, err != nil)
}
