package iface

import "github.com/vishvananda/netlink"

// MacVlanInfo is the decoded IFLA_INFO_DATA for a macvlan interface.
// BaseIface starts as the raw numeric parent index and is rewritten to
// the parent's symbolic name by the resolver.
type MacVlanInfo struct {
	Mode      string `yaml:"mode" json:"mode"`
	BaseIface string `yaml:"base_iface" json:"base_iface"`
}

// MacVtapInfo is the decoded IFLA_INFO_DATA for a macvtap interface.
type MacVtapInfo struct {
	Mode      string `yaml:"mode" json:"mode"`
	BaseIface string `yaml:"base_iface" json:"base_iface"`
}

// DecodeMacVlan converts a parsed *netlink.Macvlan into a MacVlanInfo.
func DecodeMacVlan(m *netlink.Macvlan) *MacVlanInfo {
	return &MacVlanInfo{Mode: macvlanModeName(m.Mode)}
}

// DecodeMacVtap converts a parsed *netlink.Macvlan (netlink.Macvtap
// embeds Macvlan, since the two kinds share every attribute) into a
// MacVtapInfo.
func DecodeMacVtap(m *netlink.Macvlan) *MacVtapInfo {
	return &MacVtapInfo{Mode: macvlanModeName(m.Mode)}
}

func macvlanModeName(mode netlink.MacvlanMode) string {
	switch mode {
	case netlink.MACVLAN_MODE_PRIVATE:
		return "private"
	case netlink.MACVLAN_MODE_VEPA:
		return "vepa"
	case netlink.MACVLAN_MODE_BRIDGE:
		return "bridge"
	case netlink.MACVLAN_MODE_PASSTHRU:
		return "passthru"
	case netlink.MACVLAN_MODE_SOURCE:
		return "source"
	default:
		return "unknown"
	}
}
