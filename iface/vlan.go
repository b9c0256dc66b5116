package iface

import (
	"strconv"

	"github.com/vishvananda/netlink"
)

// VlanInfo is the decoded IFLA_INFO_DATA for a VLAN interface. BaseIface
// starts as the raw numeric parent-link index and is rewritten to the
// parent's symbolic name by the cross-reference resolver.
type VlanInfo struct {
	VlanID    uint16 `yaml:"vlan_id" json:"vlan_id"`
	Protocol  string `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	BaseIface string `yaml:"base_iface" json:"base_iface"`
}

// VlanConf carries the creation-time parameters for a new VLAN
// interface.
type VlanConf struct {
	VlanID    uint16 `yaml:"vlan_id" json:"vlan_id"`
	BaseIface string `yaml:"base_iface" json:"base_iface"`
}

// DecodeVlan converts a parsed *netlink.Vlan into a VlanInfo. BaseIface
// is left as the stringified parent index; resolution to a name happens
// in the snapshot resolver once the full index->name table exists.
func DecodeVlan(v *netlink.Vlan, parentIndex int) *VlanInfo {
	return &VlanInfo{
		VlanID:    uint16(v.VlanId),
		Protocol:  vlanProtocolName(v.VlanProtocol),
		BaseIface: strconv.Itoa(parentIndex),
	}
}

func vlanProtocolName(p netlink.VlanProtocol) string {
	switch p {
	case netlink.VLAN_PROTOCOL_8021Q:
		return "802.1q"
	case netlink.VLAN_PROTOCOL_8021AD:
		return "802.1ad"
	default:
		return "unknown"
	}
}
