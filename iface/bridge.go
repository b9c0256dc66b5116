package iface

import "github.com/vishvananda/netlink"

// BridgeInfo is the decoded IFLA_INFO_DATA for a bridge interface.
type BridgeInfo struct {
	VlanFiltering bool    `yaml:"vlan_filtering" json:"vlan_filtering"`
	VlanDefaultPVID *uint16 `yaml:"vlan_default_pvid,omitempty" json:"vlan_default_pvid,omitempty"`
	AgeingTime  *uint32 `yaml:"ageing_time,omitempty" json:"ageing_time,omitempty"`
	HelloTime   *uint32 `yaml:"hello_time,omitempty" json:"hello_time,omitempty"`
	StpState    *uint32 `yaml:"stp_state,omitempty" json:"stp_state,omitempty"`
	Subordinates []string `yaml:"subordinates,omitempty" json:"subordinates,omitempty"`
}

// BridgePortInfo is the per-port state a bridge reports for one of its
// enslaved links.
type BridgePortInfo struct {
	StpState  *uint8         `yaml:"stp_state,omitempty" json:"stp_state,omitempty"`
	Priority  *uint16        `yaml:"priority,omitempty" json:"priority,omitempty"`
	Cost      *uint32        `yaml:"cost,omitempty" json:"cost,omitempty"`
	Vlans     []BridgeVlan   `yaml:"vlans,omitempty" json:"vlans,omitempty"`
}

// BridgeVlan is one VLAN tag membership entry of a bridge port. Retrieve
// issues no bridge-VLAN dump, so BridgePortInfo.Vlans is never filled.
type BridgeVlan struct {
	VID     uint16 `yaml:"vid" json:"vid"`
	PVID    bool   `yaml:"pvid" json:"pvid"`
	Untagged bool  `yaml:"untagged" json:"untagged"`
}

// BridgeConf carries the creation-time parameters for a new bridge
// interface (spec.md §6's "bridge" kind-specific creation params).
type BridgeConf struct {
	VlanFiltering *bool `yaml:"vlan_filtering,omitempty" json:"vlan_filtering,omitempty"`
}

// DecodeBridge converts a parsed *netlink.Bridge into a BridgeInfo.
func DecodeBridge(b *netlink.Bridge) *BridgeInfo {
	info := &BridgeInfo{}
	if b.VlanFiltering != nil {
		info.VlanFiltering = *b.VlanFiltering
	}
	if b.AgeingTime != nil {
		info.AgeingTime = b.AgeingTime
	}
	if b.HelloTime != nil {
		info.HelloTime = b.HelloTime
	}
	return info
}
