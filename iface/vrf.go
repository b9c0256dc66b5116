package iface

import "github.com/vishvananda/netlink"

// VrfInfo is the decoded IFLA_INFO_DATA for a VRF interface.
type VrfInfo struct {
	TableID      uint32   `yaml:"table_id" json:"table_id"`
	Subordinates []string `yaml:"subordinates,omitempty" json:"subordinates,omitempty"`
}

// VrfSubordinateInfo is the per-port state a VRF reports for one of its
// enslaved links.
type VrfSubordinateInfo struct {
	TableID uint32 `yaml:"table_id" json:"table_id"`
}

// DecodeVrf converts a parsed *netlink.Vrf into a VrfInfo.
func DecodeVrf(v *netlink.Vrf) *VrfInfo {
	return &VrfInfo{TableID: v.Table}
}
