package iface

import "github.com/vishvananda/netlink"

// VxlanInfo is the decoded IFLA_INFO_DATA for a VXLAN interface.
type VxlanInfo struct {
	VxlanID   int    `yaml:"vxlan_id" json:"vxlan_id"`
	BaseIface string `yaml:"base_iface,omitempty" json:"base_iface,omitempty"`
	Local     string `yaml:"local,omitempty" json:"local,omitempty"`
	Remote    string `yaml:"remote,omitempty" json:"remote,omitempty"`
	TTL       uint8  `yaml:"ttl" json:"ttl"`
	DstPort   int    `yaml:"dst_port" json:"dst_port"`
	Learning  bool   `yaml:"learning" json:"learning"`
}

// DecodeVxlan converts a parsed *netlink.Vxlan into a VxlanInfo.
func DecodeVxlan(v *netlink.Vxlan) *VxlanInfo {
	info := &VxlanInfo{
		VxlanID:  v.VxlanId,
		TTL:      uint8(v.TTL),
		DstPort:  v.Port,
		Learning: v.Learning,
	}
	if v.SrcAddr != nil {
		info.Local = v.SrcAddr.String()
	}
	if v.Group != nil {
		info.Remote = v.Group.String()
	}
	if v.VtepDevIndex != 0 {
		info.BaseIface = itoaIndex(v.VtepDevIndex)
	}
	return info
}
