package iface

import "github.com/vishvananda/netlink"

// BondInfo is the decoded IFLA_INFO_DATA for a bond interface.
type BondInfo struct {
	Mode       string   `yaml:"mode" json:"mode"`
	MiiMon     *uint32  `yaml:"miimon,omitempty" json:"miimon,omitempty"`
	UpDelay    *uint32  `yaml:"updelay,omitempty" json:"updelay,omitempty"`
	DownDelay  *uint32  `yaml:"downdelay,omitempty" json:"downdelay,omitempty"`
	Subordinates []string `yaml:"subordinates,omitempty" json:"subordinates,omitempty"`
}

// BondSubordinateInfo is the per-port state a bond reports for one of
// its enslaved links.
type BondSubordinateInfo struct {
	State       string `yaml:"bond_subordinate_state" json:"bond_subordinate_state"`
	MiiStatus   string `yaml:"mii_status" json:"mii_status"`
	LinkFailureCount uint32 `yaml:"link_failure_count" json:"link_failure_count"`
	PermHWAddr  string `yaml:"perm_hwaddr,omitempty" json:"perm_hwaddr,omitempty"`
	QueueID     uint16 `yaml:"queue_id" json:"queue_id"`
}

// DecodeBond converts a parsed *netlink.Bond into a BondInfo.
func DecodeBond(b *netlink.Bond) *BondInfo {
	info := &BondInfo{Mode: bondModeName(b.Mode)}
	if b.Miimon >= 0 {
		v := uint32(b.Miimon)
		info.MiiMon = &v
	}
	if b.UpDelay >= 0 {
		v := uint32(b.UpDelay)
		info.UpDelay = &v
	}
	if b.DownDelay >= 0 {
		v := uint32(b.DownDelay)
		info.DownDelay = &v
	}
	return info
}

func bondModeName(mode netlink.BondMode) string {
	if s := mode.String(); s != "" {
		return s
	}
	return "unknown"
}
