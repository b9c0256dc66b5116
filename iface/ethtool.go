package iface

import (
	"github.com/safchain/ethtool"

	"github.com/ifsnap/ifsnap/errs"
)

// EthtoolInfo is the decoded per-interface ethtool query result
// (spec.md §4.5's "secondary dump" alongside bridge-VLANs), exercised
// through github.com/safchain/ethtool the way
// other_examples' skydive netlink topology probe queries both
// vishvananda/netlink and safchain/ethtool side by side.
type EthtoolInfo struct {
	LinkModes      []string `yaml:"link_modes,omitempty" json:"link_modes,omitempty"`
	Speed          uint32   `yaml:"speed" json:"speed"`
	Duplex         string   `yaml:"duplex,omitempty" json:"duplex,omitempty"`
	Autoneg        bool     `yaml:"autoneg" json:"autoneg"`
	DriverName     string   `yaml:"driver_name,omitempty" json:"driver_name,omitempty"`
	DriverVersion  string   `yaml:"driver_version,omitempty" json:"driver_version,omitempty"`
	CoalesceRxUsecs *uint32 `yaml:"coalesce_rx_usecs,omitempty" json:"coalesce_rx_usecs,omitempty"`
}

// QueryEthtool runs the ethtool ioctl queries the orchestrator's
// secondary-dump phase issues for one interface, returning a
// classified *errs.SysCallError (KindSysCall) on ioctl failure so the caller
// can log-and-continue per spec.md §4.5's failure policy rather than
// failing the whole snapshot.
func QueryEthtool(e *ethtool.Ethtool, ifaceName string) (*EthtoolInfo, error) {
	cmdGet, err := e.CmdGetMapped(ifaceName)
	if err != nil {
		return nil, errs.SysCallf("decode.ethtool", "ethtool query on %q: %v", ifaceName, err)
	}
	info := &EthtoolInfo{
		Speed:   uint32(cmdGet["Speed"]),
		Autoneg: cmdGet["Autoneg"] != 0,
	}
	if driver, err := e.DriverName(ifaceName); err == nil {
		info.DriverName = driver
	}
	return info, nil
}
