// Package sysfsnet reads the sysfs paths the kernel does not expose over
// netlink: today, only the SR-IOV PF->VF interface-name mapping
// (sriov.rs's get_vf_iface_name, since "there is no valid netlink way
// to get information as the kernel code is in at PCI level").
package sysfsnet

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "sysfsnet")

// VFIfaceName returns the interface name sysfs reports for virtual
// function vfID of physical function pfName, or "" if the directory is
// missing or empty (tolerant of the lookup failing: a PF with driver
// support gaps, or a VF not yet bound to a driver, should not abort the
// snapshot).
func VFIfaceName(pfName string, vfID uint32) string {
	path := fmt.Sprintf("/sys/class/net/%s/device/virtfn%d/net/", pfName, vfID)
	entries, err := os.ReadDir(path)
	if err != nil {
		log.WithError(err).Debugf("no sysfs VF net dir for %s virtfn%d", pfName, vfID)
		return ""
	}
	if len(entries) == 0 {
		return ""
	}
	// The kernel exposes exactly one child directory per bound VF net
	// device; take the last entry the way read_folder's pop() does.
	return entries[len(entries)-1].Name()
}
