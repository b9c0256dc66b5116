package snapshot

import (
	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/sysfsnet"
)

// tidyUpSriov fills each PF's VfInfo.IfaceName from sysfs, then copies
// each named VF's VfInfo onto the VF's own Iface record as a
// back-reference, exactly as sriov.rs::sriov_vf_iface_tidy_up does: a
// first pass collects every VF by resolved interface name, a second
// pass writes SriovVF on the matching record.
func tidyUpSriov(ifaces map[string]*iface.Iface) {
	vfByName := make(map[string]iface.VfInfo)

	for _, rec := range ifaces {
		if rec.Sriov == nil {
			continue
		}
		for i := range rec.Sriov.VFs {
			vf := &rec.Sriov.VFs[i]
			if name := sysfsnet.VFIfaceName(rec.Name, vf.ID); name != "" {
				vf.IfaceName = &name
				vfByName[name] = *vf
			}
		}
	}

	for name, vf := range vfByName {
		if vfIface, ok := ifaces[name]; ok {
			v := vf
			vfIface.SriovVF = &v
		}
	}
}
