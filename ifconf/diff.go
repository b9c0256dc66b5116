package ifconf

import (
	"sort"

	"github.com/vishvananda/netlink"

	"github.com/ifsnap/ifsnap/errs"
	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/ipinfo"
)

// Compute diffs a desired configuration against a retrieved snapshot
// and returns the ordered Plan that reconciles them, per spec.md §4.6.
func Compute(desired []iface.Conf, current map[string]*iface.Iface) (*Plan, error) {
	byName := make(map[string]iface.Conf, len(desired))
	for _, c := range desired {
		byName[c.Name] = c
	}

	plan := &Plan{}

	creating, err := creationOrder(desired, current)
	if err != nil {
		return nil, err
	}
	for _, c := range creating {
		conf := c
		plan.Creation = append(plan.Creation, Operation{Kind: OpCreateLink, IfaceName: conf.Name, Conf: &conf})
	}

	deleting := deletionOrder(desired, current)
	for _, name := range deleting {
		plan.Deletion = append(plan.Deletion, Operation{Kind: OpDeleteLink, IfaceName: name})
	}

	for _, c := range desired {
		if c.State == iface.StateAbsent {
			continue
		}
		cur, exists := current[c.Name]
		if !exists {
			// Being created this plan; mutation ops for it (address,
			// controller) still apply against the freshly-created link.
			cur = nil
		} else if c.Type != nil && !sameType(cur.Type, *c.Type) {
			return nil, errs.Conflictf("ifconf.diff", "interface %q: desired type %q conflicts with existing type %q",
				c.Name, c.Type.String(), cur.Type.String())
		}

		ops, err := mutationOps(c, cur)
		if err != nil {
			return nil, err
		}
		plan.Mutation = append(plan.Mutation, ops...)

		if c.State == iface.StateUp {
			plan.Activation = append(plan.Activation, Operation{Kind: OpSetUp, IfaceName: c.Name})
		}
	}

	return plan, nil
}

func sameType(a, b iface.Type) bool { return a.String() == b.String() }

// creationOrder returns the desired-but-not-present Conf entries,
// ordered so controllers precede the subordinates naming them, and
// VLANs follow their base interface (spec.md §4.6.1's (a) and (c)).
// Veth pairs only need a single creation entry: creating either side
// implicitly creates its peer (rule (b)), so the peer name is excluded
// from the creation set if it also appears as a separate desired entry.
func creationOrder(desired []iface.Conf, current map[string]*iface.Iface) ([]iface.Conf, error) {
	skip := make(map[string]bool)
	for _, c := range desired {
		if c.State == iface.StateAbsent || skip[c.Name] {
			continue
		}
		if _, exists := current[c.Name]; exists {
			continue
		}
		if c.Veth != nil && c.Veth.Peer != "" {
			skip[c.Veth.Peer] = true
		}
	}
	var toCreate []iface.Conf
	for _, c := range desired {
		if c.State == iface.StateAbsent || skip[c.Name] {
			continue
		}
		if _, exists := current[c.Name]; exists {
			continue
		}
		toCreate = append(toCreate, c)
	}

	indexOf := make(map[string]int, len(toCreate))
	for i, c := range toCreate {
		indexOf[c.Name] = i
	}
	dependsOn := func(c iface.Conf) (string, bool) {
		if c.Vlan != nil && c.Vlan.BaseIface != "" {
			return c.Vlan.BaseIface, true
		}
		if c.Controller != nil {
			return *c.Controller, true
		}
		return "", false
	}

	sort.SliceStable(toCreate, func(i, j int) bool {
		di, iok := dependsOn(toCreate[i])
		_, jok := dependsOn(toCreate[j])
		if iok && indexOf[di] == j {
			return false
		}
		if jok {
			dj, _ := dependsOn(toCreate[j])
			if indexOf[dj] == i {
				return true
			}
		}
		return false
	})

	return toCreate, nil
}

// deletionOrder returns the names whose desired state is absent,
// ordered in reverse of creation order: subordinates before
// controllers, so a controller is never deleted while a subordinate
// entry still names it.
func deletionOrder(desired []iface.Conf, current map[string]*iface.Iface) []string {
	var names []string
	for _, c := range desired {
		if c.State != iface.StateAbsent {
			continue
		}
		if _, exists := current[c.Name]; !exists {
			continue
		}
		names = append(names, c.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ci, cj := current[names[i]], current[names[j]]
		iSub := ci.Controller != nil
		jSub := cj.Controller != nil
		return iSub && !jSub
	})
	return names
}

// mutationOps computes the minimal per-interface operations: the MAC
// change down->set-mac->restore triplet, address deltas, and
// controller detach-then-attach, per spec.md §4.6.3.
func mutationOps(c iface.Conf, cur *iface.Iface) ([]Operation, error) {
	var ops []Operation

	if c.MACAddress != nil && cur != nil && cur.MACAddress != *c.MACAddress {
		wasUp := cur.State == iface.StateUp
		ops = append(ops, Operation{Kind: OpSetDown, IfaceName: c.Name})
		ops = append(ops, Operation{Kind: OpSetMAC, IfaceName: c.Name, MACAddress: *c.MACAddress})
		if wasUp {
			ops = append(ops, Operation{Kind: OpSetUp, IfaceName: c.Name})
		}
	}

	if c.Controller != nil {
		curController := ""
		if cur != nil && cur.Controller != nil {
			curController = *cur.Controller
		}
		if curController != *c.Controller {
			if curController != "" {
				ops = append(ops, Operation{Kind: OpUnsetController, IfaceName: c.Name})
			}
			if *c.Controller != "" {
				ops = append(ops, Operation{Kind: OpSetController, IfaceName: c.Name, Controller: *c.Controller})
			}
		}
	}

	ops = append(ops, addrOps(c.Name, netlink.FAMILY_V4, c.IPv4, ipv4Current(cur))...)
	ops = append(ops, addrOps(c.Name, netlink.FAMILY_V6, c.IPv6, ipv6Current(cur))...)

	return ops, nil
}

func ipv4Current(cur *iface.Iface) []ipinfo.AddrInfoV4 {
	if cur == nil || cur.IPv4 == nil {
		return nil
	}
	return cur.IPv4.Addresses
}

func ipv6Current(cur *iface.Iface) []ipinfo.AddrInfoV6 {
	if cur == nil || cur.IPv6 == nil {
		return nil
	}
	return cur.IPv6.Addresses
}

// addrOps computes the address-family delta for one interface: desired
// entries flagged remove:true that are currently present become
// OpDelAddr; every desired entry not flagged remove becomes OpAddAddr
// (an add/update — the executor issues it as an add-or-replace, so an
// address that is already present is updated in place, lifetimes
// refreshed, with no removal first, per spec.md §4.6.3).
func addrOps[T addrLike](ifaceName string, family int, conf *ipinfo.IPConf, current []T) []Operation {
	if conf == nil {
		return nil
	}
	currentByAddr := make(map[string]T, len(current))
	for _, a := range current {
		currentByAddr[addrKey(a)] = a
	}

	var ops []Operation
	for _, desired := range conf.Addresses {
		key := desired.Address
		_, exists := currentByAddr[key]
		if desired.Remove {
			if exists {
				ops = append(ops, Operation{Kind: OpDelAddr, IfaceName: ifaceName, Family: family, Addr: desired})
			}
			continue
		}
		ops = append(ops, Operation{Kind: OpAddAddr, IfaceName: ifaceName, Family: family, Addr: desired})
	}
	return ops
}

type addrLike interface {
	ipinfo.AddrInfoV4 | ipinfo.AddrInfoV6
}

func addrKey[T addrLike](a T) string {
	switch v := any(a).(type) {
	case ipinfo.AddrInfoV4:
		return v.Address
	case ipinfo.AddrInfoV6:
		return v.Address
	default:
		return ""
	}
}
