// Package snapshot assembles a coherent NetState: it issues the
// overlapping netlink dump requests spec.md §4.5 describes, reduces
// them into iface.Iface records, and resolves numeric cross-references
// into symbolic names.
package snapshot

import "github.com/ifsnap/ifsnap/iface"

// NetState is the immutable result of one Retrieve call: every
// interface visible in the handle's namespace, keyed by name.
type NetState struct {
	Ifaces map[string]*iface.Iface
}
