// Package ifconf implements spec.md §4.6/§4.7: diffing a desired
// NetConf document against a retrieved snapshot, planning the ordered
// operations that reconcile them, and executing that plan through a
// nlhandle.Handle.
package ifconf

import (
	"github.com/ifsnap/ifsnap/iface"
)

// NetConf is the top-level desired-configuration document (spec.md §6):
// a flat list of per-interface entries, decoded from YAML or JSON.
type NetConf struct {
	Ifaces []iface.Conf `yaml:"ifaces" json:"ifaces"`
}

// Apply plans and executes conf against the state snapshot retriever
// and handle supplied by apply.go's Applier, returning once every
// operation in the plan has been issued (or the first failure aborts
// the remainder, per spec.md §4.7).
func (c NetConf) Apply(a *Applier) error {
	return a.Apply(c)
}
