package ifconf

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/nlhandle"
	"github.com/ifsnap/ifsnap/snapshot"
)

var log = logrus.WithField("component", "ifconf")

// Applier glues the snapshot retriever, the planner, and the executor
// behind the single Apply call NetConf.Apply exposes.
type Applier struct {
	Handle *nlhandle.Handle
}

// Apply retrieves the current state, computes a Plan against conf, and
// executes it. It returns the first execution error, if any; the
// snapshot used for planning is not re-retrieved afterward, so a
// caller who needs the post-apply state should call snapshot.Retrieve
// again themselves (spec.md §4.7).
func (a *Applier) Apply(conf NetConf) error {
	state, err := snapshot.Retrieve(context.Background(), a.Handle)
	if err != nil {
		return err
	}
	plan, err := Compute(conf.Ifaces, state.Ifaces)
	if err != nil {
		return err
	}
	_, err = (&Executor{Handle: a.Handle}).Execute(plan)
	return err
}

// ApplyIface is the deprecated single-interface shim nispor's
// IfaceConf::apply() represents: ifsnap keeps it for call-surface
// parity with NetConf.Apply, delegating to the same Compute+Execute
// path with a one-element interface set.
func (a *Applier) ApplyIface(conf iface.Conf) error {
	log.Warn("ApplyIface is deprecated, use NetConf.Apply instead")
	return a.Apply(NetConf{Ifaces: []iface.Conf{conf}})
}
