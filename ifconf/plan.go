package ifconf

import (
	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/ipinfo"
)

// OpKind identifies the action one Operation performs.
type OpKind int

const (
	OpCreateLink OpKind = iota
	OpDeleteLink
	OpSetDown
	OpSetUp
	OpSetMAC
	OpSetController
	OpUnsetController
	OpAddAddr
	OpDelAddr
)

func (k OpKind) String() string {
	switch k {
	case OpCreateLink:
		return "create_link"
	case OpDeleteLink:
		return "delete_link"
	case OpSetDown:
		return "set_down"
	case OpSetUp:
		return "set_up"
	case OpSetMAC:
		return "set_mac"
	case OpSetController:
		return "set_controller"
	case OpUnsetController:
		return "unset_controller"
	case OpAddAddr:
		return "add_addr"
	case OpDelAddr:
		return "del_addr"
	default:
		return "unknown"
	}
}

// Operation is one planned step against a single named interface.
// Fields outside the ones relevant to Kind are left zero.
type Operation struct {
	Kind       OpKind
	IfaceName  string
	Conf       *iface.Conf    // OpCreateLink
	MACAddress string         // OpSetMAC
	Controller string         // OpSetController
	Family     int            // OpAddAddr / OpDelAddr: netlink.FAMILY_V4 or FAMILY_V6
	Addr       ipinfo.AddrConf // OpAddAddr / OpDelAddr
}

// Plan is the ordered, phased list of operations Compute produces.
// Phases execute strictly in order. A phase may hold several operations
// for one interface (a MAC change puts set_down, set_mac and set_up in
// Mutation), listed in the order they must run; the Executor walks
// every phase sequentially.
type Plan struct {
	Creation   []Operation
	Deletion   []Operation
	Mutation   []Operation
	Activation []Operation
}

// All concatenates every phase in execution order, for callers (like
// the Executor) that just want to walk the whole plan.
func (p *Plan) All() []Operation {
	out := make([]Operation, 0, len(p.Creation)+len(p.Deletion)+len(p.Mutation)+len(p.Activation))
	out = append(out, p.Creation...)
	out = append(out, p.Deletion...)
	out = append(out, p.Mutation...)
	out = append(out, p.Activation...)
	return out
}
