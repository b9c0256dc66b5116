package iface

// VethInfo is the decoded peer reference for a veth interface. Peer
// starts as the raw numeric index reported by IFLA_LINK and is
// rewritten to the peer's symbolic name by the resolver, unless
// LinkNetNSID on the owning Iface is set — in which case the peer lives
// in a different namespace and the index is left as-is
// (veth.rs::veth_iface_tidy_up's skip condition).
type VethInfo struct {
	Peer string `yaml:"peer" json:"peer"`
}

// VethConf carries the creation-time parameters for a new veth pair:
// creating either side implicitly creates the other (spec.md §4.6's
// creation-set rule).
type VethConf struct {
	Peer string `yaml:"peer" json:"peer"`
}
