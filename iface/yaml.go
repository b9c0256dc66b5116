package iface

import "encoding/json"

func jsonUnmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }

// This file implements the document (YAML/JSON) marshaling for Type and
// State (ControllerType has none): each is a small closed-ish enum backed by
// unexported fields, so the default struct-field codec would produce
// garbage. Encoding as the plain string spec.md's document format
// expects keeps Conf round-trippable through gopkg.in/yaml.v3 and
// encoding/json alike (both honor MarshalYAML/UnmarshalYAML and
// MarshalJSON/UnmarshalJSON respectively).

var knownTypes = map[string]Type{
	TypeBond.String():        TypeBond,
	TypeVeth.String():        TypeVeth,
	TypeBridge.String():      TypeBridge,
	TypeVlan.String():        TypeVlan,
	TypeDummy.String():       TypeDummy,
	TypeVxlan.String():       TypeVxlan,
	TypeLoopback.String():    TypeLoopback,
	TypeEthernet.String():    TypeEthernet,
	TypeInfiniband.String():  TypeInfiniband,
	TypeVrf.String():         TypeVrf,
	TypeTun.String():         TypeTun,
	TypeMacVlan.String():     TypeMacVlan,
	TypeMacVtap.String():     TypeMacVtap,
	TypeOpenvSwitch.String(): TypeOpenvSwitch,
	TypeIpoib.String():       TypeIpoib,
	TypeUnknown.String():     TypeUnknown,
}

// TypeFromString maps a document string onto a Type, falling back to
// TypeOther for anything not in the known enum.
func TypeFromString(s string) Type {
	if t, ok := knownTypes[s]; ok {
		return t
	}
	return TypeOther(s)
}

func (t Type) MarshalYAML() (any, error)  { return t.String(), nil }
func (t Type) MarshalJSON() ([]byte, error) { return marshalQuoted(t.String()) }

func (t *Type) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*t = TypeFromString(s)
	return nil
}

func (t *Type) UnmarshalJSON(b []byte) error {
	s, err := unmarshalQuoted(b)
	if err != nil {
		return err
	}
	*t = TypeFromString(s)
	return nil
}

var knownStates = map[string]State{
	StateUp.String():             StateUp,
	StateDormant.String():        StateDormant,
	StateDown.String():           StateDown,
	StateLowerLayerDown.String(): StateLowerLayerDown,
	StateAbsent.String():         StateAbsent,
	StateUnknown.String():        StateUnknown,
}

// StateFromString maps a document string onto a State, defaulting to
// DefaultState (StateUp) for an empty string, the way nispor's
// default_iface_state_in_conf does.
func StateFromString(s string) State {
	if s == "" {
		return DefaultState()
	}
	if st, ok := knownStates[s]; ok {
		return st
	}
	return StateOther(s)
}

func (s State) MarshalYAML() (any, error)  { return s.String(), nil }
func (s State) MarshalJSON() ([]byte, error) { return marshalQuoted(s.String()) }

func (s *State) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	*s = StateFromString(str)
	return nil
}

func (s *State) UnmarshalJSON(b []byte) error {
	str, err := unmarshalQuoted(b)
	if err != nil {
		return err
	}
	*s = StateFromString(str)
	return nil
}

func marshalQuoted(s string) ([]byte, error) {
	return []byte(`"` + s + `"`), nil
}

func unmarshalQuoted(b []byte) (string, error) {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		return string(b[1 : len(b)-1]), nil
	}
	return string(b), nil
}

// confAlias has Conf's exact shape without its UnmarshalYAML method, so
// Conf's own implementation below can decode through it and then apply
// the omitted-state default without infinite recursion.
type confAlias Conf

func (c *Conf) UnmarshalYAML(unmarshal func(any) error) error {
	alias := confAlias{}
	if err := unmarshal(&alias); err != nil {
		return err
	}
	*c = Conf(alias)
	if c.State.String() == "" {
		c.State = DefaultState()
	}
	return nil
}

func (c *Conf) UnmarshalJSON(b []byte) error {
	alias := confAlias{}
	if err := jsonUnmarshal(b, &alias); err != nil {
		return err
	}
	*c = Conf(alias)
	if c.State.String() == "" {
		c.State = DefaultState()
	}
	return nil
}
