// Package errs implements ifsnap's error taxonomy: a small set of kinds
// (ProtocolParse, SysCall, Conflict, NotFound, Bug) that every public
// operation surfaces instead of ad-hoc error strings, so that callers can
// classify failures with errors.As, errors.Is, or the errdefs predicates.
//
// Each kind is backed by its own unexported type so that it implements
// exactly one errdefs marker interface, the way the teacher's
// libnetwork error types (ActiveContainerError, ErrNoSuchNetwork, ...) each
// implement a single cerrdefs marker rather than branching on a field.
package errs

import "fmt"

// Kind identifies which taxonomy bucket an error belongs to.
type Kind int

const (
	// KindProtocolParse means a netlink attribute had an unexpected
	// length or an out-of-range enumerated value.
	KindProtocolParse Kind = iota
	// KindSysCall means the kernel rejected a netlink request.
	KindSysCall
	// KindConflict means the desired configuration is internally
	// inconsistent.
	KindConflict
	// KindNotFound means an operation targets an interface that does
	// not exist and cannot be created.
	KindNotFound
	// KindBug means an internal invariant was violated.
	KindBug
)

func (k Kind) String() string {
	switch k {
	case KindProtocolParse:
		return "protocol_parse"
	case KindSysCall:
		return "syscall"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindBug:
		return "bug"
	default:
		return "unknown"
	}
}

// base carries the fields common to every taxonomy error. Op names the
// component or operation that raised it (e.g. "decode.bond", "plan.diff",
// "exec.linkadd"), matching the teacher's convention of naming the failing
// operation in the message.
type base struct {
	kind Kind
	op   string
	err  error
}

func (b *base) Error() string {
	if b.op == "" {
		return fmt.Sprintf("%s: %v", b.kind, b.err)
	}
	return fmt.Sprintf("%s: %s: %v", b.kind, b.op, b.err)
}

func (b *base) Unwrap() error { return b.err }

// Kind returns the taxonomy bucket for any error produced by this package.
func (b *base) Kind() Kind { return b.kind }

func newBase(kind Kind, op, format string, args ...any) base {
	return base{kind: kind, op: op, err: fmt.Errorf(format, args...)}
}

// ProtocolParseError reports a malformed or out-of-range netlink attribute.
type ProtocolParseError struct{ base }

// InvalidArgument marks ProtocolParseError for errdefs.IsInvalidArgument.
func (*ProtocolParseError) InvalidArgument() {}

// ProtocolParsef constructs a ProtocolParseError.
func ProtocolParsef(op, format string, args ...any) *ProtocolParseError {
	return &ProtocolParseError{newBase(KindProtocolParse, op, format, args...)}
}

// SysCallError reports a netlink request the kernel rejected.
type SysCallError struct{ base }

// Unknown marks SysCallError for errdefs.IsUnknown: the kernel's rejection
// reason does not map cleanly onto any more specific gRPC-style code.
func (*SysCallError) Unknown() {}

// SysCallf constructs a SysCallError.
func SysCallf(op, format string, args ...any) *SysCallError {
	return &SysCallError{newBase(KindSysCall, op, format, args...)}
}

// ConflictError reports an internally inconsistent desired configuration.
type ConflictError struct{ base }

// InvalidArgument marks ConflictError for errdefs.IsInvalidArgument.
func (*ConflictError) InvalidArgument() {}

// Conflictf constructs a ConflictError.
func Conflictf(op, format string, args ...any) *ConflictError {
	return &ConflictError{newBase(KindConflict, op, format, args...)}
}

// NotFoundError reports an operation against a nonexistent interface.
type NotFoundError struct{ base }

// NotFound marks NotFoundError for errdefs.IsNotFound.
func (*NotFoundError) NotFound() {}

// NotFoundf constructs a NotFoundError.
func NotFoundf(op, format string, args ...any) *NotFoundError {
	return &NotFoundError{newBase(KindNotFound, op, format, args...)}
}

// BugError reports an internal invariant violation.
type BugError struct{ base }

// Internal marks BugError for errdefs.IsInternal.
func (*BugError) Internal() {}

// Bugf constructs a BugError.
func Bugf(op, format string, args ...any) *BugError {
	return &BugError{newBase(KindBug, op, format, args...)}
}

// KindOf returns the taxonomy Kind of err, or false if err was not produced
// by this package (directly, or wrapped by fmt.Errorf("%w", ...) chains).
func KindOf(err error) (Kind, bool) {
	if k, ok := err.(interface{ Kind() Kind }); ok {
		return k.Kind(), true
	}
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return 0, false
	}
	return KindOf(u.Unwrap())
}

var (
	_ error = (*ProtocolParseError)(nil)
	_ error = (*SysCallError)(nil)
	_ error = (*ConflictError)(nil)
	_ error = (*NotFoundError)(nil)
	_ error = (*BugError)(nil)
)
