// Package outcome defines the tagged result values exchanged between the
// workflow layer and the transport boundary. Expected business conditions are
// represented in-band as outcome values; Go errors are reserved for transport
// failures such as an unreachable store.
package outcome

// Reason identifies why a mutation was not applied.
type Reason int

const (
	ReasonUnspecified Reason = iota

	// ReasonVerificationTimedOut means the store accepted the write but the
	// follow-up read never observed its effect within the attempt budget.
	ReasonVerificationTimedOut

	// ReasonWriteNotApplied means the read-back state was still equal to the
	// pre-write snapshot, so the write visibly changed nothing.
	ReasonWriteNotApplied
)

func (r Reason) String() string {
	switch r {
	case ReasonVerificationTimedOut:
		return "verification timed out"
	case ReasonWriteNotApplied:
		return "write not applied"
	default:
		return "unspecified"
	}
}
