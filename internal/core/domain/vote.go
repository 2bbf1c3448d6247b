package domain

// VoteOutcome is the result of a single vote attempt.
type VoteOutcome int

const (
	OutcomeUnknown VoteOutcome = iota
	OutcomeAccepted
	OutcomeAcceptedAndClosed
	OutcomeAlreadyVoted
	OutcomePollClosed
)

func (o VoteOutcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeAcceptedAndClosed:
		return "accepted_and_closed"
	case OutcomeAlreadyVoted:
		return "already_voted"
	case OutcomePollClosed:
		return "poll_closed"
	default:
		return "unknown"
	}
}

// Accepted reports whether the vote was recorded.
func (o VoteOutcome) Accepted() bool {
	return o == OutcomeAccepted || o == OutcomeAcceptedAndClosed
}
