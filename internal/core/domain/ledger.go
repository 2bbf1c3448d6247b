package domain

// Ledger is the durable record of the poll: how many votes were accepted and
// by whom. VoteCount always equals len(Voters) for ledgers built through
// NewLedger and WithVoter.
type Ledger struct {
	VoteCount int
	Voters    []string

	index map[string]struct{}
}

// NewLedger builds a ledger from a list of voter identities, dropping empty
// and duplicate entries while keeping first-seen order.
func NewLedger(voters []string) *Ledger {
	l := &Ledger{
		Voters: make([]string, 0, len(voters)),
		index:  make(map[string]struct{}, len(voters)),
	}
	for _, v := range voters {
		if v == "" {
			continue
		}
		if _, ok := l.index[v]; ok {
			continue
		}
		l.index[v] = struct{}{}
		l.Voters = append(l.Voters, v)
	}
	l.VoteCount = len(l.Voters)
	return l
}

func (l *Ledger) HasVoted(voterID string) bool {
	if l.index == nil {
		for _, v := range l.Voters {
			if v == voterID {
				return true
			}
		}
		return false
	}
	_, ok := l.index[voterID]
	return ok
}

// WithVoter returns a copy of the ledger with voterID appended. The receiver
// is left untouched so callers can commit only after the copy is persisted.
func (l *Ledger) WithVoter(voterID string) *Ledger {
	voters := make([]string, len(l.Voters), len(l.Voters)+1)
	copy(voters, l.Voters)
	return NewLedger(append(voters, voterID))
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return NewLedger(l.Voters)
}
