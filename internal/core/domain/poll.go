package domain

// PollSnapshot is an immutable view of the poll used for rendering.
type PollSnapshot struct {
	VoteCount int  `json:"vote_count"`
	Capacity  int  `json:"capacity"`
	Closed    bool `json:"closed"`
}

func NewPollSnapshot(voteCount, capacity int) PollSnapshot {
	return PollSnapshot{
		VoteCount: voteCount,
		Capacity:  capacity,
		Closed:    voteCount >= capacity,
	}
}
