package domain

import "time"

// Outcome codes for a roll-call vote. Unrecognized source codes are coerced
// to OutcomeAdopted at decode time (logged there so occurrences stay visible).
const (
	OutcomeAdopted  = "adopte"
	OutcomeRejected = "rejete"
)

// VotePosition is a member's ballot in a roll-call vote.
type VotePosition string

const (
	PositionFor       VotePosition = "pour"
	PositionAgainst   VotePosition = "contre"
	PositionAbstain   VotePosition = "abstention"
	PositionNonVoting VotePosition = "non_votant"
)

// Scrutin is a roll-call vote.
type Scrutin struct {
	ID             int64     `db:"id"`
	Ref            string    `db:"ref"` // stable external ID, e.g. VTANR5L16V1234
	Numero         int       `db:"numero"`
	SeanceRef      *string   `db:"seance_ref"`
	Date           time.Time `db:"date"`
	TypeCode       string    `db:"type_code"`
	TypeLabel      string    `db:"type_label"`
	Outcome        string    `db:"outcome"`
	Title          string    `db:"title"`
	CountFor       int       `db:"count_for"`
	CountAgainst   int       `db:"count_against"`
	CountAbstain   int       `db:"count_abstain"`
	CountNonVoting int       `db:"count_non_voting"`
	URL            string    `db:"url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`

	Votes []ScrutinVote `db:"-"`
}

// ScrutinVote is one member's ballot, unique per (scrutin, deputy) pair.
type ScrutinVote struct {
	ScrutinRef string       `db:"scrutin_ref"`
	DeputeRef  string       `db:"depute_ref"`
	Position   VotePosition `db:"position"`
}
