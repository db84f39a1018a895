// Package votes flattens the nested ballot tree of a roll-call vote into one
// record per voting member.
package votes

import (
	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
)

// Extract walks the political-group ballot blocks of one roll-call vote and
// emits a (deputy ref, position) record for each member the first time that
// member appears. Later occurrences of the same reference are dropped, even
// under a different ballot category.
func Extract(scrutinRef string, groupes []opendata.GroupeVotes) []domain.ScrutinVote {
	seen := make(map[string]bool)
	var out []domain.ScrutinVote

	emit := func(refs []string, position domain.VotePosition) {
		for _, ref := range refs {
			if ref == "" || seen[ref] {
				continue
			}
			seen[ref] = true
			out = append(out, domain.ScrutinVote{
				ScrutinRef: scrutinRef,
				DeputeRef:  ref,
				Position:   position,
			})
		}
	}

	for _, g := range groupes {
		emit(g.For, domain.PositionFor)
		emit(g.Against, domain.PositionAgainst)
		emit(g.Abstain, domain.PositionAbstain)
		emit(g.NonVoting, domain.PositionNonVoting)
	}

	return out
}
