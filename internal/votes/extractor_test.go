package votes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
)

func TestExtract_AllPositions(t *testing.T) {
	groupes := []opendata.GroupeVotes{
		{
			OrganeRef: "PO800490",
			For:       []string{"PA1001", "PA1002"},
			Against:   []string{"PA1003"},
			Abstain:   []string{"PA1004"},
			NonVoting: []string{"PA1005"},
		},
	}

	ballots := Extract("VTANR5L17V1", groupes)
	require.Len(t, ballots, 5)

	byRef := make(map[string]domain.VotePosition)
	for _, b := range ballots {
		assert.Equal(t, "VTANR5L17V1", b.ScrutinRef)
		byRef[b.DeputeRef] = b.Position
	}
	assert.Equal(t, domain.PositionFor, byRef["PA1001"])
	assert.Equal(t, domain.PositionFor, byRef["PA1002"])
	assert.Equal(t, domain.PositionAgainst, byRef["PA1003"])
	assert.Equal(t, domain.PositionAbstain, byRef["PA1004"])
	assert.Equal(t, domain.PositionNonVoting, byRef["PA1005"])
}

func TestExtract_FirstOccurrenceWins(t *testing.T) {
	groupes := []opendata.GroupeVotes{
		{
			OrganeRef: "PO800490",
			For:       []string{"PA1001"},
			Against:   []string{"PA1001"}, // same member listed twice
		},
		{
			OrganeRef: "PO800491",
			Abstain:   []string{"PA1001"},
		},
	}

	ballots := Extract("VTANR5L17V2", groupes)
	require.Len(t, ballots, 1)
	assert.Equal(t, domain.PositionFor, ballots[0].Position)
}

func TestExtract_SkipsEmptyRefs(t *testing.T) {
	groupes := []opendata.GroupeVotes{
		{For: []string{"", "PA1001", ""}},
	}

	ballots := Extract("VTANR5L17V3", groupes)
	require.Len(t, ballots, 1)
	assert.Equal(t, "PA1001", ballots[0].DeputeRef)
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract("VTANR5L17V4", nil))
}
