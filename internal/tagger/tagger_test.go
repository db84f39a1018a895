package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assemblee_syncer/internal/domain"
)

func testCatalog() []domain.ThematicTag {
	return []domain.ThematicTag{
		{ID: 1, Slug: "logement", Label: "Logement", Keywords: []string{"logement", "loyer"}},
		{ID: 2, Slug: "sante", Label: "Santé", Keywords: []string{"sante", "hopital"}},
		{ID: 3, Slug: "environnement", Label: "Environnement", Keywords: []string{"transition ecologique", "climat"}},
	}
}

func TestMatchText_NoMatch(t *testing.T) {
	matches := MatchText("Déclaration du Gouvernement", "", testCatalog())
	assert.Empty(t, matches)
}

func TestMatchText_EmptyText(t *testing.T) {
	assert.Nil(t, MatchText("", "", testCatalog()))
	assert.Nil(t, MatchText("   ", "", testCatalog()))
}

func TestMatchText_DiacriticsInsensitive(t *testing.T) {
	matches := MatchText("Proposition de loi relative à la santé des Français", "", testCatalog())
	require.Len(t, matches, 1)
	assert.Equal(t, "sante", matches[0].Tag.Slug)
}

func TestMatchText_ConfidenceBounds(t *testing.T) {
	cases := []string{
		"Projet de loi sur le logement",
		"Logement et encadrement des loyers",
		"Transition écologique et climat dans les territoires",
	}
	for _, title := range cases {
		for _, m := range MatchText(title, "", testCatalog()) {
			assert.GreaterOrEqual(t, m.Confidence, 0.5, title)
			assert.LessOrEqual(t, m.Confidence, 1.0, title)
		}
	}
}

func TestMatchText_ConfidenceMonotonic(t *testing.T) {
	one := MatchText("encadrement du logement", "", testCatalog())
	two := MatchText("logement et plafonnement des loyers", "", testCatalog())
	require.Len(t, one, 1)
	require.Len(t, two, 1)
	assert.LessOrEqual(t, one[0].Confidence, two[0].Confidence)
}

func TestMatchText_SecondaryText(t *testing.T) {
	matches := MatchText("Amendement n°12", "après l'article 3, encadrement des loyers", testCatalog())
	require.Len(t, matches, 1)
	assert.Equal(t, "logement", matches[0].Tag.Slug)
}

func TestAssignments(t *testing.T) {
	matches := MatchText("logement", "", testCatalog())
	require.Len(t, matches, 1)

	assignments := Assignments("VTANR5L17V100", matches)
	require.Len(t, assignments, 1)
	assert.Equal(t, "VTANR5L17V100", assignments[0].EntityRef)
	assert.Equal(t, int64(1), assignments[0].TagID)
	assert.Equal(t, domain.TagSourceAuto, assignments[0].Source)
	assert.GreaterOrEqual(t, assignments[0].Confidence, 0.5)
}

func TestKeywordWeight(t *testing.T) {
	assert.Equal(t, 1.0, keywordWeight("loi"))
	assert.Equal(t, 1.2, keywordWeight("logement"))
	assert.Equal(t, 1.5, keywordWeight("transition ecologique"))
}
