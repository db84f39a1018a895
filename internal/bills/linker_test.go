package bills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
)

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		want    string
		ok      bool
	}{
		{
			name:    "proposition with lecture suffix",
			subject: "l'ensemble de la proposition de loi relative au logement (première lecture).",
			want:    "proposition de loi relative au logement",
			ok:      true,
		},
		{
			name:    "projet de loi",
			subject: "le projet de loi de finances pour 2026",
			want:    "projet de loi de finances pour 2026",
			ok:      true,
		},
		{
			name:    "resolution with diacritics",
			subject: "la résolution européenne sur les accords commerciaux",
			want:    "résolution européenne sur les accords commerciaux",
			ok:      true,
		},
		{
			name:    "no bill phrase",
			subject: "la déclaration du Gouvernement sur la politique générale",
			ok:      false,
		},
		{
			name:    "empty subject",
			subject: "",
			ok:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractTitle(tc.subject)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestKeyForSubject(t *testing.T) {
	slug, title, ok := KeyForSubject("l'ensemble de la proposition de loi relative au logement (première lecture).")
	require.True(t, ok)
	assert.Equal(t, "proposition-de-loi-relative-au-logement", slug)
	assert.Equal(t, "proposition de loi relative au logement", title)
}

func TestKeyForSubject_SimilarSubjectsCollapse(t *testing.T) {
	a, _, okA := KeyForSubject("la proposition de loi relative au logement (première lecture)")
	b, _, okB := KeyForSubject("l'ensemble de la proposition de loi relative au logement (deuxième lecture).")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		label  string
		typ    string
		origin string
	}{
		{"Projet de loi de finances", domain.DossierTypeProjet, domain.OriginGovernment},
		{"Proposition de loi relative au logement", domain.DossierTypeProposition, domain.OriginParliament},
		{"Résolution européenne", domain.DossierTypeResolution, domain.OriginParliament},
		{"Motion de censure", domain.DossierTypeUnknown, domain.OriginUnknown},
	}
	for _, tc := range cases {
		typ, origin := Classify(tc.label)
		assert.Equal(t, tc.typ, typ, tc.label)
		assert.Equal(t, tc.origin, origin, tc.label)
	}
}

func TestFromDossier(t *testing.T) {
	short := "PLF 2026"
	doc := opendata.DossierDoc{
		Ref:        "DLR5L17N50000",
		Title:      "Projet de loi de finances pour 2026",
		ShortTitle: &short,
		Procedure:  "Projet de loi",
	}

	dossier := FromDossier(doc)
	assert.Equal(t, "DLR5L17N50000", dossier.Ref)
	assert.Equal(t, domain.DossierTypeProjet, dossier.Type)
	assert.Equal(t, domain.OriginGovernment, dossier.Origin)
	require.NotNil(t, dossier.ShortTitle)
	assert.Equal(t, "PLF 2026", *dossier.ShortTitle)
}

func TestFromSubject(t *testing.T) {
	dossier, ok := FromSubject("la proposition de loi relative au logement (première lecture).")
	require.True(t, ok)
	assert.Equal(t, "proposition-de-loi-relative-au-logement", dossier.Ref)
	assert.Equal(t, domain.DossierTypeProposition, dossier.Type)
	assert.Equal(t, domain.OriginParliament, dossier.Origin)

	_, ok = FromSubject("la motion de censure déposée par...")
	assert.False(t, ok)
}
