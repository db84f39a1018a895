package opendata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assemblee_syncer/internal/domain"
)

func TestDecodeActeurs_Composite(t *testing.T) {
	raw := `{
		"export": {
			"acteurs": {
				"acteur": [
					{
						"uid": {"#text": "PA842279"},
						"etatCivil": {
							"ident": {"civ": "Mme", "prenom": "Jeanne", "nom": "Martin"},
							"infoNaissance": {"dateNais": "1980-05-12", "villeNais": "Lyon"}
						},
						"profession": {"libelleCourant": "Avocate"},
						"mandats": {
							"mandat": [
								{
									"typeOrgane": "ASSEMBLEE",
									"dateDebut": "2024-07-08",
									"organes": {"organeRef": "PO800000"},
									"infosQualite": {"codeQualite": "membre", "libQualite": "Députée"},
									"election": {"lieu": {"departement": "Paris", "numDepartement": "75", "numCirco": "5"}}
								}
							]
						}
					}
				]
			}
		}
	}`

	acteurs, err := DecodeActeurs(Document{Path: "acteurs.json", Raw: []byte(raw)})
	require.NoError(t, err)
	require.Len(t, acteurs, 1)

	a := acteurs[0]
	assert.Equal(t, "PA842279", a.Ref)
	assert.Equal(t, "Jeanne", a.FirstName)
	assert.Equal(t, "Martin", a.LastName)
	require.NotNil(t, a.BirthDate)
	require.NotNil(t, a.Profession)
	assert.Equal(t, "Avocate", *a.Profession)

	require.Len(t, a.Mandats, 1)
	m := a.Mandats[0]
	assert.Equal(t, "ASSEMBLEE", m.OrganeType)
	assert.Equal(t, "PO800000", m.OrganeRef)
	assert.Equal(t, "Paris", m.ElectionDept)
	assert.Equal(t, "75", m.ElectionNum)
	assert.Equal(t, "5", m.NumCirco)
	require.NotNil(t, m.Start)
	assert.Nil(t, m.End)
}

func TestDecodeActeurs_Divided(t *testing.T) {
	raw := `{
		"acteur": {
			"uid": "PA1234",
			"etatCivil": {"ident": {"civ": "M.", "prenom": "Paul", "nom": "Durand"}}
		}
	}`

	acteurs, err := DecodeActeurs(Document{Path: "PA1234.json", Raw: []byte(raw)})
	require.NoError(t, err)
	require.Len(t, acteurs, 1)
	assert.Equal(t, "PA1234", acteurs[0].Ref)
	assert.Equal(t, "Paul", acteurs[0].FirstName)
}

func TestDecodeActeurs_ForeignShape(t *testing.T) {
	acteurs, err := DecodeActeurs(Document{Path: "organe.json", Raw: []byte(`{"organe": {"uid": "PO1"}}`)})
	require.NoError(t, err)
	assert.Empty(t, acteurs)
}

func TestDecodeOrganes(t *testing.T) {
	raw := `{
		"export": {
			"organes": {
				"organe": [
					{"uid": "PO800490", "codeType": "GP", "libelle": "Groupe Démocrate", "libelleAbrege": "Dem"},
					{"uid": "PO59048", "codeType": "COMPER", "libelleEdition": "commission des lois"}
				]
			}
		}
	}`

	organes, err := DecodeOrganes(Document{Path: "organes.json", Raw: []byte(raw)})
	require.NoError(t, err)
	require.Len(t, organes, 2)

	assert.Equal(t, "PO800490", organes[0].Ref)
	assert.Equal(t, "GP", organes[0].TypeCode)
	require.NotNil(t, organes[0].ShortLabel)
	assert.Equal(t, "Dem", *organes[0].ShortLabel)

	// libelleEdition fallback when libelle is absent
	assert.Equal(t, "commission des lois", organes[1].Label)
}

func TestDecodeScrutins(t *testing.T) {
	raw := `{
		"scrutins": {
			"scrutin": [
				{
					"uid": "VTANR5L17V100",
					"numero": "100",
					"legislature": "17",
					"dateScrutin": "2026-03-12",
					"titre": "la proposition de loi relative au logement",
					"typeVote": {"codeTypeVote": "SPO", "libelleTypeVote": "scrutin public ordinaire"},
					"sort": {"code": "adopté"},
					"syntheseVote": {"decompte": {"pour": "310", "contre": "120", "abstentions": "15", "nonVotants": "8"}},
					"ventilationVotes": {
						"organe": {
							"groupes": {
								"groupe": [
									{
										"organeRef": "PO800490",
										"vote": {
											"decompteNominatif": {
												"pours": {"votant": [{"acteurRef": "PA1"}, {"acteurRef": "PA2"}]},
												"contres": {"votant": {"acteurRef": "PA3"}},
												"abstentions": {"votant": null},
												"nonVotants": {}
											}
										}
									}
								]
							}
						}
					}
				}
			]
		}
	}`

	scrutins, err := DecodeScrutins(Document{Path: "scrutins.json", Raw: []byte(raw)})
	require.NoError(t, err)
	require.Len(t, scrutins, 1)

	s := scrutins[0]
	assert.Equal(t, "VTANR5L17V100", s.Ref)
	assert.Equal(t, 100, s.Numero)
	assert.Equal(t, 17, s.Legislature)
	assert.Equal(t, domain.OutcomeAdopted, s.Outcome)
	assert.Equal(t, "adopté", s.SortCode)
	assert.Equal(t, 310, s.CountFor)
	assert.Equal(t, 120, s.CountAgainst)
	assert.Equal(t, 15, s.CountAbstain)
	assert.Equal(t, 8, s.CountNonVoting)
	assert.Equal(t, "https://www.assemblee-nationale.fr/dyn/17/scrutins/100", s.URL)

	require.Len(t, s.Groupes, 1)
	g := s.Groupes[0]
	assert.Equal(t, []string{"PA1", "PA2"}, g.For)
	assert.Equal(t, []string{"PA3"}, g.Against)
	assert.Empty(t, g.Abstain)
	assert.Empty(t, g.NonVoting)
}

func TestDecodeScrutins_SkipsEntriesWithoutDate(t *testing.T) {
	raw := `{"scrutins": {"scrutin": [{"uid": "VTANR5L17V1"}]}}`
	scrutins, err := DecodeScrutins(Document{Raw: []byte(raw)})
	require.NoError(t, err)
	assert.Empty(t, scrutins)
}

func TestNormalizeOutcome(t *testing.T) {
	out, ok := NormalizeOutcome("adopté")
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeAdopted, out)

	out, ok = NormalizeOutcome("Rejeté")
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeRejected, out)

	out, ok = NormalizeOutcome("rejete")
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeRejected, out)

	out, ok = NormalizeOutcome("annulé")
	assert.False(t, ok)
	assert.Equal(t, domain.OutcomeAdopted, out)
}

func TestDecodeReunions(t *testing.T) {
	raw := `{
		"export": {
			"reunions": {
				"reunion": [
					{
						"uid": "RUANR5L17S2026IDS30001",
						"timeStampDebut": "2026-03-12T15:00:00",
						"timeStampFin": "2026-03-12T20:00:00",
						"typeReunion": "seance",
						"organeReuniRef": "PO800000",
						"lieu": {"libelleLong": "Hémicycle"},
						"ODJ": {
							"resumeODJ": {"item": ["Questions au Gouvernement", "Suite de la discussion"]},
							"pointsODJ": {
								"pointODJ": [
									{
										"objet": "Discussion du projet de loi de finances",
										"typePointODJ": "discussion",
										"dateConfirme": "2026-03-12",
										"dossiersLegislatifsRefs": {"dossierRef": "DLR5L17N50000"}
									}
								]
							}
						},
						"participants": {
							"participantsInternes": {
								"participantInterne": [
									{"acteurRef": "PA842279", "presence": "présent"},
									{"acteurRef": "PA1234", "presence": "excusé"},
									{"acteurRef": "PA842279", "presence": "absent"}
								]
							}
						}
					},
					{
						"uid": "RUANR5L17S2026IDS30002",
						"typeReunion": "reunion de commission"
					}
				]
			}
		}
	}`

	reunions, err := DecodeReunions(Document{Path: "reunions.json", Raw: []byte(raw)})
	require.NoError(t, err)
	// the second entry has no start timestamp and is dropped
	require.Len(t, reunions, 1)

	r := reunions[0]
	assert.Equal(t, "RUANR5L17S2026IDS30001", r.Ref)
	assert.Equal(t, domain.SeanceTypePlenary, r.Type)
	assert.Equal(t, r.Start.Truncate(24*time.Hour), r.Date)
	require.NotNil(t, r.Title)
	assert.Equal(t, "Questions au Gouvernement", *r.Title)
	require.NotNil(t, r.Description)
	assert.Equal(t, "Suite de la discussion", *r.Description)
	require.NotNil(t, r.Location)
	assert.Equal(t, "Hémicycle", *r.Location)

	require.Len(t, r.Items, 1)
	item := r.Items[0]
	assert.Equal(t, r.Ref, item.SeanceRef)
	assert.Equal(t, "Discussion du projet de loi de finances", item.Title)
	require.NotNil(t, item.RefCode)
	assert.Equal(t, "DLR5L17N50000", *item.RefCode)

	// duplicate participant refs keep the first occurrence
	require.Len(t, r.Attendance, 2)
	assert.Equal(t, r.Ref, r.Attendance[0].SeanceRef)
	assert.Equal(t, "PA842279", r.Attendance[0].DeputeRef)
	require.NotNil(t, r.Attendance[0].Presence)
	assert.Equal(t, "présent", *r.Attendance[0].Presence)
	assert.Equal(t, "PA1234", r.Attendance[1].DeputeRef)
}

func TestDecodeReunions_RawIsPerEntry(t *testing.T) {
	raw := `{
		"export": {
			"reunions": {
				"reunion": [
					{"uid": "RU1", "timeStampDebut": "2026-03-12T15:00:00"},
					{"uid": "RU2", "timeStampDebut": "2026-03-13T09:30:00"}
				]
			}
		}
	}`

	reunions, err := DecodeReunions(Document{Path: "reunions.json", Raw: []byte(raw)})
	require.NoError(t, err)
	require.Len(t, reunions, 2)

	// each record carries its own payload bytes, not the whole document
	for _, r := range reunions {
		var entry struct {
			UID string `json:"uid"`
		}
		require.NoError(t, json.Unmarshal(r.Raw, &entry))
		assert.Equal(t, r.Ref, entry.UID)
	}
	assert.NotEqual(t, string(reunions[0].Raw), string(reunions[1].Raw))
}

func TestSeanceType(t *testing.T) {
	assert.Equal(t, domain.SeanceTypeCommission, seanceType("Réunion de commission"))
	assert.Equal(t, domain.SeanceTypePlenary, seanceType("seance"))
	assert.Equal(t, domain.SeanceTypePlenary, seanceType(""))
}

func TestDecodeDossiers(t *testing.T) {
	raw := `{
		"export": {
			"dossiersLegislatifs": {
				"dossier": [
					{
						"dossierParlementaire": {
							"uid": "DLR5L17N50000",
							"legislature": "17",
							"titreDossier": {"titre": "Projet de loi de finances pour 2026", "titreChemin": "plf_2026"},
							"procedureParlementaire": {"libelle": "Projet de loi"}
						}
					},
					{
						"dossierParlementaire": {
							"uid": "DLR5L17N50001",
							"titreDossier": {}
						}
					}
				]
			}
		}
	}`

	dossiers, err := DecodeDossiers(Document{Path: "dossiers.json", Raw: []byte(raw)})
	require.NoError(t, err)
	// the second entry is missing a title and is skipped
	require.Len(t, dossiers, 1)

	d := dossiers[0]
	assert.Equal(t, "DLR5L17N50000", d.Ref)
	assert.Equal(t, "Projet de loi de finances pour 2026", d.Title)
	assert.Equal(t, "Projet de loi", d.Procedure)
	require.NotNil(t, d.ShortTitle)
	assert.Equal(t, "plf_2026", *d.ShortTitle)
	require.NotNil(t, d.URL)
	assert.Equal(t, "https://www.assemblee-nationale.fr/dyn/17/dossiers/plf_2026", *d.URL)
}
