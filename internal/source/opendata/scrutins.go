package opendata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assemblee_syncer/internal/domain"
)

// Scrutin is the canonical record for one roll-call vote, including the
// nested per-group ballot tree for vote extraction.
type Scrutin struct {
	Ref            string
	Numero         int
	Legislature    int
	Date           time.Time
	SeanceRef      *string
	TypeCode       string
	TypeLabel      string
	SortCode       string // raw outcome label from the source
	Outcome        string // normalized, defaulted when unrecognized
	Title          string
	CountFor       int
	CountAgainst   int
	CountAbstain   int
	CountNonVoting int
	URL            string
	Groupes        []GroupeVotes
}

// GroupeVotes is one political group's ballot block: up to four member lists
// holding deputy references.
type GroupeVotes struct {
	OrganeRef string
	For       []string
	Against   []string
	Abstain   []string
	NonVoting []string
}

type rawScrutin struct {
	UID         FlexString `json:"uid"`
	Numero      FlexString `json:"numero"`
	Legislature FlexString `json:"legislature"`
	DateScrutin FlexString `json:"dateScrutin"`
	SeanceRef   FlexString `json:"seanceRef"`
	Titre       FlexString `json:"titre"`
	TypeVote    struct {
		CodeTypeVote    FlexString `json:"codeTypeVote"`
		LibelleTypeVote FlexString `json:"libelleTypeVote"`
	} `json:"typeVote"`
	Sort struct {
		Code FlexString `json:"code"`
	} `json:"sort"`
	SyntheseVote struct {
		Decompte struct {
			Pour        FlexString `json:"pour"`
			Contre      FlexString `json:"contre"`
			Abstentions FlexString `json:"abstentions"`
			NonVotants  FlexString `json:"nonVotants"`
		} `json:"decompte"`
	} `json:"syntheseVote"`
	VentilationVotes struct {
		Organe struct {
			Groupes struct {
				Groupe FlexList[rawGroupe] `json:"groupe"`
			} `json:"groupes"`
		} `json:"organe"`
	} `json:"ventilationVotes"`
}

type rawGroupe struct {
	OrganeRef FlexString `json:"organeRef"`
	Vote      struct {
		DecompteNominatif struct {
			Pours       rawVotants `json:"pours"`
			Contres     rawVotants `json:"contres"`
			Abstentions rawVotants `json:"abstentions"`
			NonVotants  rawVotants `json:"nonVotants"`
		} `json:"decompteNominatif"`
	} `json:"vote"`
}

type rawVotants struct {
	Votant FlexList[rawVotant] `json:"votant"`
}

type rawVotant struct {
	ActeurRef FlexString `json:"acteurRef"`
}

// NormalizeOutcome maps a raw sort code to one of the fixed outcome codes.
// The second return reports whether the code was recognized; unrecognized
// codes fall back to the adopted default.
func NormalizeOutcome(code string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "adopté", "adopte":
		return domain.OutcomeAdopted, true
	case "rejeté", "rejete":
		return domain.OutcomeRejected, true
	}
	return domain.OutcomeAdopted, false
}

// DecodeScrutins decodes one archive document into roll-call vote records,
// handling composite and divided export shapes.
func DecodeScrutins(doc Document) ([]Scrutin, error) {
	var composite struct {
		Scrutins struct {
			Scrutin FlexList[rawScrutin] `json:"scrutin"`
		} `json:"scrutins"`
	}
	if err := json.Unmarshal(doc.Raw, &composite); err == nil && len(composite.Scrutins.Scrutin) > 0 {
		return decodeRawScrutins(composite.Scrutins.Scrutin)
	}

	var divided struct {
		Scrutin *rawScrutin `json:"scrutin"`
	}
	if err := json.Unmarshal(doc.Raw, &divided); err != nil {
		return nil, fmt.Errorf("decode scrutin document %s: %w", doc.Path, err)
	}
	if divided.Scrutin == nil || !divided.Scrutin.UID.Valid {
		return nil, nil
	}
	return decodeRawScrutins([]rawScrutin{*divided.Scrutin})
}

func decodeRawScrutins(raws []rawScrutin) ([]Scrutin, error) {
	scrutins := make([]Scrutin, 0, len(raws))
	for _, r := range raws {
		if !r.UID.Valid {
			continue
		}

		date := parseDate(r.DateScrutin)
		if date == nil {
			continue
		}

		numero, _ := strconv.Atoi(r.Numero.Value)
		legislature, _ := strconv.Atoi(r.Legislature.Value)
		outcome, _ := NormalizeOutcome(r.Sort.Code.Value)

		s := Scrutin{
			Ref:            r.UID.Value,
			Numero:         numero,
			Legislature:    legislature,
			Date:           *date,
			SeanceRef:      r.SeanceRef.Ptr(),
			TypeCode:       r.TypeVote.CodeTypeVote.Value,
			TypeLabel:      r.TypeVote.LibelleTypeVote.Value,
			SortCode:       r.Sort.Code.Value,
			Outcome:        outcome,
			Title:          r.Titre.Value,
			CountFor:       atoiOrZero(r.SyntheseVote.Decompte.Pour.Value),
			CountAgainst:   atoiOrZero(r.SyntheseVote.Decompte.Contre.Value),
			CountAbstain:   atoiOrZero(r.SyntheseVote.Decompte.Abstentions.Value),
			CountNonVoting: atoiOrZero(r.SyntheseVote.Decompte.NonVotants.Value),
		}
		if legislature > 0 && numero > 0 {
			s.URL = fmt.Sprintf("https://www.assemblee-nationale.fr/dyn/%d/scrutins/%d", legislature, numero)
		}

		for _, g := range r.VentilationVotes.Organe.Groupes.Groupe {
			nominatif := g.Vote.DecompteNominatif
			s.Groupes = append(s.Groupes, GroupeVotes{
				OrganeRef: g.OrganeRef.Value,
				For:       votantRefs(nominatif.Pours),
				Against:   votantRefs(nominatif.Contres),
				Abstain:   votantRefs(nominatif.Abstentions),
				NonVoting: votantRefs(nominatif.NonVotants),
			})
		}

		scrutins = append(scrutins, s)
	}
	return scrutins, nil
}

func votantRefs(v rawVotants) []string {
	refs := make([]string, 0, len(v.Votant))
	for _, votant := range v.Votant {
		if votant.ActeurRef.Valid {
			refs = append(refs, votant.ActeurRef.Value)
		}
	}
	return refs
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
