package resolver

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
	"assemblee_syncer/internal/textutil"
)

// Organe type codes used during resolution.
const (
	OrganeTypeAssemblee = "ASSEMBLEE"
	OrganeTypeGroupe    = "GP"
)

// ResolveDepute derives the persisted deputy record from an acteur's raw
// mandate records. Candidate selection: assemblée mandates carrying electoral
// location data; failing that, any mandate with a deputy-like qualifier;
// failing that, all mandates. Among candidates a currently-active mandate is
// preferred, with latest end date as tie-break. A missing constituency is
// backfilled from the first other mandate that resolves one, keeping the
// chosen mandate's dates.
func ResolveDepute(a opendata.Acteur, organes map[string]domain.Organe, legislature int, now time.Time) domain.Depute {
	d := domain.Depute{
		Ref:         a.Ref,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		BirthDate:   a.BirthDate,
		BirthPlace:  a.BirthPlace,
		Profession:  a.Profession,
		Sex:         sexFromCiv(a.Civ),
		Legislature: legislature,
	}

	candidates := candidateMandats(a.Mandats)
	if len(candidates) > 0 {
		chosen := pickMandat(candidates, now)
		d.MandateStart = chosen.Start
		d.MandateEnd = chosen.End

		id, label, dept, ok := resolveCirconscription(chosen)
		if !ok {
			// Scan the other candidates, then every mandate, for the first
			// one that does resolve a constituency.
			id, label, dept, ok = scanCirconscription(candidates, chosen)
			if !ok {
				id, label, dept, ok = scanCirconscription(a.Mandats, chosen)
			}
		}
		if ok {
			d.CirconscriptionID = &id
			d.CirconscriptionLabel = &label
			d.Departement = &dept
		}
	}

	if label := groupeLabel(a.Mandats, organes, now); label != "" {
		d.GroupeLabel = &label
	}

	return d
}

func candidateMandats(mandats []domain.Mandat) []domain.Mandat {
	var withElection []domain.Mandat
	for _, m := range mandats {
		if m.OrganeType == OrganeTypeAssemblee && (m.ElectionNum != "" || m.ElectionDept != "") {
			withElection = append(withElection, m)
		}
	}
	if len(withElection) > 0 {
		return withElection
	}

	var deputyLike []domain.Mandat
	for _, m := range mandats {
		qualite := textutil.Normalize(m.LibQualite + " " + m.CodeQualite)
		if strings.Contains(qualite, "depute") {
			deputyLike = append(deputyLike, m)
		}
	}
	if len(deputyLike) > 0 {
		return deputyLike
	}

	return mandats
}

// pickMandat prefers a currently-active mandate; when several are active, or
// none, it falls back to the latest end date (an absent end date sorts last).
func pickMandat(mandats []domain.Mandat, now time.Time) domain.Mandat {
	var active []domain.Mandat
	for _, m := range mandats {
		if m.ActiveAt(now) {
			active = append(active, m)
		}
	}
	if len(active) == 1 {
		return active[0]
	}

	pool := mandats
	if len(active) > 1 {
		pool = active
	}

	best := pool[0]
	for _, m := range pool[1:] {
		if mandatEndsAfter(m, best) {
			best = m
		}
	}
	return best
}

func mandatEndsAfter(a, b domain.Mandat) bool {
	if a.End == nil {
		return b.End != nil
	}
	if b.End == nil {
		return false
	}
	return a.End.After(*b.End)
}

func resolveCirconscription(m domain.Mandat) (id, label, dept string, ok bool) {
	if m.ElectionNum == "" || m.NumCirco == "" {
		return "", "", "", false
	}
	num, err := strconv.Atoi(m.NumCirco)
	if err != nil || num == 0 {
		return "", "", "", false
	}

	raw := fmt.Sprintf("%s%02d", strings.ToUpper(m.ElectionNum), num)
	id, ok = CanonicalID(raw)
	if !ok {
		return "", "", "", false
	}
	label, _ = DisplayName(raw)

	dept = m.ElectionDept
	if dept == "" {
		dept, _ = DepartementName(m.ElectionNum)
	}
	return id, label, dept, true
}

func scanCirconscription(mandats []domain.Mandat, chosen domain.Mandat) (id, label, dept string, ok bool) {
	for _, m := range mandats {
		if m == chosen {
			continue
		}
		if id, label, dept, ok = resolveCirconscription(m); ok {
			return id, label, dept, true
		}
	}
	return "", "", "", false
}

// groupeLabel resolves the political group from the group-type mandate's
// organe reference, preferring the organe's short label.
func groupeLabel(mandats []domain.Mandat, organes map[string]domain.Organe, now time.Time) string {
	var groupMandats []domain.Mandat
	for _, m := range mandats {
		if m.OrganeType == OrganeTypeGroupe && m.OrganeRef != "" {
			groupMandats = append(groupMandats, m)
		}
	}
	if len(groupMandats) == 0 {
		return ""
	}

	chosen := pickMandat(groupMandats, now)
	organe, ok := organes[chosen.OrganeRef]
	if !ok {
		return ""
	}
	if organe.ShortLabel != nil && *organe.ShortLabel != "" {
		return *organe.ShortLabel
	}
	return organe.Label
}

func sexFromCiv(civ *string) *string {
	if civ == nil {
		return nil
	}
	var sex string
	switch strings.TrimSpace(*civ) {
	case "M.", "M":
		sex = "M"
	case "Mme", "Mme.":
		sex = "F"
	default:
		return nil
	}
	return &sex
}
