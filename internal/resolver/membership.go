package resolver

import (
	"assemblee_syncer/internal/domain"
)

// Organization types whose memberships are persisted as commission rosters.
// Everything else (ministries, international bodies, the chamber itself) is
// discarded.
var allowedOrganeTypes = map[string]bool{
	"COMPER":      true, // permanent commission
	"COMSPEC":     true, // special commission
	"COMENQ":      true, // inquiry commission
	"GE":          true, // study group
	"GA":          true, // friendship group
	"MISINFO":     true, // information mission
	"MISINFOPRE":  true,
	"DELEG":       true, // delegation
	"DELEGBUREAU": true,
}

// FilterMemberships keeps only mandates whose organization type is in the
// allow-list and collapses duplicates: when the same (deputy, organe) pair
// appears in several mandate records, the one with the latest (or absent)
// end date wins.
func FilterMemberships(deputeRef string, mandats []domain.Mandat) []domain.DeputeOrgane {
	kept := make(map[string]domain.Mandat)
	var order []string

	for _, m := range mandats {
		if m.OrganeRef == "" || !allowedOrganeTypes[m.OrganeType] {
			continue
		}
		prev, seen := kept[m.OrganeRef]
		if !seen {
			kept[m.OrganeRef] = m
			order = append(order, m.OrganeRef)
			continue
		}
		if mandatEndsAfter(m, prev) {
			kept[m.OrganeRef] = m
		}
	}

	memberships := make([]domain.DeputeOrgane, 0, len(kept))
	for _, ref := range order {
		m := kept[ref]
		memberships = append(memberships, domain.DeputeOrgane{
			DeputeRef: deputeRef,
			OrganeRef: ref,
			Start:     m.Start,
			End:       m.End,
		})
	}
	return memberships
}
