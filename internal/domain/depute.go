package domain

import "time"

// Depute is the resolved, persisted record for a member of parliament.
// Exactly one row exists per external reference (upsert key).
type Depute struct {
	ID                   int64      `db:"id"`
	Ref                  string     `db:"ref"` // stable external reference, e.g. PA842279
	FirstName            string     `db:"first_name"`
	LastName             string     `db:"last_name"`
	BirthDate            *time.Time `db:"birth_date"`
	BirthPlace           *string    `db:"birth_place"`
	Profession           *string    `db:"profession"`
	Sex                  *string    `db:"sex"`
	GroupeLabel          *string    `db:"groupe_label"`
	CirconscriptionLabel *string    `db:"circonscription_label"`
	CirconscriptionID    *string    `db:"circonscription_id"`
	Departement          *string    `db:"departement"`
	MandateStart         *time.Time `db:"mandate_start"`
	MandateEnd           *time.Time `db:"mandate_end"`
	Legislature          int        `db:"legislature"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// Sitting reports whether the deputy currently holds a seat: no mandate end
// date, or an end date at or after the given day.
func (d Depute) Sitting(now time.Time) bool {
	if d.MandateEnd == nil {
		return true
	}
	return !d.MandateEnd.Before(now.Truncate(24 * time.Hour))
}

// Mandat is one appointment record from the source data. Mandates are
// transient: they only feed deputy resolution and membership filtering,
// they are never persisted standalone.
type Mandat struct {
	OrganeType   string
	OrganeRef    string
	CodeQualite  string
	LibQualite   string
	ElectionDept string // department label, e.g. "Paris"
	ElectionNum  string // department number, e.g. "75"
	NumCirco     string // constituency ordinal within the department
	Start        *time.Time
	End          *time.Time
}

// ActiveAt reports whether the mandate covers the given day (no end date, or
// end date today-or-later).
func (m Mandat) ActiveAt(now time.Time) bool {
	if m.End == nil {
		return true
	}
	return !m.End.Before(now.Truncate(24 * time.Hour))
}

// Organe is any organizational body: chamber, commission, political group,
// delegation.
type Organe struct {
	ID         int64   `db:"id"`
	Ref        string  `db:"ref"`
	Label      string  `db:"label"`
	ShortLabel *string `db:"short_label"`
	TypeCode   string  `db:"type_code"`
	URL        *string `db:"url"`
}

// DeputeOrgane is a commission/committee roster entry, unique per
// (deputy ref, organe ref) pair.
type DeputeOrgane struct {
	DeputeRef string     `db:"depute_ref"`
	OrganeRef string     `db:"organe_ref"`
	Start     *time.Time `db:"start_date"`
	End       *time.Time `db:"end_date"`
}
