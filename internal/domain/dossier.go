package domain

import "time"

// Dossier (bill) types, inferred from keyword matches in the source label.
const (
	DossierTypeProjet      = "projet_loi"      // government-originated
	DossierTypeProposition = "proposition_loi" // member-originated
	DossierTypeResolution  = "resolution"
	DossierTypeUnknown     = "inconnu"
)

// Dossier origins.
const (
	OriginGovernment = "gouvernement"
	OriginParliament = "parlement"
	OriginUnknown    = "inconnu"
)

// Dossier is a legislative bill. Rows come from two sources sharing this
// table: the authoritative per-legislature dossier dataset (keyed by its UID)
// and slugs derived from roll-call vote subjects (keyed by the slug). The
// external ref distinguishes them.
type Dossier struct {
	ID         int64     `db:"id"`
	Ref        string    `db:"ref"` // dossier UID or derived slug
	Title      string    `db:"title"`
	ShortTitle *string   `db:"short_title"`
	Type       string    `db:"type"`
	Origin     string    `db:"origin"`
	URL        *string   `db:"url"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// DossierScrutin links a bill to a roll-call vote, unique per pair.
type DossierScrutin struct {
	DossierRef string  `db:"dossier_ref"`
	ScrutinRef string  `db:"scrutin_ref"`
	Role       *string `db:"role"`
}
