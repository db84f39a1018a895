package domain

// ThematicTag is a classification label from the seed catalog. Tags are
// defined out-of-band; this pipeline only assigns them.
type ThematicTag struct {
	ID       int64    `db:"id"`
	Slug     string   `db:"slug"`
	Label    string   `db:"label"`
	Keywords []string `db:"-"` // matched as normalized substrings
}

// TagSourceAuto marks assignments produced by the keyword tagger.
const TagSourceAuto = "auto"

// EntityKind selects which taggable entity family an operation applies to.
type EntityKind string

const (
	EntityScrutin EntityKind = "scrutin"
	EntityDossier EntityKind = "dossier"
)

// TagAssignment binds an entity (scrutin or dossier, by external ref) to a
// tag with a confidence score in [0.5, 1.0]. Assignments are replaced
// wholesale when an entity is re-tagged.
type TagAssignment struct {
	EntityRef  string  `db:"entity_ref"`
	TagID      int64   `db:"tag_id"`
	Confidence float64 `db:"confidence"`
	Source     string  `db:"source"`
}
