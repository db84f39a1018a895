package domain

import "time"

// Seance types. Plenary sittings come from the seance dataset, committee
// meetings from commission reunions; both land in the same table.
const (
	SeanceTypePlenary    = "seance"
	SeanceTypeCommission = "commission"
)

type Seance struct {
	ID          int64      `db:"id"`
	Ref         string     `db:"ref"` // stable external ID, e.g. RUANR5L16S2024IDS27906
	Date        time.Time  `db:"date"`
	StartTime   *time.Time `db:"start_time"`
	EndTime     *time.Time `db:"end_time"`
	Type        string     `db:"type"`
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	Location    *string    `db:"location"`
	OrganeRef   *string    `db:"organe_ref"` // hosting body
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	Items []AgendaItem    `db:"-"`
	Meta  *SourceMetadata `db:"-"`
}

// AgendaItem belongs to exactly one sitting. The batch for a sitting is
// replaced wholesale on each sync.
type AgendaItem struct {
	ID          int64      `db:"id"`
	SeanceRef   string     `db:"seance_ref"`
	ScheduledAt *time.Time `db:"scheduled_at"`
	Title       string     `db:"title"`
	Category    *string    `db:"category"`
	RefCode     *string    `db:"ref_code"`
	RefURL      *string    `db:"ref_url"`
}

// SeanceAttendance is one member's recorded presence at a sitting
// ("présent", "excusé", "absent"). The batch for a sitting is replaced
// wholesale on each sync.
type SeanceAttendance struct {
	ID        int64   `db:"id"`
	SeanceRef string  `db:"seance_ref"`
	DeputeRef string  `db:"depute_ref"`
	Presence  *string `db:"presence"`
}

// SourceMetadata tracks provenance for a sitting: where it came from, when it
// was last synced, and a checksum of the raw payload for change detection.
type SourceMetadata struct {
	SeanceRef    string    `db:"seance_ref"`
	SourceURL    string    `db:"source_url"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	Checksum     string    `db:"checksum"`
}
