package opendata

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"assemblee_syncer/internal/domain"
)

// Reunion is the canonical record for one sitting or commission meeting. Raw
// keeps this sitting's own source payload, not the enclosing document, so
// checksums detect changes per sitting.
type Reunion struct {
	Ref         string
	Date        time.Time
	Start       *time.Time
	End         *time.Time
	Type        string
	Title       *string
	Description *string
	Location    *string
	OrganeRef   *string
	Items       []domain.AgendaItem
	Attendance  []domain.SeanceAttendance
	SourceURL   string
	Raw         json.RawMessage
}

type rawReunion struct {
	UID            FlexString `json:"uid"`
	TimeStampDebut FlexString `json:"timeStampDebut"`
	TimeStampFin   FlexString `json:"timeStampFin"`
	TypeReunion    FlexString `json:"typeReunion"`
	OrganeReuniRef FlexString `json:"organeReuniRef"`
	Lieu           struct {
		LibelleLong FlexString `json:"libelleLong"`
	} `json:"lieu"`
	ODJ struct {
		ResumeODJ struct {
			Item FlexList[FlexString] `json:"item"`
		} `json:"resumeODJ"`
		PointsODJ struct {
			PointODJ FlexList[rawPointODJ] `json:"pointODJ"`
		} `json:"pointsODJ"`
	} `json:"ODJ"`
	Participants struct {
		ParticipantsInternes struct {
			ParticipantInterne FlexList[rawParticipant] `json:"participantInterne"`
		} `json:"participantsInternes"`
	} `json:"participants"`
}

type rawParticipant struct {
	ActeurRef FlexString `json:"acteurRef"`
	Presence  FlexString `json:"presence"`
}

type rawPointODJ struct {
	Objet        FlexString `json:"objet"`
	TypePointODJ FlexString `json:"typePointODJ"`
	DateConfirme FlexString `json:"dateConfirme"`
	DossierRefs  struct {
		DossierRef FlexList[FlexString] `json:"dossierRef"`
	} `json:"dossiersLegislatifsRefs"`
}

// DecodeReunions decodes one archive document into sitting records, handling
// composite and divided export shapes. Entries are kept as raw messages until
// the per-entry decode so each Reunion carries its own payload bytes.
func DecodeReunions(doc Document) ([]Reunion, error) {
	var composite struct {
		Export struct {
			Reunions struct {
				Reunion FlexList[json.RawMessage] `json:"reunion"`
			} `json:"reunions"`
		} `json:"export"`
	}
	if err := json.Unmarshal(doc.Raw, &composite); err == nil && len(composite.Export.Reunions.Reunion) > 0 {
		return decodeRawReunions(composite.Export.Reunions.Reunion, doc.Path)
	}

	var divided struct {
		Reunion json.RawMessage `json:"reunion"`
	}
	if err := json.Unmarshal(doc.Raw, &divided); err != nil {
		return nil, fmt.Errorf("decode reunion document %s: %w", doc.Path, err)
	}
	if len(divided.Reunion) == 0 || string(divided.Reunion) == "null" {
		return nil, nil
	}
	return decodeRawReunions([]json.RawMessage{divided.Reunion}, doc.Path)
}

func decodeRawReunions(entries []json.RawMessage, path string) ([]Reunion, error) {
	reunions := make([]Reunion, 0, len(entries))
	for _, entry := range entries {
		var r rawReunion
		if err := json.Unmarshal(entry, &r); err != nil {
			return nil, fmt.Errorf("decode reunion entry in %s: %w", path, err)
		}
		if !r.UID.Valid {
			continue
		}

		start := parseDate(r.TimeStampDebut)
		if start == nil {
			// A sitting without a start timestamp cannot be placed on a date.
			continue
		}

		reunion := Reunion{
			Ref:       r.UID.Value,
			Date:      start.Truncate(24 * time.Hour),
			Start:     start,
			End:       parseDate(r.TimeStampFin),
			Type:      seanceType(r.TypeReunion.Value),
			Location:  r.Lieu.LibelleLong.Ptr(),
			OrganeRef: r.OrganeReuniRef.Ptr(),
			Raw:       entry,
		}

		if items := r.ODJ.ResumeODJ.Item; len(items) > 0 {
			summary := make([]string, 0, len(items))
			for _, it := range items {
				if it.Valid {
					summary = append(summary, it.Value)
				}
			}
			if len(summary) > 0 {
				title := summary[0]
				reunion.Title = &title
				if len(summary) > 1 {
					desc := strings.Join(summary[1:], " ; ")
					reunion.Description = &desc
				}
			}
		}

		for _, p := range r.ODJ.PointsODJ.PointODJ {
			if !p.Objet.Valid {
				continue
			}
			item := domain.AgendaItem{
				SeanceRef:   reunion.Ref,
				ScheduledAt: parseDate(p.DateConfirme),
				Title:       p.Objet.Value,
				Category:    p.TypePointODJ.Ptr(),
			}
			if len(p.DossierRefs.DossierRef) > 0 && p.DossierRefs.DossierRef[0].Valid {
				item.RefCode = p.DossierRefs.DossierRef[0].Ptr()
			}
			reunion.Items = append(reunion.Items, item)
		}

		seen := make(map[string]bool)
		for _, p := range r.Participants.ParticipantsInternes.ParticipantInterne {
			if !p.ActeurRef.Valid || seen[p.ActeurRef.Value] {
				continue
			}
			seen[p.ActeurRef.Value] = true
			reunion.Attendance = append(reunion.Attendance, domain.SeanceAttendance{
				SeanceRef: reunion.Ref,
				DeputeRef: p.ActeurRef.Value,
				Presence:  p.Presence.Ptr(),
			})
		}

		reunions = append(reunions, reunion)
	}
	return reunions, nil
}

func seanceType(typeReunion string) string {
	if strings.Contains(strings.ToLower(typeReunion), "commission") {
		return domain.SeanceTypeCommission
	}
	return domain.SeanceTypePlenary
}
