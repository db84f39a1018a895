// Package tagger classifies parliamentary texts into thematic tags by
// keyword matching with a confidence score.
package tagger

import (
	"math"
	"strings"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/textutil"
)

// Match is one (tag, confidence) result for an entity.
type Match struct {
	Tag        domain.ThematicTag
	Confidence float64
}

// keywordWeight reflects keyword specificity: longer keywords are less
// likely to match by accident.
func keywordWeight(kw string) float64 {
	switch {
	case len(kw) > 10:
		return 1.5
	case len(kw) > 5:
		return 1.2
	default:
		return 1.0
	}
}

// MatchText scores a tag catalog against an entity's text (title plus
// optional secondary text). Text and keywords are compared normalized
// (lowercase, diacritics stripped). For a tag with matching keywords the
// confidence is min(0.5 + sum of keyword weights, 1.0), rounded to two
// decimals; tags with no match are omitted.
func MatchText(title, secondary string, catalog []domain.ThematicTag) []Match {
	text := textutil.Normalize(title)
	if secondary != "" {
		text += " " + textutil.Normalize(secondary)
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var matches []Match
	for _, tag := range catalog {
		var total float64
		matched := false
		for _, kw := range tag.Keywords {
			normalized := textutil.Normalize(kw)
			if normalized == "" || !strings.Contains(text, normalized) {
				continue
			}
			matched = true
			total += keywordWeight(normalized)
		}
		if !matched {
			continue
		}

		confidence := math.Min(0.5+total, 1.0)
		confidence = math.Round(confidence*100) / 100
		matches = append(matches, Match{Tag: tag, Confidence: confidence})
	}
	return matches
}

// Assignments converts matches into persistable tag assignments for an
// entity reference.
func Assignments(entityRef string, matches []Match) []domain.TagAssignment {
	out := make([]domain.TagAssignment, 0, len(matches))
	for _, m := range matches {
		out = append(out, domain.TagAssignment{
			EntityRef:  entityRef,
			TagID:      m.Tag.ID,
			Confidence: m.Confidence,
			Source:     domain.TagSourceAuto,
		})
	}
	return out
}
