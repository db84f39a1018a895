// Package bills groups roll-call votes into legislative bills: an
// authoritative dossier dataset on one side, a title-slug heuristic over
// vote subjects on the other.
package bills

import (
	"regexp"
	"strings"

	"assemblee_syncer/internal/domain"
	"assemblee_syncer/internal/source/opendata"
	"assemblee_syncer/internal/textutil"
)

// billTitleRe captures the first "proposition de loi...", "projet de loi..."
// or "résolution..." fragment through end of string. Matching is done on
// normalized text; offsets are mapped back to the original below.
var billTitleRe = regexp.MustCompile(`(?i)(proposition de loi|projet de loi|resolution)`)

// trailing "(… lecture)" parenthetical, e.g. "(première lecture)."
var lectureRe = regexp.MustCompile(`\s*\([^)]*lecture\)\s*\.?\s*$`)

// ExtractTitle pulls the canonical bill title fragment out of a vote's
// subject text: the first bill-phrase match to end of string, with a trailing
// "(… lecture)" parenthetical and final period stripped.
func ExtractTitle(subject string) (string, bool) {
	normalized := textutil.Normalize(subject)
	loc := billTitleRe.FindStringIndex(normalized)
	if loc == nil {
		return "", false
	}

	// Normalize preserves rune count (diacritics are stripped, not expanded),
	// but not byte offsets. Recover the original-text offset by rune index.
	runeStart := len([]rune(normalized[:loc[0]]))
	title := string([]rune(subject)[runeStart:])

	title = lectureRe.ReplaceAllString(title, "")
	title = strings.TrimSuffix(strings.TrimSpace(title), ".")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	return title, true
}

// KeyForSubject derives the heuristic bill grouping key from a vote subject:
// the extracted title, slugified. Two votes with near-identical subject
// wording collapse to the same key.
func KeyForSubject(subject string) (slug, title string, ok bool) {
	title, ok = ExtractTitle(subject)
	if !ok {
		return "", "", false
	}
	slug = textutil.Slugify(title)
	if slug == "" {
		return "", "", false
	}
	return slug, title, true
}

// Classify infers bill type and origin from an authoritative dossier label.
func Classify(label string) (billType, origin string) {
	normalized := textutil.Normalize(label)
	switch {
	case strings.Contains(normalized, "projet de loi"):
		return domain.DossierTypeProjet, domain.OriginGovernment
	case strings.Contains(normalized, "proposition de loi"):
		return domain.DossierTypeProposition, domain.OriginParliament
	case strings.Contains(normalized, "resolution"):
		return domain.DossierTypeResolution, domain.OriginParliament
	}
	return domain.DossierTypeUnknown, domain.OriginUnknown
}

// FromDossier converts an authoritative dossier document into the persisted
// bill record.
func FromDossier(doc opendata.DossierDoc) domain.Dossier {
	billType, origin := Classify(doc.Procedure + " " + doc.Title)
	return domain.Dossier{
		Ref:        doc.Ref,
		Title:      doc.Title,
		ShortTitle: doc.ShortTitle,
		Type:       billType,
		Origin:     origin,
		URL:        doc.URL,
	}
}

// FromSubject builds the heuristic bill record for a vote subject, keyed by
// the derived slug. Returns false when the subject yields no bill phrase.
func FromSubject(subject string) (domain.Dossier, bool) {
	slug, title, ok := KeyForSubject(subject)
	if !ok {
		return domain.Dossier{}, false
	}
	billType, origin := Classify(title)
	return domain.Dossier{
		Ref:    slug,
		Title:  title,
		Type:   billType,
		Origin: origin,
	}, true
}
