package opendata

import (
	"encoding/json"
	"fmt"

	"assemblee_syncer/internal/domain"
)

type rawOrgane struct {
	UID            FlexString `json:"uid"`
	CodeType       FlexString `json:"codeType"`
	Libelle        FlexString `json:"libelle"`
	LibelleAbrege  FlexString `json:"libelleAbrege"`
	LibelleEdition FlexString `json:"libelleEdition"`
	SiteInternet   FlexString `json:"siteInternet"`
}

// DecodeOrganes decodes one archive document into organe records, handling
// composite and divided export shapes like DecodeActeurs.
func DecodeOrganes(doc Document) ([]domain.Organe, error) {
	var composite struct {
		Export struct {
			Organes struct {
				Organe FlexList[rawOrgane] `json:"organe"`
			} `json:"organes"`
		} `json:"export"`
	}
	if err := json.Unmarshal(doc.Raw, &composite); err == nil && len(composite.Export.Organes.Organe) > 0 {
		return decodeRawOrganes(composite.Export.Organes.Organe), nil
	}

	var divided struct {
		Organe *rawOrgane `json:"organe"`
	}
	if err := json.Unmarshal(doc.Raw, &divided); err != nil {
		return nil, fmt.Errorf("decode organe document %s: %w", doc.Path, err)
	}
	if divided.Organe == nil || !divided.Organe.UID.Valid {
		return nil, nil
	}
	return decodeRawOrganes([]rawOrgane{*divided.Organe}), nil
}

func decodeRawOrganes(raws []rawOrgane) []domain.Organe {
	organes := make([]domain.Organe, 0, len(raws))
	for _, r := range raws {
		if !r.UID.Valid {
			continue
		}

		label := r.Libelle.Value
		if label == "" {
			label = r.LibelleEdition.Value
		}

		organes = append(organes, domain.Organe{
			Ref:        r.UID.Value,
			Label:      label,
			ShortLabel: r.LibelleAbrege.Ptr(),
			TypeCode:   r.CodeType.Value,
			URL:        r.SiteInternet.Ptr(),
		})
	}
	return organes
}
