package opendata

import (
	"encoding/json"
	"fmt"
)

// DossierDoc is the canonical record for one authoritative legislative
// dossier. Classification into bill type/origin happens downstream.
type DossierDoc struct {
	Ref        string
	Title      string
	ShortTitle *string
	Procedure  string
	URL        *string
}

type rawDossier struct {
	DossierParlementaire struct {
		UID          FlexString `json:"uid"`
		Legislature  FlexString `json:"legislature"`
		TitreDossier struct {
			Titre       FlexString `json:"titre"`
			TitreChemin FlexString `json:"titreChemin"`
		} `json:"titreDossier"`
		ProcedureParlementaire struct {
			Libelle FlexString `json:"libelle"`
		} `json:"procedureParlementaire"`
	} `json:"dossierParlementaire"`
}

// DecodeDossiers decodes one archive document into dossier records. The
// dossier dataset only ships in the composite shape, but a divided shape is
// accepted for symmetry with the other decoders.
func DecodeDossiers(doc Document) ([]DossierDoc, error) {
	var composite struct {
		Export struct {
			DossiersLegislatifs struct {
				Dossier FlexList[rawDossier] `json:"dossier"`
			} `json:"dossiersLegislatifs"`
		} `json:"export"`
	}
	if err := json.Unmarshal(doc.Raw, &composite); err == nil && len(composite.Export.DossiersLegislatifs.Dossier) > 0 {
		return decodeRawDossiers(composite.Export.DossiersLegislatifs.Dossier), nil
	}

	var divided struct {
		Dossier *rawDossier `json:"dossier"`
	}
	if err := json.Unmarshal(doc.Raw, &divided); err != nil {
		return nil, fmt.Errorf("decode dossier document %s: %w", doc.Path, err)
	}
	if divided.Dossier == nil || !divided.Dossier.DossierParlementaire.UID.Valid {
		return nil, nil
	}
	return decodeRawDossiers([]rawDossier{*divided.Dossier}), nil
}

func decodeRawDossiers(raws []rawDossier) []DossierDoc {
	dossiers := make([]DossierDoc, 0, len(raws))
	for _, r := range raws {
		d := r.DossierParlementaire
		if !d.UID.Valid || !d.TitreDossier.Titre.Valid {
			continue
		}

		doc := DossierDoc{
			Ref:       d.UID.Value,
			Title:     d.TitreDossier.Titre.Value,
			Procedure: d.ProcedureParlementaire.Libelle.Value,
		}
		if d.TitreDossier.TitreChemin.Valid && d.TitreDossier.TitreChemin.Value != doc.Title {
			doc.ShortTitle = d.TitreDossier.TitreChemin.Ptr()
		}
		if leg := atoiOrZero(d.Legislature.Value); leg > 0 && d.TitreDossier.TitreChemin.Valid {
			url := fmt.Sprintf("https://www.assemblee-nationale.fr/dyn/%d/dossiers/%s", leg, d.TitreDossier.TitreChemin.Value)
			doc.URL = &url
		}

		dossiers = append(dossiers, doc)
	}
	return dossiers
}
