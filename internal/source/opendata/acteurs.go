package opendata

import (
	"encoding/json"
	"fmt"
	"time"

	"assemblee_syncer/internal/domain"
)

// Acteur is the canonical in-memory record for one deputy source document,
// carrying only the fields the pipeline needs.
type Acteur struct {
	Ref        string
	FirstName  string
	LastName   string
	Civ        *string
	BirthDate  *time.Time
	BirthPlace *string
	Profession *string
	Mandats    []domain.Mandat
}

type rawActeur struct {
	UID       FlexString `json:"uid"`
	EtatCivil struct {
		Ident struct {
			Civ    FlexString `json:"civ"`
			Prenom FlexString `json:"prenom"`
			Nom    FlexString `json:"nom"`
		} `json:"ident"`
		InfoNaissance struct {
			DateNais  FlexString `json:"dateNais"`
			VilleNais FlexString `json:"villeNais"`
		} `json:"infoNaissance"`
	} `json:"etatCivil"`
	Profession struct {
		LibelleCourant FlexString `json:"libelleCourant"`
	} `json:"profession"`
	Mandats struct {
		Mandat FlexList[rawMandat] `json:"mandat"`
	} `json:"mandats"`
}

type rawMandat struct {
	TypeOrgane FlexString `json:"typeOrgane"`
	DateDebut  FlexString `json:"dateDebut"`
	DateFin    FlexString `json:"dateFin"`
	Organes    struct {
		OrganeRef FlexList[FlexString] `json:"organeRef"`
	} `json:"organes"`
	InfosQualite struct {
		CodeQualite FlexString `json:"codeQualite"`
		LibQualite  FlexString `json:"libQualite"`
	} `json:"infosQualite"`
	Election struct {
		Lieu struct {
			Departement    FlexString `json:"departement"`
			NumDepartement FlexString `json:"numDepartement"`
			NumCirco       FlexString `json:"numCirco"`
		} `json:"lieu"`
	} `json:"election"`
}

// DecodeActeurs decodes one archive document into acteur records. Both export
// generations are handled: the composite shape (export.acteurs.acteur holding
// the whole list) and the divided shape (root is a single acteur). A document
// of a foreign shape yields no records and no error.
func DecodeActeurs(doc Document) ([]Acteur, error) {
	var composite struct {
		Export struct {
			Acteurs struct {
				Acteur FlexList[rawActeur] `json:"acteur"`
			} `json:"acteurs"`
		} `json:"export"`
	}
	if err := json.Unmarshal(doc.Raw, &composite); err == nil && len(composite.Export.Acteurs.Acteur) > 0 {
		return decodeRawActeurs(composite.Export.Acteurs.Acteur)
	}

	var divided struct {
		Acteur *rawActeur `json:"acteur"`
	}
	if err := json.Unmarshal(doc.Raw, &divided); err != nil {
		return nil, fmt.Errorf("decode acteur document %s: %w", doc.Path, err)
	}
	if divided.Acteur == nil || !divided.Acteur.UID.Valid {
		return nil, nil
	}
	return decodeRawActeurs([]rawActeur{*divided.Acteur})
}

func decodeRawActeurs(raws []rawActeur) ([]Acteur, error) {
	acteurs := make([]Acteur, 0, len(raws))
	for _, r := range raws {
		if !r.UID.Valid {
			continue
		}

		a := Acteur{
			Ref:        r.UID.Value,
			FirstName:  r.EtatCivil.Ident.Prenom.Value,
			LastName:   r.EtatCivil.Ident.Nom.Value,
			Civ:        r.EtatCivil.Ident.Civ.Ptr(),
			BirthDate:  parseDate(r.EtatCivil.InfoNaissance.DateNais),
			BirthPlace: r.EtatCivil.InfoNaissance.VilleNais.Ptr(),
			Profession: r.Profession.LibelleCourant.Ptr(),
		}

		for _, m := range r.Mandats.Mandat {
			mandat := domain.Mandat{
				OrganeType:   m.TypeOrgane.Value,
				CodeQualite:  m.InfosQualite.CodeQualite.Value,
				LibQualite:   m.InfosQualite.LibQualite.Value,
				ElectionDept: m.Election.Lieu.Departement.Value,
				ElectionNum:  m.Election.Lieu.NumDepartement.Value,
				NumCirco:     m.Election.Lieu.NumCirco.Value,
				Start:        parseDate(m.DateDebut),
				End:          parseDate(m.DateFin),
			}
			if len(m.Organes.OrganeRef) > 0 {
				mandat.OrganeRef = m.Organes.OrganeRef[0].Value
			}
			a.Mandats = append(a.Mandats, mandat)
		}

		acteurs = append(acteurs, a)
	}
	return acteurs, nil
}
