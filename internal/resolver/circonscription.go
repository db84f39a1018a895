package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"assemblee_syncer/internal/textutil"
)

// Electoral constituencies are identified in the source data by raw codes
// ("7505"), by display names ("Paris - 5e circonscription"), or by legacy
// freeform spellings. This file canonicalizes all three into a stable ID
// <department-code><number zero-padded to 2> and back.

var departements = map[string]string{
	"01": "Ain", "02": "Aisne", "03": "Allier", "04": "Alpes-de-Haute-Provence",
	"05": "Hautes-Alpes", "06": "Alpes-Maritimes", "07": "Ardèche", "08": "Ardennes",
	"09": "Ariège", "10": "Aube", "11": "Aude", "12": "Aveyron",
	"13": "Bouches-du-Rhône", "14": "Calvados", "15": "Cantal", "16": "Charente",
	"17": "Charente-Maritime", "18": "Cher", "19": "Corrèze",
	"2A": "Corse-du-Sud", "2B": "Haute-Corse",
	"21": "Côte-d'Or", "22": "Côtes-d'Armor", "23": "Creuse", "24": "Dordogne",
	"25": "Doubs", "26": "Drôme", "27": "Eure", "28": "Eure-et-Loir",
	"29": "Finistère", "30": "Gard", "31": "Haute-Garonne", "32": "Gers",
	"33": "Gironde", "34": "Hérault", "35": "Ille-et-Vilaine", "36": "Indre",
	"37": "Indre-et-Loire", "38": "Isère", "39": "Jura", "40": "Landes",
	"41": "Loir-et-Cher", "42": "Loire", "43": "Haute-Loire", "44": "Loire-Atlantique",
	"45": "Loiret", "46": "Lot", "47": "Lot-et-Garonne", "48": "Lozère",
	"49": "Maine-et-Loire", "50": "Manche", "51": "Marne", "52": "Haute-Marne",
	"53": "Mayenne", "54": "Meurthe-et-Moselle", "55": "Meuse", "56": "Morbihan",
	"57": "Moselle", "58": "Nièvre", "59": "Nord", "60": "Oise",
	"61": "Orne", "62": "Pas-de-Calais", "63": "Puy-de-Dôme", "64": "Pyrénées-Atlantiques",
	"65": "Hautes-Pyrénées", "66": "Pyrénées-Orientales", "67": "Bas-Rhin", "68": "Haut-Rhin",
	"69": "Rhône", "70": "Haute-Saône", "71": "Saône-et-Loire", "72": "Sarthe",
	"73": "Savoie", "74": "Haute-Savoie", "75": "Paris", "76": "Seine-Maritime",
	"77": "Seine-et-Marne", "78": "Yvelines", "79": "Deux-Sèvres", "80": "Somme",
	"81": "Tarn", "82": "Tarn-et-Garonne", "83": "Var", "84": "Vaucluse",
	"85": "Vendée", "86": "Vienne", "87": "Haute-Vienne", "88": "Vosges",
	"89": "Yonne", "90": "Territoire de Belfort", "91": "Essonne", "92": "Hauts-de-Seine",
	"93": "Seine-Saint-Denis", "94": "Val-de-Marne", "95": "Val-d'Oise",
	"971": "Guadeloupe", "972": "Martinique", "973": "Guyane", "974": "La Réunion",
	"975": "Saint-Pierre-et-Miquelon", "976": "Mayotte",
	"977": "Saint-Barthélemy et Saint-Martin",
	"986": "Wallis-et-Futuna", "987": "Polynésie française", "988": "Nouvelle-Calédonie",
	"999": "Français établis hors de France",
}

// normalized department name -> code, for display-name parsing.
var departementsByName = func() map[string]string {
	byName := make(map[string]string, len(departements))
	for code, name := range departements {
		byName[textutil.Normalize(name)] = code
	}
	return byName
}()

var (
	reMetro   = regexp.MustCompile(`^(\d{2})(\d{1,2})$`)
	reCorse   = regexp.MustCompile(`^(2[AB])(\d{1,2})$`)
	reOutre   = regexp.MustCompile(`^(9\d{2})(\d{1,2})$`)
	reOrdinal = regexp.MustCompile(`(\d+)`)
)

// ParseCode splits a raw constituency code into department code and
// constituency number. Rules are tried in order: two-digit metropolitan
// department, Corsica two-letter department, three-digit overseas department;
// longer composite codes are truncated to the first four characters and
// retried.
func ParseCode(raw string) (dept string, num int, ok bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	for _, re := range []*regexp.Regexp{reMetro, reCorse, reOutre} {
		m := re.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		if _, known := departements[m[1]]; !known {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil || n == 0 {
			continue
		}
		return m[1], n, true
	}

	if len(code) > 4 {
		return ParseCode(code[:4])
	}
	return "", 0, false
}

// Ordinal renders a constituency number the way the Assemblée prints it:
// "1ère", "2e", "13e".
func Ordinal(n int) string {
	if n == 1 {
		return "1ère"
	}
	return fmt.Sprintf("%de", n)
}

// DisplayName builds "<Département> - <Nth> circonscription" from a raw code.
func DisplayName(raw string) (string, bool) {
	dept, num, ok := ParseCode(raw)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s - %s circonscription", departements[dept], Ordinal(num)), true
}

// CanonicalID maps a raw code or a display name to the stable constituency
// ID <department-code><number, zero-padded to 2>.
func CanonicalID(raw string) (string, bool) {
	if dept, num, ok := ParseCode(raw); ok {
		return fmt.Sprintf("%s%02d", dept, num), true
	}
	if dept, num, ok := parseName(raw); ok {
		return fmt.Sprintf("%s%02d", dept, num), true
	}
	return "", false
}

// DepartementName resolves a department code to its label.
func DepartementName(code string) (string, bool) {
	name, ok := departements[strings.ToUpper(code)]
	return name, ok
}

// parseName matches a display name against the department table by longest
// normalized prefix, so "Eure-et-Loir - 1ère circonscription" never matches
// "Eure". The constituency number is the first integer in the remainder.
func parseName(name string) (dept string, num int, ok bool) {
	normalized := textutil.Normalize(strings.TrimSpace(name))

	var bestCode string
	var bestLen int
	for deptName, code := range departementsByName {
		if strings.HasPrefix(normalized, deptName) && len(deptName) > bestLen {
			bestCode, bestLen = code, len(deptName)
		}
	}
	if bestCode == "" {
		return "", 0, false
	}

	rest := normalized[bestLen:]
	m := reOrdinal.FindString(rest)
	if m == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return "", 0, false
	}
	return bestCode, n, true
}

// LabelsForID expands a canonical ID into every label spelling that may
// appear in already-stored freeform text ("1ère"/"1e"/"1ème" variants), to
// support matching against legacy data.
func LabelsForID(id string) []string {
	dept, num, ok := ParseCode(id)
	if !ok {
		return nil
	}
	name := departements[dept]

	var ordinals []string
	if num == 1 {
		ordinals = []string{"1ère", "1e", "1ème", "1ere"}
	} else {
		ordinals = []string{
			fmt.Sprintf("%de", num),
			fmt.Sprintf("%dème", num),
			fmt.Sprintf("%deme", num),
		}
	}

	labels := make([]string, 0, len(ordinals))
	for _, ord := range ordinals {
		labels = append(labels, fmt.Sprintf("%s - %s circonscription", name, ord))
	}
	return labels
}
