package energy

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cantonNames maps the two-letter canton codes used in the plant table to the
// canton names used as geometry keys. It is never mutated.
var cantonNames = map[string]string{
	"AG": "Aargau",
	"AI": "Appenzell Innerrhoden",
	"AR": "Appenzell Ausserrhoden",
	"BE": "Bern",
	"BL": "Basel-Landschaft",
	"BS": "Basel-Stadt",
	"FR": "Fribourg",
	"GE": "Genève",
	"GL": "Glarus",
	"GR": "Graubünden",
	"JU": "Jura",
	"LU": "Luzern",
	"NE": "Neuchâtel",
	"NW": "Nidwalden",
	"OW": "Obwalden",
	"SG": "St. Gallen",
	"SH": "Schaffhausen",
	"SO": "Solothurn",
	"SZ": "Schwyz",
	"TG": "Thurgau",
	"TI": "Ticino",
	"UR": "Uri",
	"VD": "Vaud",
	"VS": "Valais",
	"ZG": "Zug",
	"ZH": "Zürich",
}

var cantonCodes = func() map[string]string {
	codes := make(map[string]string, len(cantonNames))
	for code, name := range cantonNames {
		codes[name] = code
	}
	return codes
}()

// CantonName resolves a two-letter canton code. The lookup ignores case and
// surrounding whitespace.
func CantonName(code string) (string, bool) {
	name, ok := cantonNames[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// CantonCode is the inverse of CantonName.
func CantonCode(name string) (string, bool) {
	code, ok := cantonCodes[NormalizeName(name)]
	return code, ok
}

// IsCantonName reports whether name is one of the 26 canton names.
func IsCantonName(name string) bool {
	_, ok := CantonCode(name)
	return ok
}

// CantonNames returns all 26 canton names sorted alphabetically.
func CantonNames() []string {
	names := make([]string, 0, len(cantonNames))
	for _, name := range cantonNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeName trims a canton name and brings it to Unicode NFC so that
// names decomposed by other tools ("Zürich") match the lookup.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
