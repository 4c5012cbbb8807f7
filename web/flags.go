package web

import (
	"fmt"

	"github.com/Matthewduffy23/Club-View/fotmob"
)

const twemojiBase = "https://cdnjs.cloudflare.com/ajax/libs/twemoji/14.0.2/svg"

// The GB home nations have no two-letter ISO code, twemoji uses subdivision
// tag sequences for them instead.
var twemojiSpecial = map[string]string{
	"eng": "1f3f4-e0067-e0062-e0065-e006e-e0067-e007f",
	"sct": "1f3f4-e0067-e0062-e0073-e0063-e0074-e007f",
	"wls": "1f3f4-e0067-e0062-e0077-e006c-e0073-e007f",
}

// countryToCC maps normalized birth-country names to ISO codes. Dataset
// spellings vary, so common aliases are listed too.
var countryToCC = map[string]string{
	"united kingdom":   "gb",
	"great britain":    "gb",
	"northern ireland": "nir",
	"england":          "eng",
	"scotland":         "sct",
	"wales":            "wls",

	"ireland":                "ie",
	"republic of ireland":    "ie",
	"spain":                  "es",
	"france":                 "fr",
	"germany":                "de",
	"italy":                  "it",
	"portugal":               "pt",
	"netherlands":            "nl",
	"belgium":                "be",
	"austria":                "at",
	"switzerland":            "ch",
	"denmark":                "dk",
	"sweden":                 "se",
	"norway":                 "no",
	"finland":                "fi",
	"iceland":                "is",
	"poland":                 "pl",
	"czech republic":         "cz",
	"czechia":                "cz",
	"slovakia":               "sk",
	"slovenia":               "si",
	"croatia":                "hr",
	"serbia":                 "rs",
	"bosnia and herzegovina": "ba",
	"bosnia":                 "ba",
	"montenegro":             "me",
	"kosovo":                 "xk",
	"albania":                "al",
	"greece":                 "gr",
	"hungary":                "hu",
	"romania":                "ro",
	"bulgaria":               "bg",
	"russia":                 "ru",
	"ukraine":                "ua",
	"georgia":                "ge",
	"kazakhstan":             "kz",
	"azerbaijan":             "az",
	"armenia":                "am",
	"turkey":                 "tr",
	"cyprus":                 "cy",
	"luxembourg":             "lu",
	"andorra":                "ad",
	"monaco":                 "mc",
	"san marino":             "sm",
	"malta":                  "mt",
	"moldova":                "md",
	"north macedonia":        "mk",
	"macedonia":              "mk",
	"estonia":                "ee",
	"latvia":                 "lv",
	"lithuania":              "lt",

	"qatar":                "qa",
	"saudi arabia":         "sa",
	"uae":                  "ae",
	"united arab emirates": "ae",
	"israel":               "il",
	"japan":                "jp",
	"south korea":          "kr",
	"korea":                "kr",
	"korea republic":       "kr",
	"china":                "cn",
	"china pr":             "cn",

	"algeria":                          "dz",
	"angola":                           "ao",
	"benin":                            "bj",
	"burkina faso":                     "bf",
	"burundi":                          "bi",
	"cape verde":                       "cv",
	"cabo verde":                       "cv",
	"cameroon":                         "cm",
	"chad":                             "td",
	"congo":                            "cg",
	"dr congo":                         "cd",
	"democratic republic of the congo": "cd",
	"egypt":                            "eg",
	"ethiopia":                         "et",
	"gabon":                            "ga",
	"gambia":                           "gm",
	"ghana":                            "gh",
	"guinea":                           "gn",
	"guinea-bissau":                    "gw",
	"ivory coast":                      "ci",
	"cote d'ivoire":                    "ci",
	"kenya":                            "ke",
	"liberia":                          "lr",
	"libya":                            "ly",
	"madagascar":                       "mg",
	"malawi":                           "mw",
	"mali":                             "ml",
	"mauritania":                       "mr",
	"mauritius":                        "mu",
	"morocco":                          "ma",
	"mozambique":                       "mz",
	"namibia":                          "na",
	"niger":                            "ne",
	"nigeria":                          "ng",
	"rwanda":                           "rw",
	"senegal":                          "sn",
	"sierra leone":                     "sl",
	"somalia":                          "so",
	"south africa":                     "za",
	"south sudan":                      "ss",
	"sudan":                            "sd",
	"tanzania":                         "tz",
	"togo":                             "tg",
	"tunisia":                          "tn",
	"uganda":                           "ug",
	"zambia":                           "zm",
	"zimbabwe":                         "zw",

	"brazil":        "br",
	"argentina":     "ar",
	"uruguay":       "uy",
	"chile":         "cl",
	"colombia":      "co",
	"peru":          "pe",
	"ecuador":       "ec",
	"paraguay":      "py",
	"bolivia":       "bo",
	"mexico":        "mx",
	"canada":        "ca",
	"united states": "us",
	"usa":           "us",

	"australia":   "au",
	"new zealand": "nz",
}

// FlagURL returns the twemoji SVG for a birth country, or "" when the
// country is unknown.
func FlagURL(country string) string {
	cc, ok := countryToCC[fotmob.Normalize(country)]
	if !ok {
		return ""
	}

	code, ok := twemojiSpecial[cc]
	if !ok {
		if len(cc) != 2 {
			return ""
		}
		a := rune(cc[0]) - 'a'
		b := rune(cc[1]) - 'a'
		code = fmt.Sprintf("%04x-%04x", 0x1F1E6+a, 0x1F1E6+b)
	}
	return fmt.Sprintf("%s/%s.svg", twemojiBase, code)
}
