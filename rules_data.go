package plurals

// Locale membership for the grouped families. Codes are gettext-style
// identifiers and are matched case-sensitively; regional variants such as
// es_AR or pt_BR are distinct entries, not derived from their parents.
var familyLocales = map[ruleFamily][]string{
	familyInvariant: {
		"ay", "bo", "cgg", "dz", "fa", "id", "ja", "jbo", "ka", "kk",
		"km", "ko", "ky", "lo", "ms", "my", "sah", "su", "th", "tt",
		"ug", "vi", "wo", "zh",
	},
	familyTwoForm: {
		"af", "an", "anp", "as", "ast", "az", "bg", "bn", "brx", "ca",
		"da", "de", "doi", "el", "en", "eo", "es", "es_AR", "et", "eu",
		"ff", "fi", "fo", "fur", "fy", "gl", "gu", "ha", "he", "hi",
		"hne", "hu", "hy", "ia", "it", "kl", "kn", "ku", "lb", "mai",
		"ml", "mn", "mni", "mr", "nah", "nap", "nb", "ne", "nl", "nn",
		"no", "nso", "or", "pa", "pap", "pms", "ps", "pt", "rm", "rw",
		"sat", "sco", "sd", "se", "si", "so", "son", "sq", "sv", "sw",
		"ta", "te", "tk", "ur", "yo",
	},
	familyZeroOne: {
		"ach", "ak", "am", "arn", "br", "fil", "fr", "gun", "ln", "mfe",
		"mg", "mi", "oc", "pt_BR", "tg", "ti", "tr", "uz", "wa",
	},
	familySlavic: {"be", "bs", "hr", "ru", "sr", "uk"},
	familyCzech:  {"cs", "sk"},
}

var familyForms = map[ruleFamily]int{
	familyInvariant: 1,
	familyTwoForm:   2,
	familyZeroOne:   2,
	familySlavic:    3,
	familyCzech:     3,
}

// Languages carrying a formula of their own.
var irregularRules = map[string]cardinalRule{
	"ar":  {familyArabic, 6},
	"csb": {familyKashubian, 3},
	"cy":  {familyWelsh, 4},
	"ga":  {familyIrish, 5},
	"gd":  {familyGaelic, 4},
	"is":  {familyIcelandic, 2},
	"jv":  {familyJavanese, 2},
	"kw":  {familyCornish, 4},
	"lt":  {familyLithuanian, 3},
	"lv":  {familyLatvian, 3},
	"mk":  {familyMacedonian, 3},
	"mnk": {familyMandinka, 3},
	"mt":  {familyMaltese, 4},
	"pl":  {familyPolish, 3},
	"ro":  {familyRomanian, 3},
	"sl":  {familySlovenian, 4},
}

// cardinalRules is the flat lookup table FormCount and FormIndex dispatch
// through. Built once at package load and never mutated afterwards.
var cardinalRules = buildCardinalRules()

func buildCardinalRules() map[string]cardinalRule {
	table := make(map[string]cardinalRule, 160)
	for family, codes := range familyLocales {
		rule := cardinalRule{family: family, forms: familyForms[family]}
		for _, code := range codes {
			table[code] = rule
		}
	}
	for code, rule := range irregularRules {
		table[code] = rule
	}
	return table
}
