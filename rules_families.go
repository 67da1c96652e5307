package plurals

// Grouped formulas shared by many locales. Each guard chain is evaluated
// top to bottom; the first satisfied clause decides the form index.

// invariantIndex covers languages with a single grammatical form.
func invariantIndex(int) int {
	return 0
}

// twoFormIndex covers the common singular/plural split where only an exact
// count of one is singular (English, German, Spanish, ...).
func twoFormIndex(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

// zeroOneIndex covers languages that treat zero like one (French,
// Brazilian Portuguese, Turkish, ...).
func zeroOneIndex(n int) int {
	if n == 0 || n == 1 {
		return 0
	}
	return 1
}

// slavicIndex covers the standard East/South Slavic three-way split
// (Russian, Ukrainian, Belarusian, Bosnian, Croatian, Serbian).
func slavicIndex(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

// czechIndex covers Czech and Slovak, which split on the literal
// range 2..4 rather than on the last digit.
func czechIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n >= 2 && n <= 4 {
		return 1
	}
	return 2
}
