package plurals

// Languages whose formula is not shared with any other. Clause order is
// load-bearing wherever the guards overlap (Arabic and Maltese check the
// literal 0/1/2 matches before the modulo ranges), so each chain keeps
// the clauses in their canonical order.

func arabicIndex(n int) int {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	if n == 2 {
		return 2
	}
	if n%100 >= 3 && n%100 <= 10 {
		return 3
	}
	if n%100 >= 11 {
		return 4
	}
	return 5
}

func kashubianIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

func welshIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	if n != 8 && n != 11 {
		return 2
	}
	return 3
}

func irishIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	if n >= 3 && n <= 6 {
		return 2
	}
	if n >= 7 && n <= 10 {
		return 3
	}
	return 4
}

func gaelicIndex(n int) int {
	if n == 1 || n == 11 {
		return 0
	}
	if n == 2 || n == 12 {
		return 1
	}
	if n > 2 && n < 20 {
		return 2
	}
	return 3
}

func icelandicIndex(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	return 1
}

func javaneseIndex(n int) int {
	if n == 0 {
		return 0
	}
	return 1
}

func cornishIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	if n == 3 {
		return 2
	}
	return 3
}

func lithuanianIndex(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	if n%10 >= 2 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

func latvianIndex(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	if n != 0 {
		return 1
	}
	return 2
}

// TODO: verify mk against an authoritative CLDR reference; the inherited
// formula maps every count ending in 2 to the dual form.
func macedonianIndex(n int) int {
	if n%10 == 1 {
		return 0
	}
	if n%10 == 2 {
		return 1
	}
	return 2
}

func mandinkaIndex(n int) int {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return 2
}

func malteseIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n == 0 || (n%100 >= 2 && n%100 <= 10) {
		return 1
	}
	if n%100 >= 11 && n%100 <= 19 {
		return 2
	}
	return 3
}

func polishIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

func romanianIndex(n int) int {
	if n == 1 {
		return 0
	}
	if n == 0 || (n%100 >= 1 && n%100 <= 19) {
		return 1
	}
	return 2
}

// slovenianIndex is the one chain whose fallback form is index 0.
func slovenianIndex(n int) int {
	if n%100 == 1 {
		return 1
	}
	if n%100 == 2 {
		return 2
	}
	if n%100 == 3 || n%100 == 4 {
		return 3
	}
	return 0
}
