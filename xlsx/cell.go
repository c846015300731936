package xlsx

import "strconv"

// ColumnLetters converts a 1-based column index to spreadsheet column
// letters: 1=A, 2=B, ..., 26=Z, 27=AA. Column numbering is bijective
// base-26 - there is no letter for zero. Indexes below 1 are clamped
// to 1, so the result is never empty.
func ColumnLetters(n int) string {
	if n < 1 {
		n = 1
	}
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}

// ColumnIndex converts column letters back to a 1-based column index.
// Matching is case-insensitive and non-alphabetic characters are
// ignored. An empty or all-non-alphabetic input clamps to 1.
func ColumnIndex(letters string) int {
	n := 0
	for _, r := range letters {
		switch {
		case 'A' <= r && r <= 'Z':
			n = n*26 + int(r-'A') + 1
		case 'a' <= r && r <= 'z':
			n = n*26 + int(r-'a') + 1
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// RefColumn extracts the 1-based column index from a cell reference
// such as "C7" or "AA12". The row suffix is not consulted: during
// decoding row identity comes from XML row order, not the reference.
func RefColumn(ref string) int {
	return ColumnIndex(refLetters(ref))
}

// CellRef builds an "A1"-style reference from a 1-based column index
// and row number.
func CellRef(col, row int) string {
	return ColumnLetters(col) + strconv.Itoa(row)
}

// refLetters returns the leading alphabetic run of a cell reference.
func refLetters(ref string) string {
	i := 0
	for i < len(ref) && isRefLetter(ref[i]) {
		i++
	}
	return ref[:i]
}

func isRefLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
