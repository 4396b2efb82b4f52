package totals

import "strings"

// Korean financial numeral rendering for the document's amount-in-words row.
//
// Numbers group by powers of 10,000 (만/억/조/경), each group spelled with the
// digit table below and the 천/백/십 scale words. Elision rule, applied
// uniformly: a coefficient of exactly 1 disappears before 십, 백 and 천, and a
// whole group whose value is exactly 1 disappears before its 만-power unit
// (10000 -> 만원정, not 일만원정). A bare ones digit keeps its 일 (1 -> 일원정).
var (
	koreanDigits     = [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	koreanSmallUnits = [4]string{"", "십", "백", "천"}
	koreanGroupUnits = [5]string{"", "만", "억", "조", "경"}
)

const (
	koreanWonSuffix = "원정"
	koreanZeroWords = "영원정"
)

// FormatKoreanCurrencyWords renders a non-negative won amount as a Korean
// numeral phrase ending in 원정 ("won, exactly"). Zero maps to 영원정.
func FormatKoreanCurrencyWords(amount int64) string {
	if amount <= 0 {
		return koreanZeroWords
	}

	// Split into base-10000 groups, least significant first.
	var groups [5]int
	n := amount
	for i := 0; i < len(groups) && n > 0; i++ {
		groups[i] = int(n % 10000)
		n /= 10000
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		seg := koreanGroupWords(g)
		if seg == koreanDigits[1] && i > 0 {
			seg = ""
		}
		b.WriteString(seg)
		b.WriteString(koreanGroupUnits[i])
	}
	b.WriteString(koreanWonSuffix)
	return b.String()
}

// koreanGroupWords spells a group value in 1..9999.
func koreanGroupWords(g int) string {
	var b strings.Builder
	divisor := 1000
	for pos := 3; pos >= 0; pos-- {
		d := g / divisor % 10
		divisor /= 10
		if d == 0 {
			continue
		}
		if d != 1 || pos == 0 {
			b.WriteString(koreanDigits[d])
		}
		b.WriteString(koreanSmallUnits[pos])
	}
	return b.String()
}
