package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SeculoDesconhecido is the bucket for periods with no recognizable
// century or year.
const SeculoDesconhecido = "Desconhecido"

var (
	seculoRe  = regexp.MustCompile(`(?i)\bs[ée]culo\s+([IVXLCDM]+)\b`)
	anoRe     = regexp.MustCompile(`\b(\d{4})\b`)
	digitosRe = regexp.MustCompile(`\d+`)
)

// SeculoDoPeriodo maps a free-text period descriptor to a canonical
// century label for grouping:
//
//   - "Século XV em Portugal" → "Século XV"
//   - "1823"                  → "Século 19" (ceil of year/100)
//   - "mystery era"           → "Desconhecido"
//
// Text that mentions a century without a recognizable numeral passes
// through untouched; anything else falls back to Desconhecido. The
// year rule only fires on exactly four digits, so "150 a.C." is not
// treated as a year. This stays a best-effort heuristic over
// Portuguese descriptors, not a general date parser.
func SeculoDoPeriodo(texto string) string {
	t := strings.TrimSpace(texto)
	if t == "" {
		return SeculoDesconhecido
	}

	if m := seculoRe.FindStringSubmatch(t); m != nil {
		return "Século " + strings.ToUpper(m[1])
	}

	if m := anoRe.FindString(t); m != "" {
		ano, _ := strconv.Atoi(m)
		return fmt.Sprintf("Século %d", (ano+99)/100)
	}

	lower := strings.ToLower(t)
	if strings.Contains(lower, "século") || strings.Contains(lower, "seculo") {
		return t
	}

	return SeculoDesconhecido
}

// NumeroDoSeculo extracts the numeric century from a label produced by
// SeculoDoPeriodo, for ordering. Labels without digits (roman-numeral
// centuries, "Desconhecido") count as 0 and therefore sort first.
func NumeroDoSeculo(rotulo string) int {
	m := digitosRe.FindString(rotulo)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
