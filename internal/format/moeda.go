// Package format holds the display formatting and parsing heuristics for
// catalog values: pt-BR currency strings and free-text period descriptors.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoedaIndisponivel is shown when a price cannot be parsed.
const MoedaIndisponivel = "R$ --"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Moeda formats a value as a pt-BR currency string ("R$ 1.234,50").
func Moeda(v decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", v.InexactFloat64())
}

// MoedaDe parses a raw price (a plain number like "1234.50" or an
// already-localized string like "R$ 1.234,50") and formats it as a
// pt-BR currency string. Unparseable input yields MoedaIndisponivel;
// this function never fails.
func MoedaDe(raw string) string {
	v, err := ParseValor(raw)
	if err != nil {
		return MoedaIndisponivel
	}
	return Moeda(v)
}

// ParseValor normalizes a price string to a decimal value. It accepts
// plain numbers ("1234.50"), and pt-BR formatted strings with an
// optional currency symbol, thousands separators and a decimal comma
// ("R$ 1.234,50"). A comma anywhere marks the string as pt-BR
// formatted, in which case dots are treated as thousands separators.
func ParseValor(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor %q não é numérico: %w", raw, err)
	}
	return v, nil
}
