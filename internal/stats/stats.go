// Package stats derives summary statistics and chart-ready groupings
// from an in-memory artifact collection. All functions are pure: they
// take a snapshot of the catalog and return fresh values.
//
// Price policy: an artifact whose preco does not parse as a number is
// excluded from monetary sums and averages but still counts in the
// occurrence groupings (category, material, century). Averages divide
// by the full group size, so a malformed price weighs as zero.
package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acervodigital/acervo/internal/format"
	"github.com/acervodigital/acervo/internal/model"
)

// LimiteMateriais is the default number of entries returned by
// MateriaisMaisComuns.
const LimiteMateriais = 8

// Grupo is a label with an occurrence count. Slices of Grupo preserve
// a meaningful order (first-seen or sorted, per producer).
type Grupo struct {
	Rotulo     string
	Quantidade int
}

// MediaCategoria is a category with its average price.
type MediaCategoria struct {
	Rotulo string
	Media  decimal.Decimal
}

// Resumo summarizes the whole collection. PrecoMedio is the zero value
// when Total is zero; callers render zero states instead of dividing.
type Resumo struct {
	Total      int
	ValorTotal decimal.Decimal
	PrecoMedio decimal.Decimal
}

func categoriaOuPadrao(a model.Artefato) string {
	if strings.TrimSpace(a.Categoria) == "" {
		return model.CategoriaPadrao
	}
	return a.Categoria
}

// PorCategoria counts artifacts per category, in first-seen order.
// Artifacts without a category fall into model.CategoriaPadrao.
func PorCategoria(itens []model.Artefato) []Grupo {
	indice := make(map[string]int)
	var grupos []Grupo
	for _, a := range itens {
		cat := categoriaOuPadrao(a)
		i, ok := indice[cat]
		if !ok {
			i = len(grupos)
			indice[cat] = i
			grupos = append(grupos, Grupo{Rotulo: cat})
		}
		grupos[i].Quantidade++
	}
	return grupos
}

// PrecoMedioPorCategoria computes the average price per category, in
// first-seen order. Unparseable prices contribute zero to the sum but
// still count in the denominator.
func PrecoMedioPorCategoria(itens []model.Artefato) []MediaCategoria {
	type acumulador struct {
		soma  decimal.Decimal
		count int
	}
	indice := make(map[string]int)
	var ordem []string
	var somas []acumulador

	for _, a := range itens {
		cat := categoriaOuPadrao(a)
		i, ok := indice[cat]
		if !ok {
			i = len(somas)
			indice[cat] = i
			ordem = append(ordem, cat)
			somas = append(somas, acumulador{})
		}
		somas[i].count++
		if v, err := decimal.NewFromString(a.Preco); err == nil {
			somas[i].soma = somas[i].soma.Add(v)
		}
	}

	medias := make([]MediaCategoria, len(ordem))
	for i, cat := range ordem {
		medias[i] = MediaCategoria{
			Rotulo: cat,
			Media:  somas[i].soma.Div(decimal.NewFromInt(int64(somas[i].count))).Round(2),
		}
	}
	return medias
}

// PorSeculo counts artifacts per normalized century label, sorted
// ascending by the numeric century extracted from each label. Labels
// without an extractable number (roman numerals, "Desconhecido") sort
// as 0; ties keep first-seen order.
func PorSeculo(itens []model.Artefato) []Grupo {
	indice := make(map[string]int)
	var grupos []Grupo
	for _, a := range itens {
		rotulo := format.SeculoDoPeriodo(a.Periodo)
		i, ok := indice[rotulo]
		if !ok {
			i = len(grupos)
			indice[rotulo] = i
			grupos = append(grupos, Grupo{Rotulo: rotulo})
		}
		grupos[i].Quantidade++
	}

	sort.SliceStable(grupos, func(i, j int) bool {
		return format.NumeroDoSeculo(grupos[i].Rotulo) < format.NumeroDoSeculo(grupos[j].Rotulo)
	})
	return grupos
}

// materialSepRe splits a material list on commas and on the standalone
// connective "e" ("Madeira, folha de ouro e pigmento").
var materialSepRe = regexp.MustCompile(`\s*,\s*|\s+e\s+`)

// MateriaisMaisComuns counts individual material mentions across the
// collection and returns the most frequent ones, descending by count
// with first-seen order breaking ties. A limite <= 0 falls back to
// LimiteMateriais. Artifacts without a material contribute nothing.
func MateriaisMaisComuns(itens []model.Artefato, limite int) []Grupo {
	if limite <= 0 {
		limite = LimiteMateriais
	}

	indice := make(map[string]int)
	var grupos []Grupo
	for _, a := range itens {
		for _, m := range materialSepRe.Split(a.Material, -1) {
			m = strings.TrimSpace(m)
			if m == "" {
				continue
			}
			i, ok := indice[m]
			if !ok {
				i = len(grupos)
				indice[m] = i
				grupos = append(grupos, Grupo{Rotulo: m})
			}
			grupos[i].Quantidade++
		}
	}

	sort.SliceStable(grupos, func(i, j int) bool {
		return grupos[i].Quantidade > grupos[j].Quantidade
	})
	if len(grupos) > limite {
		grupos = grupos[:limite]
	}
	return grupos
}

// ResumoGeral computes collection totals. Total counts every artifact,
// ValorTotal sums the parseable prices and PrecoMedio divides the
// total value by the full item count.
func ResumoGeral(itens []model.Artefato) Resumo {
	r := Resumo{Total: len(itens)}
	for _, a := range itens {
		if v, err := decimal.NewFromString(a.Preco); err == nil {
			r.ValorTotal = r.ValorTotal.Add(v)
		}
	}
	if r.Total > 0 {
		r.PrecoMedio = r.ValorTotal.Div(decimal.NewFromInt(int64(r.Total))).Round(2)
	}
	return r
}
