// Package view turns artifacts into presentation-ready structures for
// the page templates. All transforms are pure.
package view

import (
	"strings"

	"github.com/acervodigital/acervo/internal/format"
	"github.com/acervodigital/acervo/internal/model"
)

// ImagemPrefix is the fixed directory prefix prepended to stored image
// filenames for display. The stored value is always a bare filename.
const ImagemPrefix = "/imagens/"

// LimiteDescricao is the card/carousel description length, in runes.
const LimiteDescricao = 100

// Fallback labels for missing optional fields.
const (
	MaterialNaoEspecificado = "Não especificado"
	DataIndisponivel        = "N/A"
)

// Cartao is a list card for one artifact.
type Cartao struct {
	ID             int64
	Nome           string
	DescricaoCurta string
	PrecoFormatado string
	ImagemURL      string
}

// Slide is one carousel entry. Only featured artifacts become slides
// and the first one is marked active.
type Slide struct {
	ID             int64
	Nome           string
	DescricaoCurta string
	ImagemURL      string
	Ativo          bool
}

// Detalhe is the full detail view of an artifact, with display
// fallbacks applied.
type Detalhe struct {
	ID             int64
	Nome           string
	Descricao      string
	PrecoFormatado string
	Categoria      string
	Material       string
	Periodo        string
	DataCadastro   string
	ImagemURL      string
}

// Formulario carries the editable field values for the create/edit
// form. Preco is the plain numeric string and Imagem the bare
// filename, both ready for input fields.
type Formulario struct {
	ID           int64
	Nome         string
	Descricao    string
	Preco        string
	Categoria    string
	Material     string
	Periodo      string
	Imagem       string
	Destaque     bool
	DataCadastro string
}

// Resumir truncates a description for card display, appending an
// ellipsis when it was cut.
func Resumir(descricao string) string {
	runes := []rune(descricao)
	if len(runes) <= LimiteDescricao {
		return descricao
	}
	return string(runes[:LimiteDescricao]) + "..."
}

// ImagemURL builds the display path for a stored image filename, or
// returns empty when no image is set.
func ImagemURL(imagem string) string {
	if imagem == "" {
		return ""
	}
	return ImagemPrefix + imagem
}

// Cartoes builds list cards for the whole collection.
func Cartoes(itens []model.Artefato) []Cartao {
	cartoes := make([]Cartao, 0, len(itens))
	for _, a := range itens {
		cartoes = append(cartoes, Cartao{
			ID:             a.ID,
			Nome:           a.Nome,
			DescricaoCurta: Resumir(a.Descricao),
			PrecoFormatado: format.MoedaDe(a.Preco),
			ImagemURL:      ImagemURL(a.Imagem),
		})
	}
	return cartoes
}

// Slides builds carousel entries from the featured artifacts, keeping
// collection order and marking the first slide active.
func Slides(itens []model.Artefato) []Slide {
	var slides []Slide
	for _, a := range itens {
		if !a.Destaque {
			continue
		}
		slides = append(slides, Slide{
			ID:             a.ID,
			Nome:           a.Nome,
			DescricaoCurta: Resumir(a.Descricao),
			ImagemURL:      ImagemURL(a.Imagem),
			Ativo:          len(slides) == 0,
		})
	}
	return slides
}

// NovoDetalhe builds the detail view for one artifact.
func NovoDetalhe(a model.Artefato) Detalhe {
	material := a.Material
	if strings.TrimSpace(material) == "" {
		material = MaterialNaoEspecificado
	}
	dataCadastro := a.DataCadastro
	if dataCadastro == "" {
		dataCadastro = DataIndisponivel
	}
	return Detalhe{
		ID:             a.ID,
		Nome:           a.Nome,
		Descricao:      a.Descricao,
		PrecoFormatado: format.MoedaDe(a.Preco),
		Categoria:      a.Categoria,
		Material:       material,
		Periodo:        a.Periodo,
		DataCadastro:   dataCadastro,
		ImagemURL:      ImagemURL(a.Imagem),
	}
}

// PreencherFormulario builds form field values from an existing
// artifact for edit mode, stripping the image directory prefix when a
// full path was stored by mistake.
func PreencherFormulario(a model.Artefato) Formulario {
	return Formulario{
		ID:           a.ID,
		Nome:         a.Nome,
		Descricao:    a.Descricao,
		Preco:        a.Preco,
		Categoria:    a.Categoria,
		Material:     a.Material,
		Periodo:      a.Periodo,
		Imagem:       strings.TrimPrefix(a.Imagem, ImagemPrefix),
		Destaque:     a.Destaque,
		DataCadastro: a.DataCadastro,
	}
}
