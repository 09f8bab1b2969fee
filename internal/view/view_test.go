package view

import (
	"strings"
	"testing"

	"github.com/acervodigital/acervo/internal/model"
)

func TestResumir(t *testing.T) {
	curta := "Vaso de cerâmica"
	if got := Resumir(curta); got != curta {
		t.Errorf("short description should be untouched, got %q", got)
	}

	longa := strings.Repeat("é", 150)
	got := Resumir(longa)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if n := len([]rune(got)); n != LimiteDescricao+3 {
		t.Errorf("expected %d runes, got %d", LimiteDescricao+3, n)
	}

	exata := strings.Repeat("a", LimiteDescricao)
	if got := Resumir(exata); got != exata {
		t.Errorf("description at the limit should be untouched")
	}
}

func TestCartoes(t *testing.T) {
	itens := []model.Artefato{
		{ID: 1, Nome: "Vaso", Descricao: "Cerâmica", Preco: "4850.00", Imagem: "vaso.jpg"},
		{ID: 2, Nome: "Moeda", Preco: "bad"},
	}

	cartoes := Cartoes(itens)
	if len(cartoes) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cartoes))
	}
	if cartoes[0].ImagemURL != "/imagens/vaso.jpg" {
		t.Errorf("expected prefixed image path, got %q", cartoes[0].ImagemURL)
	}
	if cartoes[0].PrecoFormatado != "R$ 4.850,00" {
		t.Errorf("expected formatted price, got %q", cartoes[0].PrecoFormatado)
	}
	if cartoes[1].PrecoFormatado != "R$ --" {
		t.Errorf("expected price placeholder for malformed price, got %q", cartoes[1].PrecoFormatado)
	}
	if cartoes[1].ImagemURL != "" {
		t.Errorf("expected empty image URL when no image, got %q", cartoes[1].ImagemURL)
	}
}

func TestSlides(t *testing.T) {
	itens := []model.Artefato{
		{ID: 1, Nome: "Comum", Destaque: false},
		{ID: 2, Nome: "Destaque A", Destaque: true},
		{ID: 3, Nome: "Destaque B", Destaque: true},
	}

	slides := Slides(itens)
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if !slides[0].Ativo {
		t.Error("first slide should be active")
	}
	if slides[1].Ativo {
		t.Error("second slide should not be active")
	}
	if slides[0].Nome != "Destaque A" {
		t.Errorf("expected collection order, got %q first", slides[0].Nome)
	}
}

func TestNovoDetalheFallbacks(t *testing.T) {
	d := NovoDetalhe(model.Artefato{ID: 1, Nome: "Machado", Preco: "760.00"})
	if d.Material != MaterialNaoEspecificado {
		t.Errorf("expected material fallback, got %q", d.Material)
	}
	if d.DataCadastro != DataIndisponivel {
		t.Errorf("expected date fallback, got %q", d.DataCadastro)
	}

	d = NovoDetalhe(model.Artefato{Material: "Pedra", DataCadastro: "2024-05-20"})
	if d.Material != "Pedra" || d.DataCadastro != "2024-05-20" {
		t.Errorf("fallbacks applied to present values: %+v", d)
	}
}

func TestPreencherFormularioStripsImagePrefix(t *testing.T) {
	f := PreencherFormulario(model.Artefato{
		ID:           7,
		Nome:         "Vaso",
		Preco:        "10.00",
		Imagem:       "/imagens/vaso.jpg",
		DataCadastro: "2024-03-11",
	})
	if f.Imagem != "vaso.jpg" {
		t.Errorf("expected stripped filename, got %q", f.Imagem)
	}
	if f.DataCadastro != "2024-03-11" {
		t.Errorf("expected data_cadastro carried into the form, got %q", f.DataCadastro)
	}

	f = PreencherFormulario(model.Artefato{Imagem: "vaso.jpg"})
	if f.Imagem != "vaso.jpg" {
		t.Errorf("bare filename should be untouched, got %q", f.Imagem)
	}
}
