package chart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/acervodigital/acervo/internal/stats"
)

func TestCategorias(t *testing.T) {
	cfg := Categorias([]stats.Grupo{
		{Rotulo: "Cerâmica", Quantidade: 2},
		{Rotulo: "Prata", Quantidade: 1},
	})
	if cfg.Type != Pie {
		t.Errorf("expected pie, got %q", cfg.Type)
	}
	if len(cfg.Labels) != 2 || cfg.Labels[0] != "Cerâmica" {
		t.Errorf("unexpected labels: %v", cfg.Labels)
	}
	if len(cfg.Datasets) != 1 || cfg.Datasets[0].Data[0] != 2 {
		t.Errorf("unexpected dataset: %+v", cfg.Datasets)
	}
}

func TestPrecoMedio(t *testing.T) {
	cfg := PrecoMedio([]stats.MediaCategoria{
		{Rotulo: "A", Media: decimal.NewFromFloat(133.33)},
	})
	if cfg.Type != Bar {
		t.Errorf("expected bar, got %q", cfg.Type)
	}
	if cfg.Datasets[0].Data[0] != 133.33 {
		t.Errorf("unexpected value: %v", cfg.Datasets[0].Data)
	}
}

func TestSeculosEmpty(t *testing.T) {
	cfg := Seculos(nil)
	if cfg.Type != Line {
		t.Errorf("expected line, got %q", cfg.Type)
	}
	if len(cfg.Labels) != 0 || len(cfg.Datasets[0].Data) != 0 {
		t.Errorf("empty input should produce empty labels and data, got %+v", cfg)
	}
}

func TestMateriais(t *testing.T) {
	cfg := Materiais([]stats.Grupo{{Rotulo: "Madeira", Quantidade: 3}})
	if cfg.Type != Doughnut {
		t.Errorf("expected doughnut, got %q", cfg.Type)
	}
}

type handleSpy struct {
	slot     string
	disposed bool
}

func (h *handleSpy) Dispose() { h.disposed = true }

func TestManagerRenderOrReplace(t *testing.T) {
	var criados []*handleSpy
	m := NewManager(func(slot string, cfg *Config) Handle {
		h := &handleSpy{slot: slot}
		criados = append(criados, h)
		return h
	})

	m.RenderOrReplace("categoria", Categorias(nil))
	m.RenderOrReplace("periodo", Seculos(nil))
	if len(criados) != 2 {
		t.Fatalf("expected 2 charts created, got %d", len(criados))
	}
	if criados[0].disposed {
		t.Error("first render must not dispose anything")
	}

	// Re-rendering the same slot disposes the old handle.
	m.RenderOrReplace("categoria", Categorias([]stats.Grupo{{Rotulo: "X", Quantidade: 1}}))
	if !criados[0].disposed {
		t.Error("expected previous categoria handle to be disposed")
	}
	if criados[1].disposed {
		t.Error("periodo handle must stay alive")
	}

	if got := m.Config("categoria"); got == nil || len(got.Labels) != 1 {
		t.Errorf("expected replaced config, got %+v", got)
	}

	slots := m.Slots()
	if len(slots) != 2 || slots[0] != "categoria" || slots[1] != "periodo" {
		t.Errorf("expected stable slot order, got %v", slots)
	}

	m.Dispose()
	for i, h := range criados {
		if i == 0 {
			continue // already disposed by the replace
		}
		if !h.disposed {
			t.Errorf("handle %d not disposed by Dispose", i)
		}
	}
	if len(m.Slots()) != 0 {
		t.Error("expected no slots after Dispose")
	}
}
