// Package chart builds render-ready chart descriptors from aggregated
// catalog data. A descriptor carries type, labels, datasets and
// options; the drawing capability (Chart.js in the bundled pages)
// consumes it as-is.
package chart

import (
	"github.com/acervodigital/acervo/internal/stats"
)

// Chart types understood by the rendering capability.
const (
	Pie      = "pie"
	Bar      = "bar"
	Line     = "line"
	Doughnut = "doughnut"
)

// Paleta is the catalog color palette, gold and earth tones.
var Paleta = []string{
	"#D4AF37", "#B8860B", "#5D4037", "#8D6E63", "#A1887F",
	"#C5A880", "#E6BE8A", "#F4E4A6", "#543813", "#8B7355",
}

const corBorda = "#2C2C2C"

// Dataset is one data series. BackgroundColor is either a single color
// or a per-value color list, matching the descriptor contract.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
}

// Config is a complete chart descriptor.
type Config struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []Dataset      `json:"datasets"`
	Options  map[string]any `json:"options,omitempty"`
}

func separar(grupos []stats.Grupo) ([]string, []float64) {
	rotulos := make([]string, 0, len(grupos))
	valores := make([]float64, 0, len(grupos))
	for _, g := range grupos {
		rotulos = append(rotulos, g.Rotulo)
		valores = append(valores, float64(g.Quantidade))
	}
	return rotulos, valores
}

// Categorias builds the category distribution pie chart.
func Categorias(grupos []stats.Grupo) *Config {
	rotulos, valores := separar(grupos)
	return &Config{
		Type:   Pie,
		Labels: rotulos,
		Datasets: []Dataset{{
			Data:            valores,
			BackgroundColor: Paleta,
			BorderColor:     corBorda,
			BorderWidth:     2,
		}},
		Options: map[string]any{
			"responsive": true,
			"plugins":    map[string]any{"legend": map[string]any{"position": "bottom"}},
		},
	}
}

// PrecoMedio builds the average-price-per-category bar chart.
func PrecoMedio(medias []stats.MediaCategoria) *Config {
	rotulos := make([]string, 0, len(medias))
	valores := make([]float64, 0, len(medias))
	for _, m := range medias {
		rotulos = append(rotulos, m.Rotulo)
		valores = append(valores, m.Media.InexactFloat64())
	}
	return &Config{
		Type:   Bar,
		Labels: rotulos,
		Datasets: []Dataset{{
			Label:           "Preço Médio (R$)",
			Data:            valores,
			BackgroundColor: Paleta[0],
			BorderColor:     Paleta[1],
			BorderWidth:     1,
		}},
		Options: map[string]any{
			"responsive": true,
			"scales":     map[string]any{"y": map[string]any{"beginAtZero": true}},
			"plugins":    map[string]any{"legend": map[string]any{"display": false}},
		},
	}
}

// Seculos builds the artifact-count-by-century line chart.
func Seculos(grupos []stats.Grupo) *Config {
	rotulos, valores := separar(grupos)
	return &Config{
		Type:   Line,
		Labels: rotulos,
		Datasets: []Dataset{{
			Label:           "Quantidade de Artefatos",
			Data:            valores,
			BackgroundColor: Paleta[2] + "20",
			BorderColor:     Paleta[2],
			BorderWidth:     3,
			Tension:         0.2,
			Fill:            true,
		}},
		Options: map[string]any{
			"responsive": true,
			"scales":     map[string]any{"y": map[string]any{"beginAtZero": true}},
		},
	}
}

// Materiais builds the top-materials doughnut chart.
func Materiais(grupos []stats.Grupo) *Config {
	rotulos, valores := separar(grupos)
	return &Config{
		Type:   Doughnut,
		Labels: rotulos,
		Datasets: []Dataset{{
			Data:            valores,
			BackgroundColor: Paleta[2:],
			BorderColor:     corBorda,
			BorderWidth:     2,
		}},
		Options: map[string]any{
			"responsive": true,
			"plugins":    map[string]any{"legend": map[string]any{"position": "bottom"}},
		},
	}
}
