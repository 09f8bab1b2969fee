package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/acervodigital/acervo/internal/chart"
	"github.com/acervodigital/acervo/internal/format"
	"github.com/acervodigital/acervo/internal/stats"
)

// Dashboard chart slots, matched by canvas IDs in the template.
const (
	slotCategoria = "categoria"
	slotPreco     = "preco"
	slotPeriodo   = "periodo"
	slotMaterial  = "material"
)

// paginaHandle is the server-side chart handle: the page owns no
// browser resources, so disposal is a no-op. The browser script
// destroys and recreates its Chart.js instances from the replaced
// descriptors.
type paginaHandle struct{}

func (paginaHandle) Dispose() {}

type dashboardData struct {
	PageData
	Total      int
	ValorTotal string
	PrecoMedio string
	ChartsJSON template.JS
}

// Dashboard handles GET /dashboard: one collection fetch feeds the
// summary numbers and the four chart descriptors. An empty collection
// renders zero states instead of failing.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	dados := dashboardData{PageData: PageData{Titulo: "Dashboard do Acervo"}}

	itens, err := s.Client.List(r.Context())
	if err != nil {
		slog.Error("failed to load collection for dashboard", "error", err)
		dados.Falhou(fmt.Sprintf(
			"Não foi possível carregar os dados do dashboard. Verifique se o servidor de dados está acessível em %s.",
			s.Client.Endpoint(),
		))
		s.Templates.Render(w, "dashboard.html", &dados)
		return
	}

	resumo := stats.ResumoGeral(itens)
	dados.Total = resumo.Total
	dados.ValorTotal = format.Moeda(resumo.ValorTotal)
	dados.PrecoMedio = format.Moeda(resumo.PrecoMedio)

	m := chart.NewManager(func(string, *chart.Config) chart.Handle { return paginaHandle{} })
	m.RenderOrReplace(slotCategoria, chart.Categorias(stats.PorCategoria(itens)))
	m.RenderOrReplace(slotPreco, chart.PrecoMedio(stats.PrecoMedioPorCategoria(itens)))
	m.RenderOrReplace(slotPeriodo, chart.Seculos(stats.PorSeculo(itens)))
	m.RenderOrReplace(slotMaterial, chart.Materiais(stats.MateriaisMaisComuns(itens, 0)))

	encoded, err := json.Marshal(m.Configs())
	if err != nil {
		slog.Error("failed to encode chart descriptors", "error", err)
		dados.Falhou("Erro ao montar os gráficos do dashboard.")
		s.Templates.Render(w, "dashboard.html", &dados)
		return
	}

	dados.Pronto()
	dados.ChartsJSON = template.JS(encoded)
	s.Templates.Render(w, "dashboard.html", &dados)
}
