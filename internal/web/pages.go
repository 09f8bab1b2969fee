package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acervodigital/acervo/internal/client"
	"github.com/acervodigital/acervo/internal/view"
)

type listagemData struct {
	PageData
	Slides  []view.Slide
	Cartoes []view.Cartao
}

// Listagem handles GET /: the carousel of featured artifacts plus the
// full card list.
func (s *Server) Listagem(w http.ResponseWriter, r *http.Request) {
	s.renderListagem(w, r, "")
}

// renderListagem fetches the collection and renders the listing page.
// erroExtra carries a message from a failed action (delete) that must
// be shown on top of an otherwise healthy listing.
func (s *Server) renderListagem(w http.ResponseWriter, r *http.Request, erroExtra string) {
	dados := listagemData{PageData: PageData{Titulo: "Coleção"}}

	itens, err := s.Client.List(r.Context())
	if err != nil {
		slog.Error("failed to load collection", "error", err)
		dados.Falhou(fmt.Sprintf(
			"Não foi possível carregar os dados. Verifique se o servidor de dados está acessível em %s.",
			s.Client.Endpoint(),
		))
		s.Templates.Render(w, "index.html", &dados)
		return
	}

	dados.Pronto()
	if erroExtra != "" {
		dados.Erro = erroExtra
	}
	dados.Slides = view.Slides(itens)
	dados.Cartoes = view.Cartoes(itens)
	s.Templates.Render(w, "index.html", &dados)
}

type detalhesData struct {
	PageData
	Detalhe view.Detalhe
}

// Detalhes handles GET /detalhes?id=N.
func (s *Server) Detalhes(w http.ResponseWriter, r *http.Request) {
	dados := detalhesData{PageData: PageData{Titulo: "Detalhes"}}

	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		// Terminal error: no fetch is attempted without an id.
		dados.Falhou("ID do artefato não fornecido.")
		s.Templates.Render(w, "detalhes.html", &dados)
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		dados.Falhou("ID do artefato inválido.")
		s.Templates.Render(w, "detalhes.html", &dados)
		return
	}

	a, err := s.Client.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to load artifact", "id", id, "error", err)
		if client.IsNotFound(err) {
			dados.Falhou(fmt.Sprintf("Artefato ID %d não encontrado.", id))
		} else {
			dados.Falhou("Erro de rede ou servidor de dados inacessível.")
		}
		s.Templates.Render(w, "detalhes.html", &dados)
		return
	}

	dados.Pronto()
	dados.Titulo = a.Nome
	dados.Detalhe = view.NovoDetalhe(*a)
	s.Templates.Render(w, "detalhes.html", &dados)
}

// Excluir handles POST /excluir/{id}. The confirmation happens on the
// page before the form is submitted. Success redirects to the listing
// so it is fetched again; failure re-renders the listing with the
// store's status and leaves everything else untouched.
func (s *Server) Excluir(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Client.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete artifact", "id", id, "error", err)
		if status := client.StatusOf(err); status != 0 {
			s.renderListagem(w, r, fmt.Sprintf("Falha ao excluir o artefato. Status: %d", status))
		} else {
			s.renderListagem(w, r, "Erro de conexão com o servidor de dados.")
		}
		return
	}

	slog.Info("artifact deleted", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
