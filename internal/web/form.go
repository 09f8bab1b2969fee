package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acervodigital/acervo/internal/client"
	"github.com/acervodigital/acervo/internal/model"
	"github.com/acervodigital/acervo/internal/view"
)

type cadastroData struct {
	PageData
	Edicao     bool
	Formulario view.Formulario
}

// Cadastro handles GET /cadastro: the create form by default, the edit
// form when an id parameter is present (pre-filled from the store).
func (s *Server) Cadastro(w http.ResponseWriter, r *http.Request) {
	dados := cadastroData{PageData: PageData{Titulo: "Cadastrar Novo Artefato"}}

	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		dados.Pronto()
		s.Templates.Render(w, "cadastro.html", &dados)
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		dados.Falhou("ID do artefato inválido.")
		s.Templates.Render(w, "cadastro.html", &dados)
		return
	}

	a, err := s.Client.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to load artifact for editing", "id", id, "error", err)
		if client.IsNotFound(err) {
			dados.Falhou("Artefato não encontrado para edição.")
		} else {
			dados.Falhou("Erro de conexão com o servidor de dados.")
		}
		s.Templates.Render(w, "cadastro.html", &dados)
		return
	}

	dados.Pronto()
	dados.Titulo = "Editar Artefato Existente"
	dados.Edicao = true
	dados.Formulario = view.PreencherFormulario(*a)
	s.Templates.Render(w, "cadastro.html", &dados)
}

// CadastroSubmit handles POST /cadastro. It builds the artifact
// payload from the form and creates or updates it; success navigates
// to the detail page of the resulting artifact, failure re-renders the
// form with the submitted values intact (no partial save).
func (s *Server) CadastroSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	formulario := view.Formulario{
		Nome:         r.FormValue("nome"),
		Descricao:    r.FormValue("descricao"),
		Preco:        r.FormValue("preco"),
		Categoria:    r.FormValue("categoria"),
		Material:     r.FormValue("material"),
		Periodo:      r.FormValue("periodo"),
		Imagem:       r.FormValue("imagem"),
		Destaque:     r.FormValue("destaque") != "",
		DataCadastro: r.FormValue("data_cadastro"),
	}

	dados := cadastroData{
		PageData:   PageData{Titulo: "Cadastrar Novo Artefato"},
		Formulario: formulario,
	}

	var id int64
	edicao := false
	if idParam := r.FormValue("id"); idParam != "" {
		parsed, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		id = parsed
		edicao = true
		dados.Titulo = "Editar Artefato Existente"
		dados.Edicao = true
		dados.Formulario.ID = id
	}

	payload := model.Artefato{
		Nome:         formulario.Nome,
		Descricao:    formulario.Descricao,
		Preco:        formulario.Preco,
		Categoria:    formulario.Categoria,
		Material:     formulario.Material,
		Periodo:      formulario.Periodo,
		Imagem:       formulario.Imagem,
		Destaque:     formulario.Destaque,
		DataCadastro: formulario.DataCadastro,
	}

	dados.Enviando()

	var salvo *model.Artefato
	var err error
	if edicao {
		salvo, err = s.Client.Update(r.Context(), id, payload)
	} else {
		salvo, err = s.Client.Create(r.Context(), payload)
	}
	if err != nil {
		slog.Error("failed to save artifact", "edicao", edicao, "error", err)
		if status := client.StatusOf(err); status != 0 {
			dados.Falhou(fmt.Sprintf("Falha ao salvar o artefato. Status: %d", status))
		} else {
			dados.Falhou("Erro de conexão com o servidor de dados.")
		}
		s.Templates.Render(w, "cadastro.html", &dados)
		return
	}

	slog.Info("artifact saved", "id", salvo.ID, "nome", salvo.Nome, "edicao", edicao)
	http.Redirect(w, r, fmt.Sprintf("/detalhes?id=%d", salvo.ID), http.StatusSeeOther)
}
