package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/acervodigital/acervo/internal/imaging"
	"github.com/acervodigital/acervo/internal/model"
	"github.com/acervodigital/acervo/internal/store"
)

// ArtefatosHandler handles artifact CRUD endpoints. ImagensDir is the
// directory where uploaded artifact images are written; uploads are
// rejected when it is empty.
type ArtefatosHandler struct {
	DB         *sql.DB
	ImagensDir string
}

// List handles GET /api/artefatos.
func (h *ArtefatosHandler) List(w http.ResponseWriter, r *http.Request) {
	artefatos, err := store.ListArtefatos(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list artifacts")
		return
	}
	if artefatos == nil {
		artefatos = []model.Artefato{}
	}
	jsonResponse(w, http.StatusOK, artefatos)
}

// Create handles POST /api/artefatos.
func (h *ArtefatosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a model.Artefato
	if err := decodeJSON(r, &a); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if a.Nome == "" {
		jsonError(w, http.StatusBadRequest, "nome required")
		return
	}

	criado, err := store.CreateArtefato(r.Context(), h.DB, a)
	if errors.Is(err, store.ErrPrecoInvalido) {
		jsonError(w, http.StatusBadRequest, "preco must be a non-negative number")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create artifact")
		return
	}

	jsonResponse(w, http.StatusCreated, criado)
}

// Get handles GET /api/artefatos/{id}.
func (h *ArtefatosHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	a, err := store.GetArtefato(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get artifact")
		return
	}
	if a == nil {
		jsonError(w, http.StatusNotFound, "artifact not found")
		return
	}

	jsonResponse(w, http.StatusOK, a)
}

// Update handles PUT /api/artefatos/{id}.
func (h *ArtefatosHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	var a model.Artefato
	if err := decodeJSON(r, &a); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if a.Nome == "" {
		jsonError(w, http.StatusBadRequest, "nome required")
		return
	}

	atualizado, err := store.UpdateArtefato(r.Context(), h.DB, id, a)
	if errors.Is(err, store.ErrPrecoInvalido) {
		jsonError(w, http.StatusBadRequest, "preco must be a non-negative number")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update artifact")
		return
	}
	if atualizado == nil {
		jsonError(w, http.StatusNotFound, "artifact not found")
		return
	}

	jsonResponse(w, http.StatusOK, atualizado)
}

// Delete handles DELETE /api/artefatos/{id}.
func (h *ArtefatosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	ok, err := store.DeleteArtefato(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete artifact")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "artifact not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "artifact deleted"})
}

// UploadImagem handles PUT /api/artefatos/{id}/imagem. The image is
// validated and downscaled, written to the images directory as
// <id>.jpg and the artifact's imagem filename updated.
func (h *ArtefatosHandler) UploadImagem(w http.ResponseWriter, r *http.Request) {
	if h.ImagensDir == "" {
		jsonError(w, http.StatusNotImplemented, "image storage not configured")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	a, err := store.GetArtefato(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get artifact")
		return
	}
	if a == nil {
		jsonError(w, http.StatusNotFound, "artifact not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("imagem")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "imagem file required")
		return
	}
	defer file.Close()

	data, err := imaging.Preparar(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename := fmt.Sprintf("%d.jpg", id)
	if err := os.WriteFile(filepath.Join(h.ImagensDir, filename), data, 0644); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	if err := store.SetArtefatoImagem(r.Context(), h.DB, id, filename); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image filename")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"imagem": filename})
}
