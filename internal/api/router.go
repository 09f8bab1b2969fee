package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
// imagensDir is the directory for uploaded artifact images; pass ""
// to disable uploads.
func NewRouter(db *sql.DB, imagensDir string) http.Handler {
	mux := http.NewServeMux()

	artefatosHandler := &ArtefatosHandler{DB: db, ImagensDir: imagensDir}

	mux.HandleFunc("GET /api/artefatos", artefatosHandler.List)
	mux.HandleFunc("POST /api/artefatos", artefatosHandler.Create)
	mux.HandleFunc("GET /api/artefatos/{id}", artefatosHandler.Get)
	mux.HandleFunc("PUT /api/artefatos/{id}", artefatosHandler.Update)
	mux.HandleFunc("DELETE /api/artefatos/{id}", artefatosHandler.Delete)
	mux.HandleFunc("PUT /api/artefatos/{id}/imagem", artefatosHandler.UploadImagem)

	return mux
}
