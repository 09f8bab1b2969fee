package web

import (
	"net/http"

	"github.com/acervodigital/acervo/internal/client"
	webembed "github.com/acervodigital/acervo/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(c *client.Client) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Client:    c,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Pages.
	mux.HandleFunc("GET /{$}", s.Listagem)
	mux.HandleFunc("GET /detalhes", s.Detalhes)
	mux.HandleFunc("GET /cadastro", s.Cadastro)
	mux.HandleFunc("POST /cadastro", s.CadastroSubmit)
	mux.HandleFunc("GET /dashboard", s.Dashboard)

	// Delete action, reachable from the listing and detail pages.
	mux.HandleFunc("POST /excluir/{id}", s.Excluir)

	return mux, nil
}
