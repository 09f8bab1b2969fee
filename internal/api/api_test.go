package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acervodigital/acervo/internal/db"
	"github.com/acervodigital/acervo/internal/model"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, t.TempDir())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestArtefatosCRUDFlow(t *testing.T) {
	server := setupTestServer(t)

	// Create.
	resp := doJSON(t, "POST", server.URL+"/api/artefatos", model.Artefato{
		Nome:      "Vaso Marajoara",
		Descricao: "Cerâmica policromada",
		Preco:     "4850.00",
		Categoria: "Cerâmica",
		Destaque:  true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	var criado model.Artefato
	json.NewDecoder(resp.Body).Decode(&criado)
	resp.Body.Close()
	if criado.ID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if criado.DataCadastro == "" {
		t.Error("expected server-assigned data_cadastro")
	}

	// List.
	resp = doJSON(t, "GET", server.URL+"/api/artefatos", nil)
	var lista []model.Artefato
	json.NewDecoder(resp.Body).Decode(&lista)
	resp.Body.Close()
	if len(lista) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(lista))
	}

	// Get.
	resp = doJSON(t, "GET", fmt.Sprintf("%s/api/artefatos/%d", server.URL, criado.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Update preserves data_cadastro and rounds the price.
	resp = doJSON(t, "PUT", fmt.Sprintf("%s/api/artefatos/%d", server.URL, criado.ID), model.Artefato{
		Nome:         "Vaso Marajoara Restaurado",
		Preco:        "19.999",
		DataCadastro: "1999-01-01",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	var atualizado model.Artefato
	json.NewDecoder(resp.Body).Decode(&atualizado)
	resp.Body.Close()
	if atualizado.Preco != "20.00" {
		t.Errorf("expected price rounded to 20.00, got %q", atualizado.Preco)
	}
	if atualizado.DataCadastro != criado.DataCadastro {
		t.Errorf("expected data_cadastro %q preserved, got %q", criado.DataCadastro, atualizado.DataCadastro)
	}

	// Delete.
	resp = doJSON(t, "DELETE", fmt.Sprintf("%s/api/artefatos/%d", server.URL, criado.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Deleting again yields 404.
	resp = doJSON(t, "DELETE", fmt.Sprintf("%s/api/artefatos/%d", server.URL, criado.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateValidation(t *testing.T) {
	server := setupTestServer(t)

	// Missing name.
	resp := doJSON(t, "POST", server.URL+"/api/artefatos", model.Artefato{Preco: "10.00"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing nome: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Malformed price.
	resp = doJSON(t, "POST", server.URL+"/api/artefatos", model.Artefato{Nome: "X", Preco: "abc"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad preco: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGetMissingArtefato(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/artefatos/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, "GET", server.URL+"/api/artefatos/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListEmptyCollection(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/artefatos", nil)
	defer resp.Body.Close()

	var lista []model.Artefato
	if err := json.NewDecoder(resp.Body).Decode(&lista); err != nil {
		t.Fatalf("decoding empty list: %v", err)
	}
	if lista == nil || len(lista) != 0 {
		t.Errorf("expected empty JSON array, got %v", lista)
	}
}
