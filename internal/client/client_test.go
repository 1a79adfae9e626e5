package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
)

func TestEstoque(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/estoque" {
			t.Errorf("Expected path '/api/estoque', got %q", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode([]estoque.Item{
			{ID: 1, Nome: "Arroz", Quantidade: 3, Unidade: "kg", Categoria: "Grãos"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL + "/api")
	items, err := c.Estoque(context.Background())
	if err != nil {
		t.Fatalf("Estoque failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Nome != "Arroz" {
		t.Errorf("Expected 'Arroz', got %q", items[0].Nome)
	}
}

func TestCreateEstoqueItemSendsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in estoque.ItemCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if in.Nome != "Leite" {
			t.Errorf("Expected nome 'Leite', got %q", in.Nome)
		}
		json.NewEncoder(w).Encode(estoque.Item{ID: 7, Nome: in.Nome, Quantidade: in.Quantidade, Unidade: in.Unidade})
	}))
	defer ts.Close()

	c := New(ts.URL + "/api")
	item, err := c.CreateEstoqueItem(context.Background(), estoque.ItemCreate{Nome: "Leite", Quantidade: 2, Unidade: "L"})
	if err != nil {
		t.Fatalf("CreateEstoqueItem failed: %v", err)
	}
	if item.ID != 7 {
		t.Errorf("Expected id 7, got %d", item.ID)
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Item não encontrado"})
	}))
	defer ts.Close()

	c := New(ts.URL + "/api")
	err := c.DeleteEstoqueItem(context.Background(), 99)
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if got := err.Error(); got != "api error: status 404: Item não encontrado" {
		t.Errorf("Unexpected error message: %q", got)
	}
}

func TestUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1/api")
	if _, err := c.Estoque(context.Background()); err == nil {
		t.Fatal("Expected an error for unreachable server, got nil")
	}
}
