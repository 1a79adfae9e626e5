package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/montbiel/controle-cozinha-ibft/internal/checkin"
	"github.com/montbiel/controle-cozinha-ibft/internal/database"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
	"github.com/montbiel/controle-cozinha-ibft/internal/funcionario"
	"github.com/montbiel/controle-cozinha-ibft/internal/prato"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srv := NewServer(
		estoque.NewRepository(db.SQL),
		funcionario.NewRepository(db.SQL),
		prato.NewRepository(db.SQL),
		checkin.NewRepository(db.SQL),
		10,
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	status := doJSON(t, http.MethodGet, ts.URL+"/api/health", nil, &body)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %q", body["status"])
	}
}

func TestEstoqueCRUD(t *testing.T) {
	ts := newTestServer(t)

	t.Run("EmptyListIsArray", func(t *testing.T) {
		var items []estoque.Item
		status := doJSON(t, http.MethodGet, ts.URL+"/api/estoque", nil, &items)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("Expected empty array, got %v", items)
		}
	})

	var created estoque.Item
	t.Run("Create", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
			estoque.ItemCreate{Nome: "Arroz", Quantidade: 3, Unidade: "kg", Categoria: "Grãos"}, &created)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if created.ID == 0 {
			t.Error("Expected a generated id")
		}
		if created.DataCriacao == "" || created.DataAtualizacao == "" {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("CreateBlankNameRejected", func(t *testing.T) {
		var errBody map[string]string
		status := doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
			estoque.ItemCreate{Nome: "   ", Quantidade: 1}, &errBody)
		if status != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", status)
		}
		if errBody["detail"] == "" {
			t.Error("Expected a detail message")
		}
	})

	t.Run("Update", func(t *testing.T) {
		q := 25
		var updated estoque.Item
		status := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/estoque/%d", ts.URL, created.ID),
			estoque.ItemUpdate{Quantidade: &q}, &updated)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if updated.Quantidade != 25 {
			t.Errorf("Expected quantidade 25, got %d", updated.Quantidade)
		}
		if updated.Nome != "Arroz" {
			t.Errorf("Expected untouched nome 'Arroz', got %q", updated.Nome)
		}
	})

	t.Run("UpdateUnknownIs404", func(t *testing.T) {
		q := 1
		status := doJSON(t, http.MethodPut, ts.URL+"/api/estoque/9999",
			estoque.ItemUpdate{Quantidade: &q}, nil)
		if status != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", status)
		}
	})

	t.Run("FilterByCategoryAndSearch", func(t *testing.T) {
		doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
			estoque.ItemCreate{Nome: "Feijão", Quantidade: 15, Unidade: "kg", Categoria: "Grãos"}, nil)
		doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
			estoque.ItemCreate{Nome: "Leite", Quantidade: 8, Unidade: "L", Categoria: "Laticínios"}, nil)

		var items []estoque.Item
		doJSON(t, http.MethodGet, ts.URL+"/api/estoque?categoria=Grãos&busca=feijao", nil, &items)
		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		if items[0].Nome != "Feijão" {
			t.Errorf("Expected 'Feijão', got %q", items[0].Nome)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		status := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/estoque/%d", ts.URL, created.ID), nil, nil)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}

		status = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/estoque/%d", ts.URL, created.ID), nil, nil)
		if status != http.StatusNotFound {
			t.Fatalf("Expected 404 on second delete, got %d", status)
		}
	})
}

func TestFuncionarioDefaults(t *testing.T) {
	ts := newTestServer(t)

	var f funcionario.Funcionario
	status := doJSON(t, http.MethodPost, ts.URL+"/api/funcionarios",
		map[string]any{"nome": "Maria", "cargo": "Cozinheira"}, &f)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !f.Ativo {
		t.Error("Expected ativo to default to true")
	}
}

func TestCheckinFlow(t *testing.T) {
	ts := newTestServer(t)

	var f funcionario.Funcionario
	doJSON(t, http.MethodPost, ts.URL+"/api/funcionarios",
		map[string]any{"nome": "Maria", "cargo": "Cozinheira"}, &f)

	var p prato.Prato
	doJSON(t, http.MethodPost, ts.URL+"/api/pratos",
		map[string]any{"nome": "Feijoada", "descricao": "Completa"}, &p)

	t.Run("CreateResolvesNames", func(t *testing.T) {
		var c checkin.CheckIn
		status := doJSON(t, http.MethodPost, ts.URL+"/api/checkins",
			checkin.CheckInCreate{FuncionarioID: f.ID, PratoID: p.ID, Horario: "12:30"}, &c)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if c.FuncionarioNome != "Maria" || c.PratoNome != "Feijoada" {
			t.Errorf("Expected resolved names, got %q / %q", c.FuncionarioNome, c.PratoNome)
		}
		if c.Data == "" {
			t.Error("Expected data to default to today")
		}
	})

	t.Run("DanglingFuncionarioIs404", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/checkins",
			checkin.CheckInCreate{FuncionarioID: 9999, PratoID: p.ID}, nil)
		if status != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", status)
		}
	})

	t.Run("TodayFilter", func(t *testing.T) {
		var hoje []checkin.CheckIn
		status := doJSON(t, http.MethodGet, ts.URL+"/api/checkins/hoje", nil, &hoje)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if len(hoje) != 1 {
			t.Fatalf("Expected 1 checkin today, got %d", len(hoje))
		}
	})

	t.Run("NoUpdateOrDeleteRoutes", func(t *testing.T) {
		status := doJSON(t, http.MethodDelete, ts.URL+"/api/checkins/1", nil, nil)
		if status == http.StatusOK {
			t.Error("Expected delete on checkins to be rejected")
		}
	})
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
		estoque.ItemCreate{Nome: "Arroz", Quantidade: 3, Unidade: "kg", Categoria: "Grãos"}, nil)
	doJSON(t, http.MethodPost, ts.URL+"/api/estoque",
		estoque.ItemCreate{Nome: "Feijão", Quantidade: 15, Unidade: "kg", Categoria: "Grãos"}, nil)
	doJSON(t, http.MethodPost, ts.URL+"/api/funcionarios",
		map[string]any{"nome": "Maria", "cargo": "Cozinheira"}, nil)

	var dash map[string]int
	status := doJSON(t, http.MethodGet, ts.URL+"/api/dashboard", nil, &dash)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if dash["total_estoque"] != 2 {
		t.Errorf("Expected total_estoque 2, got %d", dash["total_estoque"])
	}
	if dash["itens_estoque_baixo"] != 1 {
		t.Errorf("Expected itens_estoque_baixo 1, got %d", dash["itens_estoque_baixo"])
	}
	if dash["funcionarios_ativos"] != 1 {
		t.Errorf("Expected funcionarios_ativos 1, got %d", dash["funcionarios_ativos"])
	}
}
