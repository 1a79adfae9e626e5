package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/montbiel/controle-cozinha-ibft/internal/checkin"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
	"github.com/montbiel/controle-cozinha-ibft/internal/funcionario"
	"github.com/montbiel/controle-cozinha-ibft/internal/prato"
)

// Server exposes the kitchen resources over HTTP.
type Server struct {
	estoque      *estoque.Repository
	funcionarios *funcionario.Repository
	pratos       *prato.Repository
	checkins     *checkin.Repository

	// estoqueMinimo is the low-stock threshold reported by the
	// dashboard endpoint.
	estoqueMinimo int

	mux *http.ServeMux
}

// NewServer wires the repositories into a routed Server.
func NewServer(
	estoqueRepo *estoque.Repository,
	funcionarioRepo *funcionario.Repository,
	pratoRepo *prato.Repository,
	checkinRepo *checkin.Repository,
	estoqueMinimo int,
) *Server {
	s := &Server{
		estoque:       estoqueRepo,
		funcionarios:  funcionarioRepo,
		pratos:        pratoRepo,
		checkins:      checkinRepo,
		estoqueMinimo: estoqueMinimo,
		mux:           http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	s.mux.HandleFunc("GET /api/estoque", s.handleListEstoque)
	s.mux.HandleFunc("POST /api/estoque", s.handleCreateEstoque)
	s.mux.HandleFunc("PUT /api/estoque/{id}", s.handleUpdateEstoque)
	s.mux.HandleFunc("DELETE /api/estoque/{id}", s.handleDeleteEstoque)

	s.mux.HandleFunc("GET /api/funcionarios", s.handleListFuncionarios)
	s.mux.HandleFunc("POST /api/funcionarios", s.handleCreateFuncionario)
	s.mux.HandleFunc("PUT /api/funcionarios/{id}", s.handleUpdateFuncionario)
	s.mux.HandleFunc("DELETE /api/funcionarios/{id}", s.handleDeleteFuncionario)

	s.mux.HandleFunc("GET /api/pratos", s.handleListPratos)
	s.mux.HandleFunc("POST /api/pratos", s.handleCreatePrato)
	s.mux.HandleFunc("PUT /api/pratos/{id}", s.handleUpdatePrato)
	s.mux.HandleFunc("DELETE /api/pratos/{id}", s.handleDeletePrato)

	// Check-ins are immutable: list and create only.
	s.mux.HandleFunc("GET /api/checkins", s.handleListCheckins)
	s.mux.HandleFunc("POST /api/checkins", s.handleCreateCheckin)
	s.mux.HandleFunc("GET /api/checkins/hoje", s.handleCheckinsHoje)
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API funcionando corretamente",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError mirrors FastAPI's {"detail": ...} error shape, which the
// existing frontend already understands.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}
	return true
}
