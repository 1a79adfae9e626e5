package api

import (
	"net/http"
	"strings"

	"github.com/montbiel/controle-cozinha-ibft/internal/checkin"
	"github.com/montbiel/controle-cozinha-ibft/internal/compras"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
	"github.com/montbiel/controle-cozinha-ibft/internal/funcionario"
	"github.com/montbiel/controle-cozinha-ibft/internal/prato"
	"github.com/montbiel/controle-cozinha-ibft/internal/shared"
)

// Estoque

func (s *Server) handleListEstoque(w http.ResponseWriter, r *http.Request) {
	items, err := s.estoque.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	q := r.URL.Query()
	items = estoque.Filter(items, q.Get("categoria"), q.Get("busca"))
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateEstoque(w http.ResponseWriter, r *http.Request) {
	var in estoque.ItemCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Nome) == "" {
		writeError(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}
	if in.Quantidade < 0 {
		writeError(w, http.StatusBadRequest, "quantidade não pode ser negativa")
		return
	}

	item, err := s.estoque.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateEstoque(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in estoque.ItemUpdate
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := s.estoque.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Item não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteEstoque(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := s.estoque.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Item não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item removido com sucesso"})
}

// Funcionários

func (s *Server) handleListFuncionarios(w http.ResponseWriter, r *http.Request) {
	funcs, err := s.funcionarios.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if funcs == nil {
		funcs = []funcionario.Funcionario{}
	}
	writeJSON(w, http.StatusOK, funcs)
}

func (s *Server) handleCreateFuncionario(w http.ResponseWriter, r *http.Request) {
	var in funcionario.FuncionarioCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Nome) == "" {
		writeError(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	f, err := s.funcionarios.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleUpdateFuncionario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in funcionario.FuncionarioUpdate
	if !decodeBody(w, r, &in) {
		return
	}

	f, err := s.funcionarios.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if f == nil {
		writeError(w, http.StatusNotFound, "Funcionário não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleDeleteFuncionario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := s.funcionarios.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Funcionário não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Funcionário removido com sucesso"})
}

// Pratos do dia

func (s *Server) handleListPratos(w http.ResponseWriter, r *http.Request) {
	pratos, err := s.pratos.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pratos == nil {
		pratos = []prato.Prato{}
	}
	writeJSON(w, http.StatusOK, pratos)
}

func (s *Server) handleCreatePrato(w http.ResponseWriter, r *http.Request) {
	var in prato.PratoCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Nome) == "" {
		writeError(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}
	if in.Data == "" {
		in.Data = shared.Today()
	}

	p, err := s.pratos.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePrato(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in prato.PratoUpdate
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := s.pratos.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Prato não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePrato(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := s.pratos.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Prato não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Prato removido com sucesso"})
}

// Check-ins

func (s *Server) handleListCheckins(w http.ResponseWriter, r *http.Request) {
	checkins, err := s.checkins.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if checkins == nil {
		checkins = []checkin.CheckIn{}
	}
	writeJSON(w, http.StatusOK, checkins)
}

func (s *Server) handleCreateCheckin(w http.ResponseWriter, r *http.Request) {
	var in checkin.CheckInCreate
	if !decodeBody(w, r, &in) {
		return
	}

	f, err := s.funcionarios.Get(r.Context(), in.FuncionarioID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if f == nil {
		writeError(w, http.StatusNotFound, "Funcionário não encontrado")
		return
	}

	p, err := s.pratos.Get(r.Context(), in.PratoID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Prato não encontrado")
		return
	}

	if in.Data == "" {
		in.Data = shared.Today()
	}

	c, err := s.checkins.Create(r.Context(), checkin.CheckIn{
		FuncionarioID:   f.ID,
		FuncionarioNome: f.Nome,
		PratoID:         p.ID,
		PratoNome:       p.Nome,
		Data:            in.Data,
		Horario:         in.Horario,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCheckinsHoje(w http.ResponseWriter, r *http.Request) {
	checkins, err := s.checkins.ListByDate(r.Context(), shared.Today())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if checkins == nil {
		checkins = []checkin.CheckIn{}
	}
	writeJSON(w, http.StatusOK, checkins)
}

// Dashboard

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	items, err := s.estoque.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	funcs, err := s.funcionarios.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	hoje, err := s.checkins.ListByDate(r.Context(), shared.Today())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ativos := 0
	for _, f := range funcs {
		if f.Ativo {
			ativos++
		}
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"total_estoque":       len(items),
		"itens_estoque_baixo": len(compras.Derive(items, s.estoqueMinimo)),
		"funcionarios_ativos": ativos,
		"checkins_hoje":       len(hoje),
	})
}
