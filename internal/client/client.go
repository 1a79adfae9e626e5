package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/montbiel/controle-cozinha-ibft/internal/checkin"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
	"github.com/montbiel/controle-cozinha-ibft/internal/funcionario"
	"github.com/montbiel/controle-cozinha-ibft/internal/prato"
)

// Client talks to the kitchen API. The zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api").
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Detail != "" {
			return fmt.Errorf("api error: status %d: %s", resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Estoque

func (c *Client) Estoque(ctx context.Context) ([]estoque.Item, error) {
	var items []estoque.Item
	if err := c.do(ctx, http.MethodGet, "/estoque", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateEstoqueItem(ctx context.Context, in estoque.ItemCreate) (*estoque.Item, error) {
	var item estoque.Item
	if err := c.do(ctx, http.MethodPost, "/estoque", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateEstoqueItem(ctx context.Context, id int, in estoque.ItemUpdate) (*estoque.Item, error) {
	var item estoque.Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/estoque/%d", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteEstoqueItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/estoque/%d", id), nil, nil)
}

// Funcionários

func (c *Client) Funcionarios(ctx context.Context) ([]funcionario.Funcionario, error) {
	var funcs []funcionario.Funcionario
	if err := c.do(ctx, http.MethodGet, "/funcionarios", nil, &funcs); err != nil {
		return nil, err
	}
	return funcs, nil
}

func (c *Client) CreateFuncionario(ctx context.Context, in funcionario.FuncionarioCreate) (*funcionario.Funcionario, error) {
	var f funcionario.Funcionario
	if err := c.do(ctx, http.MethodPost, "/funcionarios", in, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) UpdateFuncionario(ctx context.Context, id int, in funcionario.FuncionarioUpdate) (*funcionario.Funcionario, error) {
	var f funcionario.Funcionario
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/funcionarios/%d", id), in, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) DeleteFuncionario(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/funcionarios/%d", id), nil, nil)
}

// Pratos do dia

func (c *Client) Pratos(ctx context.Context) ([]prato.Prato, error) {
	var pratos []prato.Prato
	if err := c.do(ctx, http.MethodGet, "/pratos", nil, &pratos); err != nil {
		return nil, err
	}
	return pratos, nil
}

func (c *Client) CreatePrato(ctx context.Context, in prato.PratoCreate) (*prato.Prato, error) {
	var p prato.Prato
	if err := c.do(ctx, http.MethodPost, "/pratos", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePrato(ctx context.Context, id int, in prato.PratoUpdate) (*prato.Prato, error) {
	var p prato.Prato
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pratos/%d", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePrato(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pratos/%d", id), nil, nil)
}

// Check-ins

func (c *Client) Checkins(ctx context.Context) ([]checkin.CheckIn, error) {
	var checkins []checkin.CheckIn
	if err := c.do(ctx, http.MethodGet, "/checkins", nil, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}

func (c *Client) CreateCheckin(ctx context.Context, in checkin.CheckInCreate) (*checkin.CheckIn, error) {
	var ci checkin.CheckIn
	if err := c.do(ctx, http.MethodPost, "/checkins", in, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

func (c *Client) CheckinsHoje(ctx context.Context) ([]checkin.CheckIn, error) {
	var checkins []checkin.CheckIn
	if err := c.do(ctx, http.MethodGet, "/checkins/hoje", nil, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}
