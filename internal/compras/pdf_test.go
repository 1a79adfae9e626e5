package compras

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPDFFileName(t *testing.T) {
	cases := map[string]string{
		"Semana 1":        "lista-compras-Semana-1.pdf",
		"Churrasco!":      "lista-compras-Churrasco-.pdf",
		"compras/08 2026": "lista-compras-compras-08-2026.pdf",
		"ABC123":          "lista-compras-ABC123.pdf",
	}
	for in, want := range cases {
		require.Equal(t, want, PDFFileName(in))
	}
}

func listWithItems(n int) FixedList {
	list := FixedList{ID: "1", Nome: "Semana 1", DataCriacao: "2026-08-31T10:00:00Z"}
	for i := 0; i < n; i++ {
		list.Itens = append(list.Itens, ListItem{
			ID:         fmt.Sprintf("item-%d", i),
			Nome:       fmt.Sprintf("Item %d", i),
			Quantidade: 1,
			Unidade:    "un",
			Comprado:   i%2 == 0,
		})
	}
	return list
}

func TestRenderPDFEmptyListIsSinglePage(t *testing.T) {
	pdf := RenderPDF(listWithItems(0), time.Now())
	require.Equal(t, 1, pdf.PageCount())
	require.NoError(t, pdf.Error())
}

func TestRenderPDFPagination(t *testing.T) {
	// Items start at y=100 on the first page and advance 8mm per line,
	// breaking past y=250; that gives 19 lines on the first page and 28
	// on each page after it.
	cases := []struct {
		items, pages int
	}{
		{1, 1},
		{19, 1},
		{20, 2},
		{47, 2},
		{48, 3},
		{100, 4},
	}
	for _, tc := range cases {
		pdf := RenderPDF(listWithItems(tc.items), time.Now())
		require.NoError(t, pdf.Error())
		require.Equalf(t, tc.pages, pdf.PageCount(), "%d items", tc.items)
	}
}

func TestExportPDFWritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportPDF(listWithItems(3), dir, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "lista-compras-Semana-1.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}
