package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/montbiel/controle-cozinha-ibft/internal/client"
	"github.com/montbiel/controle-cozinha-ibft/internal/compras"
	"github.com/montbiel/controle-cozinha-ibft/internal/config"
	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := compras.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open shopping lists store: %v", err)
	}
	manager := compras.NewManager(store)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "sugestoes":
		runSugestoes(ctx, cfg)
	case "listas":
		runListas(manager)
	case "criar":
		criarCmd := flag.NewFlagSet("criar", flag.ExitOnError)
		nome := criarCmd.String("nome", "", "Nome da nova lista")
		criarCmd.Parse(os.Args[2:])

		list, err := manager.CreateList(*nome)
		if err != nil {
			log.Fatalf("Failed to create list: %v", err)
		}
		if list == nil {
			fmt.Println("Nome da lista não pode ser vazio.")
			os.Exit(1)
		}
		fmt.Printf("Lista %q criada (id %s).\n", list.Nome, list.ID)
	case "add":
		addCmd := flag.NewFlagSet("add", flag.ExitOnError)
		listID := addCmd.String("lista", "", "ID da lista")
		nome := addCmd.String("nome", "", "Nome do item")
		quantidade := addCmd.Int("quantidade", 1, "Quantidade")
		unidade := addCmd.String("unidade", "", "Unidade (kg, L, unidades...)")
		categoria := addCmd.String("categoria", "", "Categoria")
		addCmd.Parse(os.Args[2:])

		item, err := manager.AddItem(*listID, compras.ItemInput{
			Nome:       *nome,
			Quantidade: *quantidade,
			Unidade:    *unidade,
			Categoria:  *categoria,
		})
		if err != nil {
			log.Fatalf("Failed to add item: %v", err)
		}
		if item == nil {
			fmt.Println("Item não adicionado: verifique o nome do item e o id da lista.")
			os.Exit(1)
		}
		fmt.Printf("Item %q adicionado (id %s).\n", item.Nome, item.ID)
	case "remover":
		removerCmd := flag.NewFlagSet("remover", flag.ExitOnError)
		listID := removerCmd.String("lista", "", "ID da lista")
		itemID := removerCmd.String("item", "", "ID do item")
		removerCmd.Parse(os.Args[2:])

		if err := manager.RemoveItem(*listID, *itemID); err != nil {
			log.Fatalf("Failed to remove item: %v", err)
		}
		fmt.Println("Item removido.")
	case "marcar":
		marcarCmd := flag.NewFlagSet("marcar", flag.ExitOnError)
		listID := marcarCmd.String("lista", "", "ID da lista")
		itemID := marcarCmd.String("item", "", "ID do item")
		marcarCmd.Parse(os.Args[2:])

		if err := manager.ToggleItem(*listID, *itemID); err != nil {
			log.Fatalf("Failed to toggle item: %v", err)
		}
		fmt.Println("Item atualizado.")
	case "excluir":
		excluirCmd := flag.NewFlagSet("excluir", flag.ExitOnError)
		listID := excluirCmd.String("lista", "", "ID da lista")
		force := excluirCmd.Bool("sim", false, "Excluir sem confirmação")
		excluirCmd.Parse(os.Args[2:])

		if !*force && !confirm("Tem certeza que deseja excluir esta lista? (s/n): ") {
			fmt.Println("Exclusão cancelada.")
			return
		}
		if err := manager.DeleteList(*listID); err != nil {
			log.Fatalf("Failed to delete list: %v", err)
		}
		fmt.Println("Lista excluída.")
	case "pdf":
		pdfCmd := flag.NewFlagSet("pdf", flag.ExitOnError)
		listID := pdfCmd.String("lista", "", "ID da lista")
		outDir := pdfCmd.String("out", ".", "Diretório de saída")
		pdfCmd.Parse(os.Args[2:])

		list := manager.Get(*listID)
		if list == nil {
			log.Fatalf("List %s not found", *listID)
		}
		path, err := compras.ExportPDF(*list, *outDir, time.Now())
		if err != nil {
			log.Fatalf("Failed to export PDF: %v", err)
		}
		fmt.Printf("PDF gerado em %s\n", path)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// runSugestoes prints the variable shopping list derived from the
// current stock. An unreachable API degrades to an empty suggestion
// list instead of aborting.
func runSugestoes(ctx context.Context, cfg *config.Config) {
	c := client.New(cfg.APIBaseURL)

	stock, err := c.Estoque(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch estoque from %s: %v", cfg.APIBaseURL, err)
		stock = []estoque.Item{}
	}

	sugestoes := compras.Derive(stock, cfg.EstoqueMinimo)
	if len(sugestoes) == 0 {
		fmt.Println("Nenhum item com estoque baixo no momento.")
		return
	}

	fmt.Printf("Itens com estoque baixo (menos de %d unidades):\n", cfg.EstoqueMinimo)
	for _, item := range sugestoes {
		fmt.Printf("  %s (%d %s) - %s\n", item.Nome, item.Quantidade, item.Unidade, item.Categoria)
	}
}

func runListas(manager *compras.Manager) {
	lists := manager.Lists()
	if len(lists) == 0 {
		fmt.Println("Nenhuma lista fixa criada ainda.")
		return
	}

	for _, list := range lists {
		fmt.Printf("%s [%s] - %d itens\n", list.Nome, list.ID, len(list.Itens))
		for _, item := range list.Itens {
			marker := "○"
			if item.Comprado {
				marker = "✓"
			}
			fmt.Printf("  %s %s (%d %s) [%s]\n", marker, item.Nome, item.Quantidade, item.Unidade, item.ID)
		}
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "sim"
}

func printUsage() {
	fmt.Println("Usage: lista-compras <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  sugestoes   Mostrar itens com estoque baixo (lista variável)")
	fmt.Println("  listas      Mostrar as listas fixas e seus itens")
	fmt.Println("  criar       Criar uma nova lista fixa (-nome)")
	fmt.Println("  add         Adicionar item a uma lista (-lista -nome -quantidade -unidade -categoria)")
	fmt.Println("  remover     Remover item de uma lista (-lista -item)")
	fmt.Println("  marcar      Marcar/desmarcar item como comprado (-lista -item)")
	fmt.Println("  excluir     Excluir uma lista (-lista [-sim])")
	fmt.Println("  pdf         Exportar uma lista em PDF (-lista [-out])")
}
