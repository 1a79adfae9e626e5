package compras

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// listsFileName mirrors the localStorage key the browser app used.
const listsFileName = "shoppingLists.json"

// Store persists the whole collection of fixed shopping lists as one
// JSON blob in a single file.
type Store struct {
	path string
}

// NewStore creates a Store rooted at dataDir, ensuring the directory
// exists.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &Store{path: filepath.Join(dataDir, listsFileName)}, nil
}

// Path returns the location of the persisted blob.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. An absent or unreadable file and
// malformed JSON all yield an empty collection; individual records that
// do not match the expected shape are dropped rather than failing the
// whole load.
func (s *Store) Load() []FixedList {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []FixedList{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Warning: discarding malformed shopping lists blob at %s: %v", s.path, err)
		return []FixedList{}
	}

	lists := make([]FixedList, 0, len(raw))
	for i, msg := range raw {
		var l FixedList
		if err := json.Unmarshal(msg, &l); err != nil {
			log.Printf("Warning: dropping malformed shopping list record %d: %v", i, err)
			continue
		}
		if l.ID == "" || strings.TrimSpace(l.Nome) == "" {
			log.Printf("Warning: dropping shopping list record %d with missing id or name", i)
			continue
		}
		itens := make([]ListItem, 0, len(l.Itens))
		for _, it := range l.Itens {
			if it.ID == "" || strings.TrimSpace(it.Nome) == "" {
				continue
			}
			if it.Quantidade < 1 {
				it.Quantidade = 1
			}
			itens = append(itens, it)
		}
		l.Itens = itens
		lists = append(lists, l)
	}
	return lists
}

// Save overwrites the persisted collection with a single write.
func (s *Store) Save(lists []FixedList) error {
	if lists == nil {
		lists = []FixedList{}
	}
	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shopping lists: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write shopping lists file: %w", err)
	}
	return nil
}
