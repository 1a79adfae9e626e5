package compras

import (
	"strings"
	"time"
)

// Manager owns the in-memory mirror of the fixed shopping lists and
// keeps it synchronized with the Store after every mutation. Callers get
// copies, never the internals. A Manager is meant for single-goroutine
// use; concurrent writers from other processes fall under last-save-wins.
type Manager struct {
	store *Store
	lists []FixedList
}

// NewManager loads the persisted collection into a new Manager.
func NewManager(store *Store) *Manager {
	return &Manager{
		store: store,
		lists: store.Load(),
	}
}

// Lists returns a deep copy of the current collection.
func (m *Manager) Lists() []FixedList {
	out := make([]FixedList, len(m.lists))
	for i, l := range m.lists {
		out[i] = copyList(l)
	}
	return out
}

// Get returns a copy of the list with the given id, or nil.
func (m *Manager) Get(listID string) *FixedList {
	for _, l := range m.lists {
		if l.ID == listID {
			c := copyList(l)
			return &c
		}
	}
	return nil
}

// CreateList appends a new empty list and persists the collection.
// A name that is blank after trimming is silently ignored and consumes
// no identifier.
func (m *Manager) CreateList(nome string) (*FixedList, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, nil
	}

	list := FixedList{
		ID:          newToken(),
		Nome:        nome,
		Itens:       []ListItem{},
		DataCriacao: time.Now().UTC().Format(time.RFC3339),
	}
	m.lists = append(m.lists, list)

	if err := m.store.Save(m.lists); err != nil {
		return nil, err
	}
	c := copyList(list)
	return &c, nil
}

// AddItem appends an item to the given list and persists the collection.
// A blank item name or an unknown list id is a no-op that consumes no
// identifier.
func (m *Manager) AddItem(listID string, in ItemInput) (*ListItem, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, nil
	}

	idx := m.indexOf(listID)
	if idx < 0 {
		return nil, m.store.Save(m.lists)
	}

	if in.Quantidade < 1 {
		in.Quantidade = 1
	}
	item := ListItem{
		ID:         newToken(),
		Nome:       in.Nome,
		Quantidade: in.Quantidade,
		Unidade:    in.Unidade,
		Categoria:  in.Categoria,
		Comprado:   false,
	}
	m.lists[idx].Itens = append(m.lists[idx].Itens, item)

	if err := m.store.Save(m.lists); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes the matching item from the given list. Unknown ids
// are idempotent no-ops.
func (m *Manager) RemoveItem(listID, itemID string) error {
	if idx := m.indexOf(listID); idx >= 0 {
		itens := m.lists[idx].Itens[:0]
		for _, it := range m.lists[idx].Itens {
			if it.ID != itemID {
				itens = append(itens, it)
			}
		}
		m.lists[idx].Itens = itens
	}
	return m.store.Save(m.lists)
}

// ToggleItem flips the purchased flag on the matching item. Unknown ids
// are no-ops.
func (m *Manager) ToggleItem(listID, itemID string) error {
	if idx := m.indexOf(listID); idx >= 0 {
		for i := range m.lists[idx].Itens {
			if m.lists[idx].Itens[i].ID == itemID {
				m.lists[idx].Itens[i].Comprado = !m.lists[idx].Itens[i].Comprado
				break
			}
		}
	}
	return m.store.Save(m.lists)
}

// DeleteList removes the list with the given id. An unknown id is an
// idempotent no-op.
func (m *Manager) DeleteList(listID string) error {
	lists := m.lists[:0]
	for _, l := range m.lists {
		if l.ID != listID {
			lists = append(lists, l)
		}
	}
	m.lists = lists
	return m.store.Save(m.lists)
}

func (m *Manager) indexOf(listID string) int {
	for i, l := range m.lists {
		if l.ID == listID {
			return i
		}
	}
	return -1
}

func copyList(l FixedList) FixedList {
	itens := make([]ListItem, len(l.Itens))
	copy(itens, l.Itens)
	l.Itens = itens
	return l
}
