package recordstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Document is the single JSON fallback document. Each array entry carries the
// same snake_case projection as its relational row so reads from either
// backend produce identical shapes.
type Document struct {
	Users                        []userRow            `json:"users"`
	WalletTransactions           []transactionRow     `json:"wallet_transactions"`
	Strategies                   []strategyRow        `json:"strategies"`
	RunningStrategies            []runningStrategyRow `json:"running_strategies"`
	RunningStrategyModifications []modificationRow    `json:"running_strategy_modifications"`
}

// FileStore persists the fallback document. All access is serialized by a
// mutex; writes replace the whole document atomically (temp file + rename)
// so concurrent request handlers can never observe a torn document.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore opens (or lazily creates) the fallback document at path.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create fallback directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the document location.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() (*Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("failed to read fallback document: %w", err)
	}
	var doc Document
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse fallback document: %w", err)
		}
	}
	return &doc, nil
}

func (f *FileStore) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fallback document: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write fallback document: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace fallback document: %w", err)
	}
	return nil
}

// Update loads the document, applies fn, and writes the result back while
// holding the store lock.
func (f *FileStore) Update(fn func(doc *Document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return f.save(doc)
}

// View runs fn against a read-only snapshot of the document.
func (f *FileStore) View(fn func(doc *Document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Document lookup helpers. They return indices so callers inside Update can
// mutate entries in place.

func (d *Document) transactionIndex(id uuid.UUID) int {
	for i := range d.WalletTransactions {
		if d.WalletTransactions[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) userIndex(id uuid.UUID) int {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) strategyIndex(id uuid.UUID) int {
	for i := range d.Strategies {
		if d.Strategies[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) runningStrategyIndex(id uuid.UUID) int {
	for i := range d.RunningStrategies {
		if d.RunningStrategies[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) runningStrategyPairIndex(userID, strategyID uuid.UUID) int {
	for i := range d.RunningStrategies {
		if d.RunningStrategies[i].UserID == userID && d.RunningStrategies[i].StrategyID == strategyID {
			return i
		}
	}
	return -1
}
