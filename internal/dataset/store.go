package dataset

import (
	"sync"
	"time"

	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/pkg/utils"
)

// Snapshot agrupa os dois datasets carregados em um dado momento. Um
// snapshot nunca é mutado depois de publicado: requisições em andamento
// continuam enxergando uma visão consistente mesmo durante uma recarga.
type Snapshot struct {
	Version  string
	Sales    *domain.SalesDataset
	WebLogs  *domain.WebLogDataset
	LoadedAt time.Time
}

// Store mantém o snapshot corrente e permite a troca atômica feita pelo
// agendador de recarga
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewStore cria o store já publicando o primeiro snapshot
func NewStore(sales *domain.SalesDataset, webLogs *domain.WebLogDataset) (*Store, error) {
	store := &Store{}
	if _, err := store.Swap(sales, webLogs); err != nil {
		return nil, err
	}

	return store, nil
}

// Swap publica um novo snapshot com os datasets informados e retorna o
// snapshot publicado
func (s *Store) Swap(sales *domain.SalesDataset, webLogs *domain.WebLogDataset) (*Snapshot, error) {
	version, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Version:  version,
		Sales:    sales,
		WebLogs:  webLogs,
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// Current retorna o snapshot corrente
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}
