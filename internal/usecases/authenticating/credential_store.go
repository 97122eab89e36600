package authenticating

import (
	"github.com/Tumi03-data/dash-dashboard/infrastructure/repository"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

// StaticStore é um CredentialStore em memória, carregado uma única vez na
// inicialização (modo demonstração, sem banco de dados)
type StaticStore struct {
	byUsername map[string]*domain.Credential
}

func NewStaticStore(credentials []*domain.Credential) *StaticStore {
	store := &StaticStore{
		byUsername: make(map[string]*domain.Credential, len(credentials)),
	}

	for _, credential := range credentials {
		store.byUsername[credential.Username] = credential
	}

	return store
}

func (s *StaticStore) Lookup(username string) (*domain.Credential, error) {
	return s.byUsername[username], nil
}

// repositoryStore adapta o repositório Postgres ao contrato CredentialStore
type repositoryStore struct {
	repo repository.CredentialRepository
}

func NewRepositoryStore(repo repository.CredentialRepository) CredentialStore {
	return &repositoryStore{
		repo: repo,
	}
}

func (s *repositoryStore) Lookup(username string) (*domain.Credential, error) {
	return s.repo.GetCredentialByUsername(username)
}
