package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/database/postgres"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

const credentialsTable = "credentials"

// CredentialRepository dá acesso somente-leitura ao conjunto fixo de
// credenciais. Não há operações de escrita neste domínio.
type CredentialRepository interface {
	GetCredentialByUsername(username string) (*domain.Credential, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// GetCredentialByUsername retorna a credencial do usuário, ou nil quando o
// usuário não existe
func (r *credentialRepository) GetCredentialByUsername(username string) (*domain.Credential, error) {
	queryBuilder := squirrel.
		Select("username", "secret_hash", "role").
		From(credentialsTable).
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	credential := &domain.Credential{}
	err = r.conn.QueryRow(query, args...).Scan(
		&credential.Username,
		&credential.SecretHash,
		&credential.Role,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return credential, nil
}
