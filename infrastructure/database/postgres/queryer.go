package postgres

import "database/sql"

// Queryer abstrai as operações de consulta usadas pelos repositórios
type Queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}
