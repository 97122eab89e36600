package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// ErrMissingInput indica username ou segredo vazio; a requisição nem
	// chega a consultar o CredentialStore
	ErrMissingInput = errors.New("username ou segredo ausente")

	// ErrInvalidCredentials cobre tanto usuário inexistente quanto segredo
	// incorreto. A indistinção é proposital: a resposta não pode revelar se
	// o username existe.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrUnknownRole é o caso defensivo de papel fora do conjunto fechado
	ErrUnknownRole = errors.New("papel não reconhecido")

	ErrInvalidToken = errors.New("token inválido")
)

// Mensagens exibidas ao usuário final (contrato com a camada de apresentação)
const (
	MsgMissingInput       = "Please enter both username and secret"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnknownRole        = "Unknown role."
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Username string // Username envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
