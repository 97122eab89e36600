package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore dá acesso somente-leitura às credenciais. Lookup retorna
// nil quando o username não existe.
type CredentialStore interface {
	Lookup(username string) (*domain.Credential, error)
}

type Authenticator interface {
	Authenticate(username, secret string) (domain.Role, error)
	GenerateToken(username string, role domain.Role) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	store CredentialStore
	cfg   *config.Config
}

func NewService(store CredentialStore, cfg *config.Config) Authenticator {
	return &Service{
		store: store,
		cfg:   cfg,
	}
}

// Authenticate valida o par username/segredo e retorna o papel associado.
// Cada chamada é independente: não há contagem de tentativas nem lockout.
func (s *Service) Authenticate(username, secret string) (domain.Role, error) {
	// Validação de entrada, antes de qualquer consulta ao store
	if strings.TrimSpace(username) == "" || secret == "" {
		return "", NewAuthError(ErrMissingInput, apiErrors.ErrMissingRequiredData, MsgMissingInput)
	}

	credential, err := s.store.Lookup(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar credenciais")
	}

	// Usuário inexistente e segredo incorreto produzem a mesma resposta
	if credential == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.SecretHash), []byte(secret)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	return credential.Role, nil
}

// GenerateToken emite o token JWT da sessão do usuário autenticado
func (s *Service) GenerateToken(username string, role domain.Role) (string, error) {
	claims := domain.Claims{
		Username: username,
		UserRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
