package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/internal/dataset"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/authenticating"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/dashboarding"
	"github.com/Tumi03-data/dash-dashboard/pkg/apiErrors"
	"github.com/Tumi03-data/dash-dashboard/pkg/middleware"
)

type LoginRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	Role  domain.Role        `json:"role"`
	View  *domain.ViewResult `json:"view"`
}

// Login autentica o par username/segredo e, em caso de sucesso, devolve o
// token de sessão junto com a visão completa do papel
func Login(authService authenticating.Authenticator, viewService dashboarding.Viewer, store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		role, err := authService.Authenticate(req.Username, req.Secret)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		token, err := authService.GenerateToken(req.Username, role)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação", nil)
			return
		}

		snapshot := store.Current()
		view := viewService.Route(role, snapshot.Sales, snapshot.WebLogs)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			Role:  role,
			View:  view,
		}); err != nil {
			logrus.Error(err)
		}
	})
}

// GetMe retorna as claims do usuário logado
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(userClaims); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// handleLoginError trata erros específicos de login e retorna a resposta
// apropriada, com as mensagens do contrato de apresentação
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrMissingInput):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, authenticating.MsgMissingInput, nil)

	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, authenticating.MsgInvalidCredentials, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
