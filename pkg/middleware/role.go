package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos
// papéis. allowedRoles são os papéis com permissão para acessar a rota.
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário %s, papel %s", userClaims.Username, userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LeadOnly permite acesso apenas ao líder de vendas
func LeadOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleLead})
}

// AllRoles permite acesso a qualquer papel autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.Roles)
}
