package domain

import "github.com/golang-jwt/jwt/v5"

// Role identifica o perfil de acesso de um usuário. O conjunto é fechado:
// cada papel possui exatamente uma visão de dashboard correspondente.
type Role string

const (
	RoleLead       Role = "lead"
	RoleMember     Role = "member"
	RoleMarketing  Role = "marketing"
	RoleLogAnalyst Role = "logs"
)

// Roles lista todos os papéis conhecidos, na ordem de declaração
var Roles = []Role{RoleLead, RoleMember, RoleMarketing, RoleLogAnalyst}

// Valid informa se o papel pertence ao conjunto fechado
func (r Role) Valid() bool {
	switch r {
	case RoleLead, RoleMember, RoleMarketing, RoleLogAnalyst:
		return true
	}
	return false
}

// Credential é uma credencial imutável carregada uma única vez na
// inicialização do processo. O segredo é sempre armazenado como hash bcrypt.
type Credential struct {
	Username   string `json:"username"`
	SecretHash string `json:"-"`
	Role       Role   `json:"role"`
}

// Claims são os dados embutidos no token JWT emitido no login
type Claims struct {
	Username string `json:"username"`
	UserRole Role   `json:"role"`
	jwt.RegisteredClaims
}
