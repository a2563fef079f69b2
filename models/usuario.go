package models

// User roles
const (
	RoleAdmin    = "admin"
	RoleAdvogado = "advogado"
	RoleEstagio  = "estagiario"
)

// Usuario is an entry of the demonstration credential table
type Usuario struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	CPF       string `json:"-"`
	Tipo      string `json:"tipo"`
	Ativo     bool   `json:"ativo"`
	SenhaHash string `json:"-"`
}

// PerfilUsuario is the public view returned after login
type PerfilUsuario struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

// Perfil returns the public profile of the user
func (u *Usuario) Perfil() PerfilUsuario {
	return PerfilUsuario{Nome: u.Nome, Tipo: u.Tipo}
}
