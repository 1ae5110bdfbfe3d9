package entity

import "time"

// Níveis de acesso válidos para UsuarioRH.
const (
	NivelUser       = "user"
	NivelAdmin      = "admin"
	NivelGerente    = "gerente"
	NivelAssistente = "assistente"
)

// NivelValido informa se o nível de acesso pertence ao conjunto permitido.
func NivelValido(nivel string) bool {
	switch nivel {
	case NivelUser, NivelAdmin, NivelGerente, NivelAssistente:
		return true
	}
	return false
}

// UsuarioRH representa um usuário do RH autorizado a operar o sistema.
type UsuarioRH struct {
	ID          string
	Email       string // chave de identidade, único
	Nome        string
	SenhaHash   string // hash bcrypt, nunca exposto ao cliente
	NivelAcesso string // user, admin, gerente, assistente
	CriadoEm    time.Time
}
