package dto

import "time"

// CadastrarUsuarioRHRequest entrada para cadastro de usuário do RH (senha em texto, hasheada no use case).
type CadastrarUsuarioRHRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Nome        string `json:"nome" validate:"required,max=100"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NivelAcesso string `json:"nivel_acesso" validate:"omitempty,oneof=user admin gerente assistente"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// TokenResponse saída de login: {access_token, token_type:"bearer"}.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UsuarioRHResponse saída de um usuário (nunca inclui o hash da senha).
type UsuarioRHResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Nome        string    `json:"nome"`
	NivelAcesso string    `json:"nivel_acesso"`
	CriadoEm    time.Time `json:"criado_em"`
}
