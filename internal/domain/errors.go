package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrEmailJaCadastrado = errors.New("o email já está cadastrado")
	ErrCPFJaCadastrado   = errors.New("CPF já cadastrado no sistema")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("não autorizado")
)
