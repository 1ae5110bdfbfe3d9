package repository

import "github.com/cbdisson/sistema-rh/internal/domain/entity"

// UsuarioRHRepository define o porto de persistência para UsuarioRH (DIP).
type UsuarioRHRepository interface {
	Criar(usuario *entity.UsuarioRH) error
	GetByEmail(email string) (*entity.UsuarioRH, error)
	Listar() ([]*entity.UsuarioRH, error)
}
