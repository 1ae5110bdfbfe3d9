package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cbdisson/sistema-rh/internal/domain"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

var _ repository.UsuarioRHRepository = (*UsuarioRHRepo)(nil)

// UsuarioRHRepo implementação do porto UsuarioRHRepository sobre PostgreSQL.
type UsuarioRHRepo struct {
	q Querier
}

// NewUsuarioRHRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewUsuarioRHRepository(q Querier) *UsuarioRHRepo {
	return &UsuarioRHRepo{q: q}
}

// Criar persiste um novo usuário do RH.
func (r *UsuarioRHRepo) Criar(u *entity.UsuarioRH) error {
	query := `
		INSERT INTO usuarios_rh (id, email, nome, senha_hash, nivel_acesso, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.Nome, u.SenhaHash, u.NivelAcesso, u.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario_rh: %w", err)
	}
	return nil
}

// GetByEmail busca um usuário pelo email. Retorna (nil, nil) se não existir.
func (r *UsuarioRHRepo) GetByEmail(email string) (*entity.UsuarioRH, error) {
	query := `
		SELECT id, email, nome, senha_hash, nivel_acesso, criado_em
		FROM usuarios_rh WHERE email = $1`
	var u entity.UsuarioRH
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.NivelAcesso, &u.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario_rh by email: %w", err)
	}
	return &u, nil
}

// Listar devolve todos os usuários ordenados por email.
func (r *UsuarioRHRepo) Listar() ([]*entity.UsuarioRH, error) {
	query := `
		SELECT id, email, nome, senha_hash, nivel_acesso, criado_em
		FROM usuarios_rh ORDER BY email ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios_rh: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsuarioRH
	for rows.Next() {
		var u entity.UsuarioRH
		if err := rows.Scan(&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.NivelAcesso, &u.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan usuario_rh: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
