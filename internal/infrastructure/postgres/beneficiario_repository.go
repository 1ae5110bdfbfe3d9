package postgres

import (
	"context"
	"fmt"

	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

var _ repository.BeneficiarioRepository = (*BeneficiarioRepo)(nil)

// BeneficiarioRepo implementação do porto BeneficiarioRepository sobre PostgreSQL.
type BeneficiarioRepo struct {
	q Querier
}

// NewBeneficiarioRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewBeneficiarioRepository(q Querier) *BeneficiarioRepo {
	return &BeneficiarioRepo{q: q}
}

// Criar insere o beneficiário e preenche o ID gerado pelo banco.
func (r *BeneficiarioRepo) Criar(b *entity.Beneficiario) error {
	query := `
		INSERT INTO beneficiarios (funcionario_id, nome, data_nascimento, parentesco)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		b.FuncionarioID, b.Nome, b.DataNascimento, b.Parentesco,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert beneficiario: %w", err)
	}
	return nil
}

// ListarPorFuncionario devolve os beneficiários do funcionário, ordenados por id.
func (r *BeneficiarioRepo) ListarPorFuncionario(funcionarioID int64) ([]entity.Beneficiario, error) {
	query := `
		SELECT id, funcionario_id, nome, data_nascimento, parentesco
		FROM beneficiarios WHERE funcionario_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, funcionarioID)
	if err != nil {
		return nil, fmt.Errorf("list beneficiarios: %w", err)
	}
	defer rows.Close()
	var list []entity.Beneficiario
	for rows.Next() {
		var b entity.Beneficiario
		if err := rows.Scan(&b.ID, &b.FuncionarioID, &b.Nome, &b.DataNascimento, &b.Parentesco); err != nil {
			return nil, fmt.Errorf("scan beneficiario: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
