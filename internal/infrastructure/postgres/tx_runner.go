package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbdisson/sistema-rh/internal/application/usecase"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. O rollback adiado cobre qualquer caminho de erro antes
// do commit; nenhuma escrita parcial sobrevive a uma falha.
func (r *TxRunner) Run(ctx context.Context, fn func(
	funcRepo repository.FuncionarioRepository,
	benRepo repository.BeneficiarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	funcRepo := NewFuncionarioRepository(tx)
	benRepo := NewBeneficiarioRepository(tx)

	if err := fn(funcRepo, benRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
