package usecase

import (
	"context"

	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com repositórios atados a ela.
// Implementado por postgres.TxRunner; a interface evita dependência da infraestrutura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		funcRepo repository.FuncionarioRepository,
		benRepo repository.BeneficiarioRepository,
	) error) error
}
