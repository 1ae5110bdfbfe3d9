package usecase

import (
	"context"

	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// FichaPDFGenerator gera a representação em PDF da ficha de um funcionário.
// Implementado pela infraestrutura (Maroto); a interface evita a dependência direta.
type FichaPDFGenerator interface {
	GerarFichaPDF(ctx context.Context, f *entity.Funcionario) ([]byte, error)
}

// FichaUseCase monta a ficha cadastral em PDF de um funcionário.
type FichaUseCase struct {
	repo repository.FuncionarioRepository
	gen  FichaPDFGenerator
}

// NewFichaUseCase constrói o caso de uso.
func NewFichaUseCase(repo repository.FuncionarioRepository, gen FichaPDFGenerator) *FichaUseCase {
	return &FichaUseCase{repo: repo, gen: gen}
}

// Gerar devolve os bytes do PDF da ficha, ou (nil, nil) se o funcionário não existir.
func (uc *FichaUseCase) Gerar(ctx context.Context, id int64) ([]byte, error) {
	f, err := uc.repo.GetComBeneficiarios(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return uc.gen.GerarFichaPDF(ctx, f)
}
