package repository

import "github.com/cbdisson/sistema-rh/internal/domain/entity"

// FiltroFuncionarios filtros opcionais de listagem. Nil = sem filtro.
type FiltroFuncionarios struct {
	Departamento *string // igualdade exata, case sensitive
	Ativo        *bool
}

// FuncionarioRepository define o porto de persistência para Funcionario.
type FuncionarioRepository interface {
	// Criar insere o funcionário e preenche ID, CriadoEm e Ativo gerados pelo banco.
	Criar(f *entity.Funcionario) error
	GetByID(id int64) (*entity.Funcionario, error)
	GetByCPF(cpf string) (*entity.Funcionario, error)
	// GetComBeneficiarios retorna o funcionário com Beneficiarios preenchidos
	// (composição explícita, sem carregamento implícito).
	GetComBeneficiarios(id int64) (*entity.Funcionario, error)
	Listar(filtro FiltroFuncionarios) ([]*entity.Funcionario, error)
	Atualizar(f *entity.Funcionario) error
	// Departamentos retorna os valores distintos não nulos, ordenados.
	Departamentos() ([]string, error)
}

// BeneficiarioRepository define o porto de persistência para Beneficiario.
type BeneficiarioRepository interface {
	// Criar insere o beneficiário e preenche o ID gerado pelo banco.
	Criar(b *entity.Beneficiario) error
	ListarPorFuncionario(funcionarioID int64) ([]entity.Beneficiario, error)
}
