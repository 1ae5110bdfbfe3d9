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

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

// colunas na ordem esperada por scanFuncionario.
const funcionarioCols = `
	id, cpf, nome, data_nascimento,
	municipio_nascimento, uf_nascimento, nome_mae, nome_pai, nacionalidade, estado_civil,
	rg_numero, rg_data_emissao, rg_orgao_emissor,
	ctps_numero, ctps_serie, ctps_uf, ctps_data_emissao,
	titulo_eleitor, titulo_zona, titulo_secao, pis, pis_data_cadastro,
	habilitacao, habilitacao_categoria, documento_militar, cbo,
	endereco, endereco_numero, endereco_complemento, bairro, municipio, uf, cep,
	telefone, email,
	cargo, funcao, departamento, data_admissao, data_demissao,
	salario, tipo_pagamento, horas_mensais, tipo_contrato,
	adicional_periculosidade, adicional_insalubridade,
	grau_instrucao, fgts_data_opcao, fgts_banco,
	criado_em, ativo, observacoes`

// FuncionarioRepo implementação do porto FuncionarioRepository sobre PostgreSQL.
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

func scanFuncionario(row interface{ Scan(dest ...any) error }) (*entity.Funcionario, error) {
	var f entity.Funcionario
	err := row.Scan(
		&f.ID, &f.CPF, &f.Nome, &f.DataNascimento,
		&f.MunicipioNascimento, &f.UFNascimento, &f.NomeMae, &f.NomePai, &f.Nacionalidade, &f.EstadoCivil,
		&f.RGNumero, &f.RGDataEmissao, &f.RGOrgaoEmissor,
		&f.CTPSNumero, &f.CTPSSerie, &f.CTPSUF, &f.CTPSDataEmissao,
		&f.TituloEleitor, &f.TituloZona, &f.TituloSecao, &f.PIS, &f.PISDataCadastro,
		&f.Habilitacao, &f.HabilitacaoCategoria, &f.DocumentoMilitar, &f.CBO,
		&f.Endereco, &f.EnderecoNumero, &f.EnderecoComplemento, &f.Bairro, &f.Municipio, &f.UF, &f.CEP,
		&f.Telefone, &f.Email,
		&f.Cargo, &f.Funcao, &f.Departamento, &f.DataAdmissao, &f.DataDemissao,
		&f.Salario, &f.TipoPagamento, &f.HorasMensais, &f.TipoContrato,
		&f.AdicionalPericulosidade, &f.AdicionalInsalubridade,
		&f.GrauInstrucao, &f.FGTSDataOpcao, &f.FGTSBanco,
		&f.CriadoEm, &f.Ativo, &f.Observacoes,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Criar insere o funcionário e preenche ID, CriadoEm e Ativo gerados pelo banco.
// Retorna domain.ErrCPFJaCadastrado em violação de unicidade do CPF.
func (r *FuncionarioRepo) Criar(f *entity.Funcionario) error {
	query := `
		INSERT INTO funcionarios (
			cpf, nome, data_nascimento,
			municipio_nascimento, uf_nascimento, nome_mae, nome_pai, nacionalidade, estado_civil,
			rg_numero, rg_data_emissao, rg_orgao_emissor,
			ctps_numero, ctps_serie, ctps_uf, ctps_data_emissao,
			titulo_eleitor, titulo_zona, titulo_secao, pis, pis_data_cadastro,
			habilitacao, habilitacao_categoria, documento_militar, cbo,
			endereco, endereco_numero, endereco_complemento, bairro, municipio, uf, cep,
			telefone, email,
			cargo, funcao, departamento, data_admissao, data_demissao,
			salario, tipo_pagamento, horas_mensais, tipo_contrato,
			adicional_periculosidade, adicional_insalubridade,
			grau_instrucao, fgts_data_opcao, fgts_banco, observacoes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46, $47, $48, $49
		) RETURNING id, criado_em, ativo`
	err := r.q.QueryRow(context.Background(), query,
		f.CPF, f.Nome, f.DataNascimento,
		f.MunicipioNascimento, f.UFNascimento, f.NomeMae, f.NomePai, f.Nacionalidade, f.EstadoCivil,
		f.RGNumero, f.RGDataEmissao, f.RGOrgaoEmissor,
		f.CTPSNumero, f.CTPSSerie, f.CTPSUF, f.CTPSDataEmissao,
		f.TituloEleitor, f.TituloZona, f.TituloSecao, f.PIS, f.PISDataCadastro,
		f.Habilitacao, f.HabilitacaoCategoria, f.DocumentoMilitar, f.CBO,
		f.Endereco, f.EnderecoNumero, f.EnderecoComplemento, f.Bairro, f.Municipio, f.UF, f.CEP,
		f.Telefone, f.Email,
		f.Cargo, f.Funcao, f.Departamento, f.DataAdmissao, f.DataDemissao,
		f.Salario, f.TipoPagamento, f.HorasMensais, f.TipoContrato,
		f.AdicionalPericulosidade, f.AdicionalInsalubridade,
		f.GrauInstrucao, f.FGTSDataOpcao, f.FGTSBanco, f.Observacoes,
	).Scan(&f.ID, &f.CriadoEm, &f.Ativo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCPFJaCadastrado
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByID busca um funcionário pelo ID. Retorna (nil, nil) se não existir.
func (r *FuncionarioRepo) GetByID(id int64) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE id = $1`
	f, err := scanFuncionario(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return f, nil
}

// GetByCPF busca um funcionário pelo CPF. Retorna (nil, nil) se não existir.
func (r *FuncionarioRepo) GetByCPF(cpf string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE cpf = $1`
	f, err := scanFuncionario(r.q.QueryRow(context.Background(), query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario by cpf: %w", err)
	}
	return f, nil
}

// GetComBeneficiarios busca o funcionário e compõe seus beneficiários em uma
// segunda consulta explícita. Retorna (nil, nil) se não existir.
func (r *FuncionarioRepo) GetComBeneficiarios(id int64) (*entity.Funcionario, error) {
	f, err := r.GetByID(id)
	if err != nil || f == nil {
		return f, err
	}
	benRepo := NewBeneficiarioRepository(r.q)
	beneficiarios, err := benRepo.ListarPorFuncionario(id)
	if err != nil {
		return nil, err
	}
	f.Beneficiarios = beneficiarios
	return f, nil
}

// Listar devolve os funcionários que casam com o filtro, ordenados por id ASC
// (ordem determinística de listagem).
func (r *FuncionarioRepo) Listar(filtro repository.FiltroFuncionarios) ([]*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios`
	var (
		where []string
		args  []any
	)
	if filtro.Departamento != nil {
		args = append(args, *filtro.Departamento)
		where = append(where, fmt.Sprintf("departamento = $%d", len(args)))
	}
	if filtro.Ativo != nil {
		args = append(args, *filtro.Ativo)
		where = append(where, fmt.Sprintf("ativo = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY id ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Funcionario
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Atualizar grava os campos mutáveis da ficha. CPF e criado_em não mudam.
func (r *FuncionarioRepo) Atualizar(f *entity.Funcionario) error {
	query := `
		UPDATE funcionarios SET
			nome = $2, telefone = $3, email = $4,
			endereco = $5, endereco_numero = $6, endereco_complemento = $7,
			bairro = $8, municipio = $9, uf = $10, cep = $11,
			cargo = $12, funcao = $13, departamento = $14,
			salario = $15, tipo_pagamento = $16, horas_mensais = $17, tipo_contrato = $18,
			adicional_periculosidade = $19, adicional_insalubridade = $20,
			data_demissao = $21, ativo = $22, observacoes = $23
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.Telefone, f.Email,
		f.Endereco, f.EnderecoNumero, f.EnderecoComplemento,
		f.Bairro, f.Municipio, f.UF, f.CEP,
		f.Cargo, f.Funcao, f.Departamento,
		f.Salario, f.TipoPagamento, f.HorasMensais, f.TipoContrato,
		f.AdicionalPericulosidade, f.AdicionalInsalubridade,
		f.DataDemissao, f.Ativo, f.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Departamentos devolve os valores distintos não nulos, ordenados.
func (r *FuncionarioRepo) Departamentos() ([]string, error) {
	query := `
		SELECT DISTINCT departamento FROM funcionarios
		WHERE departamento IS NOT NULL
		ORDER BY departamento ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
