package usecase

import (
	"context"
	"fmt"

	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/domain"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// banco padrão do FGTS quando o cadastro não informa outro.
const fgtsBancoPadrao = "Caixa Econômica Federal"

// FuncionarioUseCase casos de uso da ficha de funcionário.
// A exclusão é lógica: DELETE marca ativo=false e preserva ficha e beneficiários.
type FuncionarioUseCase struct {
	tx   TxRunner
	repo repository.FuncionarioRepository
}

// NewFuncionarioUseCase constrói o caso de uso.
func NewFuncionarioUseCase(tx TxRunner, repo repository.FuncionarioRepository) *FuncionarioUseCase {
	return &FuncionarioUseCase{tx: tx, repo: repo}
}

// Criar valida o payload, e persiste funcionário e beneficiários em uma única
// transação: nenhuma escrita parcial sobrevive a uma falha.
// Devolve domain.ErrCPFJaCadastrado se o CPF já existir.
func (uc *FuncionarioUseCase) Criar(ctx context.Context, in dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if err := in.Validar(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	existing, err := uc.repo.GetByCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCPFJaCadastrado
	}

	f := toEntity(in)
	err = uc.tx.Run(ctx, func(funcRepo repository.FuncionarioRepository, benRepo repository.BeneficiarioRepository) error {
		if err := funcRepo.Criar(f); err != nil {
			return err
		}
		for _, b := range in.Beneficiarios {
			ben := &entity.Beneficiario{
				FuncionarioID:  f.ID,
				Nome:           b.Nome,
				DataNascimento: b.DataNascimento.Time,
				Parentesco:     b.Parentesco,
			}
			if err := benRepo.Criar(ben); err != nil {
				return err
			}
			f.Beneficiarios = append(f.Beneficiarios, *ben)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// BuscarPorID devolve a ficha com beneficiários, ou (nil, nil) se não existir.
func (uc *FuncionarioUseCase) BuscarPorID(id int64) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetComBeneficiarios(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFuncionarioResponse(f), nil
}

// Listar devolve os funcionários que casam com o filtro, ordenados por id.
// A listagem não compõe beneficiários; use BuscarPorID para a ficha completa.
func (uc *FuncionarioUseCase) Listar(filtro repository.FiltroFuncionarios) ([]dto.FuncionarioResponse, error) {
	list, err := uc.repo.Listar(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFuncionarioResponse(f))
	}
	return out, nil
}

// Atualizar aplica uma atualização parcial: apenas os campos presentes no
// payload mudam. Devolve (nil, nil) se o funcionário não existir.
func (uc *FuncionarioUseCase) Atualizar(id int64, in dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if in.Vazio() {
		return nil, fmt.Errorf("%w: nenhum dado fornecido para atualização", domain.ErrInvalidInput)
	}
	if err := in.Validar(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	aplicarAtualizacao(f, in)

	if err := uc.repo.Atualizar(f); err != nil {
		return nil, err
	}
	return uc.BuscarPorID(id)
}

// Desativar marca o funcionário como inativo (exclusão lógica). A ficha e os
// beneficiários são preservados. Devolve (nil, nil) se não existir.
func (uc *FuncionarioUseCase) Desativar(id int64) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	f.Ativo = false
	if err := uc.repo.Atualizar(f); err != nil {
		return nil, err
	}
	return uc.BuscarPorID(id)
}

// Departamentos devolve o conjunto de departamentos distintos, ordenado.
func (uc *FuncionarioUseCase) Departamentos() ([]string, error) {
	return uc.repo.Departamentos()
}

func aplicarAtualizacao(f *entity.Funcionario, in dto.AtualizarFuncionarioRequest) {
	if in.Nome != nil {
		f.Nome = *in.Nome
	}
	if in.Telefone != nil {
		f.Telefone = *in.Telefone
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.Endereco != nil {
		f.Endereco = *in.Endereco
	}
	if in.EnderecoNumero != nil {
		f.EnderecoNumero = *in.EnderecoNumero
	}
	if in.EnderecoComplemento != nil {
		f.EnderecoComplemento = in.EnderecoComplemento
	}
	if in.Bairro != nil {
		f.Bairro = *in.Bairro
	}
	if in.Municipio != nil {
		f.Municipio = *in.Municipio
	}
	if in.UF != nil {
		f.UF = *in.UF
	}
	if in.CEP != nil {
		f.CEP = *in.CEP
	}
	if in.Cargo != nil {
		f.Cargo = *in.Cargo
	}
	if in.Funcao != nil {
		f.Funcao = *in.Funcao
	}
	if in.Departamento != nil {
		f.Departamento = *in.Departamento
	}
	if in.Salario != nil {
		f.Salario = *in.Salario
	}
	if in.TipoPagamento != nil {
		f.TipoPagamento = *in.TipoPagamento
	}
	if in.HorasMensais != nil {
		f.HorasMensais = *in.HorasMensais
	}
	if in.TipoContrato != nil {
		f.TipoContrato = *in.TipoContrato
	}
	if in.AdicionalPericulosidade != nil {
		f.AdicionalPericulosidade = *in.AdicionalPericulosidade
	}
	if in.AdicionalInsalubridade != nil {
		f.AdicionalInsalubridade = *in.AdicionalInsalubridade
	}
	if in.DataDemissao != nil {
		t := in.DataDemissao.Time
		f.DataDemissao = &t
	}
	if in.Ativo != nil {
		f.Ativo = *in.Ativo
	}
	if in.Observacoes != nil {
		f.Observacoes = in.Observacoes
	}
}

func toEntity(in dto.CriarFuncionarioRequest) *entity.Funcionario {
	fgtsBanco := in.FGTSBanco
	if fgtsBanco == "" {
		fgtsBanco = fgtsBancoPadrao
	}
	return &entity.Funcionario{
		CPF:            in.CPF,
		Nome:           in.Nome,
		DataNascimento: in.DataNascimento.Time,

		MunicipioNascimento: in.MunicipioNascimento,
		UFNascimento:        in.UFNascimento,
		NomeMae:             in.NomeMae,
		NomePai:             in.NomePai,
		Nacionalidade:       in.Nacionalidade,
		EstadoCivil:         in.EstadoCivil,

		RGNumero:             in.RGNumero,
		RGDataEmissao:        in.RGDataEmissao.Time,
		RGOrgaoEmissor:       in.RGOrgaoEmissor,
		CTPSNumero:           in.CTPSNumero,
		CTPSSerie:            in.CTPSSerie,
		CTPSUF:               in.CTPSUF,
		CTPSDataEmissao:      in.CTPSDataEmissao.Time,
		TituloEleitor:        in.TituloEleitor,
		TituloZona:           in.TituloZona,
		TituloSecao:          in.TituloSecao,
		PIS:                  in.PIS,
		PISDataCadastro:      in.PISDataCadastro.Time,
		Habilitacao:          in.Habilitacao,
		HabilitacaoCategoria: in.HabilitacaoCategoria,
		DocumentoMilitar:     in.DocumentoMilitar,
		CBO:                  in.CBO,

		Endereco:            in.Endereco,
		EnderecoNumero:      in.EnderecoNumero,
		EnderecoComplemento: in.EnderecoComplemento,
		Bairro:              in.Bairro,
		Municipio:           in.Municipio,
		UF:                  in.UF,
		CEP:                 in.CEP,
		Telefone:            in.Telefone,
		Email:               in.Email,

		Cargo:                   in.Cargo,
		Funcao:                  in.Funcao,
		Departamento:            in.Departamento,
		DataAdmissao:            in.DataAdmissao.Time,
		Salario:                 in.Salario,
		TipoPagamento:           in.TipoPagamento,
		HorasMensais:            in.HorasMensais,
		TipoContrato:            in.TipoContrato,
		AdicionalPericulosidade: in.AdicionalPericulosidade,
		AdicionalInsalubridade:  in.AdicionalInsalubridade,
		GrauInstrucao:           in.GrauInstrucao,
		FGTSDataOpcao:           in.FGTSDataOpcao.Time,
		FGTSBanco:               fgtsBanco,

		Observacoes: in.Observacoes,
	}
}

func toFuncionarioResponse(f *entity.Funcionario) *dto.FuncionarioResponse {
	if f == nil {
		return nil
	}
	var demissao *dto.Data
	if f.DataDemissao != nil {
		d := dto.NovaData(*f.DataDemissao)
		demissao = &d
	}
	beneficiarios := make([]dto.BeneficiarioResponse, 0, len(f.Beneficiarios))
	for _, b := range f.Beneficiarios {
		beneficiarios = append(beneficiarios, dto.BeneficiarioResponse{
			ID:             b.ID,
			Nome:           b.Nome,
			DataNascimento: dto.NovaData(b.DataNascimento),
			Parentesco:     b.Parentesco,
		})
	}
	return &dto.FuncionarioResponse{
		ID:             f.ID,
		CPF:            f.CPF,
		Nome:           f.Nome,
		DataNascimento: dto.NovaData(f.DataNascimento),

		MunicipioNascimento: f.MunicipioNascimento,
		UFNascimento:        f.UFNascimento,
		NomeMae:             f.NomeMae,
		NomePai:             f.NomePai,
		Nacionalidade:       f.Nacionalidade,
		EstadoCivil:         f.EstadoCivil,

		RGNumero:             f.RGNumero,
		RGDataEmissao:        dto.NovaData(f.RGDataEmissao),
		RGOrgaoEmissor:       f.RGOrgaoEmissor,
		CTPSNumero:           f.CTPSNumero,
		CTPSSerie:            f.CTPSSerie,
		CTPSUF:               f.CTPSUF,
		CTPSDataEmissao:      dto.NovaData(f.CTPSDataEmissao),
		TituloEleitor:        f.TituloEleitor,
		TituloZona:           f.TituloZona,
		TituloSecao:          f.TituloSecao,
		PIS:                  f.PIS,
		PISDataCadastro:      dto.NovaData(f.PISDataCadastro),
		Habilitacao:          f.Habilitacao,
		HabilitacaoCategoria: f.HabilitacaoCategoria,
		DocumentoMilitar:     f.DocumentoMilitar,
		CBO:                  f.CBO,

		Endereco:            f.Endereco,
		EnderecoNumero:      f.EnderecoNumero,
		EnderecoComplemento: f.EnderecoComplemento,
		Bairro:              f.Bairro,
		Municipio:           f.Municipio,
		UF:                  f.UF,
		CEP:                 f.CEP,
		Telefone:            f.Telefone,
		Email:               f.Email,

		Cargo:                   f.Cargo,
		Funcao:                  f.Funcao,
		Departamento:            f.Departamento,
		DataAdmissao:            dto.NovaData(f.DataAdmissao),
		DataDemissao:            demissao,
		Salario:                 f.Salario,
		TipoPagamento:           f.TipoPagamento,
		HorasMensais:            f.HorasMensais,
		TipoContrato:            f.TipoContrato,
		AdicionalPericulosidade: f.AdicionalPericulosidade,
		AdicionalInsalubridade:  f.AdicionalInsalubridade,
		GrauInstrucao:           f.GrauInstrucao,
		FGTSDataOpcao:           dto.NovaData(f.FGTSDataOpcao),
		FGTSBanco:               f.FGTSBanco,

		CriadoEm:    f.CriadoEm,
		Ativo:       f.Ativo,
		Observacoes: f.Observacoes,

		Beneficiarios: beneficiarios,
	}
}
