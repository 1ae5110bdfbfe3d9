package dto

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// BeneficiarioRequest dependente informado no cadastro do funcionário.
type BeneficiarioRequest struct {
	Nome           string `json:"nome"`
	DataNascimento Data   `json:"data_nascimento"`
	Parentesco     string `json:"parentesco"`
}

// BeneficiarioResponse dependente na saída.
type BeneficiarioResponse struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento Data   `json:"data_nascimento"`
	Parentesco     string `json:"parentesco"`
}

// CriarFuncionarioRequest payload completo de cadastro de funcionário.
type CriarFuncionarioRequest struct {
	CPF            string `json:"cpf"`
	Nome           string `json:"nome"`
	DataNascimento Data   `json:"data_nascimento"`

	MunicipioNascimento string `json:"municipio_nascimento"`
	UFNascimento        string `json:"uf_nascimento"`
	NomeMae             string `json:"nome_mae"`
	NomePai             string `json:"nome_pai"`
	Nacionalidade       string `json:"nacionalidade"`
	EstadoCivil         string `json:"estado_civil"`

	RGNumero             string  `json:"rg_numero"`
	RGDataEmissao        Data    `json:"rg_data_emissao"`
	RGOrgaoEmissor       string  `json:"rg_orgao_emissor"`
	CTPSNumero           string  `json:"ctps_numero"`
	CTPSSerie            string  `json:"ctps_serie"`
	CTPSUF               string  `json:"ctps_uf"`
	CTPSDataEmissao      Data    `json:"ctps_data_emissao"`
	TituloEleitor        string  `json:"titulo_eleitor"`
	TituloZona           string  `json:"titulo_zona"`
	TituloSecao          string  `json:"titulo_secao"`
	PIS                  string  `json:"pis"`
	PISDataCadastro      Data    `json:"pis_data_cadastro"`
	Habilitacao          *string `json:"habilitacao,omitempty"`
	HabilitacaoCategoria *string `json:"habilitacao_categoria,omitempty"`
	DocumentoMilitar     *string `json:"documento_militar,omitempty"`
	CBO                  string  `json:"cbo"`

	Endereco            string  `json:"endereco"`
	EnderecoNumero      string  `json:"endereco_numero"`
	EnderecoComplemento *string `json:"endereco_complemento,omitempty"`
	Bairro              string  `json:"bairro"`
	Municipio           string  `json:"municipio"`
	UF                  string  `json:"uf"`
	CEP                 string  `json:"cep"`
	Telefone            string  `json:"telefone"`
	Email               string  `json:"email"`

	Cargo                   string          `json:"cargo"`
	Funcao                  string          `json:"funcao"`
	Departamento            string          `json:"departamento"`
	DataAdmissao            Data            `json:"data_admissao"`
	Salario                 decimal.Decimal `json:"salario"`
	TipoPagamento           string          `json:"tipo_pagamento"`
	HorasMensais            int             `json:"horas_mensais"`
	TipoContrato            string          `json:"tipo_contrato"`
	AdicionalPericulosidade decimal.Decimal `json:"adicional_periculosidade"`
	AdicionalInsalubridade  decimal.Decimal `json:"adicional_insalubridade"`
	GrauInstrucao           string          `json:"grau_instrucao"`
	FGTSDataOpcao           Data            `json:"fgts_data_opcao"`
	FGTSBanco               string          `json:"fgts_banco"`

	Observacoes *string `json:"observacoes,omitempty"`

	Beneficiarios []BeneficiarioRequest `json:"beneficiarios"`
}

// Validar aplica as restrições de schema antes de qualquer escrita.
func (in *CriarFuncionarioRequest) Validar() error {
	if !cpfPattern.MatchString(in.CPF) {
		return fmt.Errorf("cpf deve estar no formato 000.000.000-00")
	}
	if in.Nome == "" || len(in.Nome) > 100 {
		return fmt.Errorf("nome é obrigatório (máx. 100 caracteres)")
	}
	if in.DataNascimento.IsZero() {
		return fmt.Errorf("data_nascimento é obrigatória")
	}
	if len(in.UFNascimento) != 2 || len(in.UF) != 2 || len(in.CTPSUF) != 2 {
		return fmt.Errorf("uf, uf_nascimento e ctps_uf devem ter 2 caracteres")
	}
	if in.Cargo == "" || in.Funcao == "" || in.Departamento == "" {
		return fmt.Errorf("cargo, funcao e departamento são obrigatórios")
	}
	if in.DataAdmissao.IsZero() {
		return fmt.Errorf("data_admissao é obrigatória")
	}
	if !in.Salario.IsPositive() {
		return fmt.Errorf("salario deve ser maior que zero")
	}
	if in.HorasMensais <= 0 || in.HorasMensais > 300 {
		return fmt.Errorf("horas_mensais deve estar entre 1 e 300")
	}
	if err := validarPercentual("adicional_periculosidade", in.AdicionalPericulosidade); err != nil {
		return err
	}
	if err := validarPercentual("adicional_insalubridade", in.AdicionalInsalubridade); err != nil {
		return err
	}
	for i, b := range in.Beneficiarios {
		if b.Nome == "" || b.Parentesco == "" || b.DataNascimento.IsZero() {
			return fmt.Errorf("beneficiarios[%d]: nome, data_nascimento e parentesco são obrigatórios", i)
		}
	}
	return nil
}

func validarPercentual(campo string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s deve estar entre 0 e 100", campo)
	}
	return nil
}

// AtualizarFuncionarioRequest atualização parcial: apenas campos presentes no JSON são alterados.
type AtualizarFuncionarioRequest struct {
	Nome                    *string          `json:"nome,omitempty"`
	Telefone                *string          `json:"telefone,omitempty"`
	Email                   *string          `json:"email,omitempty"`
	Endereco                *string          `json:"endereco,omitempty"`
	EnderecoNumero          *string          `json:"endereco_numero,omitempty"`
	EnderecoComplemento     *string          `json:"endereco_complemento,omitempty"`
	Bairro                  *string          `json:"bairro,omitempty"`
	Municipio               *string          `json:"municipio,omitempty"`
	UF                      *string          `json:"uf,omitempty"`
	CEP                     *string          `json:"cep,omitempty"`
	Cargo                   *string          `json:"cargo,omitempty"`
	Funcao                  *string          `json:"funcao,omitempty"`
	Departamento            *string          `json:"departamento,omitempty"`
	Salario                 *decimal.Decimal `json:"salario,omitempty"`
	TipoPagamento           *string          `json:"tipo_pagamento,omitempty"`
	HorasMensais            *int             `json:"horas_mensais,omitempty"`
	TipoContrato            *string          `json:"tipo_contrato,omitempty"`
	AdicionalPericulosidade *decimal.Decimal `json:"adicional_periculosidade,omitempty"`
	AdicionalInsalubridade  *decimal.Decimal `json:"adicional_insalubridade,omitempty"`
	DataDemissao            *Data            `json:"data_demissao,omitempty"`
	Ativo                   *bool            `json:"ativo,omitempty"`
	Observacoes             *string          `json:"observacoes,omitempty"`
}

// Vazio informa se o payload não traz nenhum campo para atualizar.
func (in *AtualizarFuncionarioRequest) Vazio() bool {
	return in.Nome == nil && in.Telefone == nil && in.Email == nil &&
		in.Endereco == nil && in.EnderecoNumero == nil && in.EnderecoComplemento == nil &&
		in.Bairro == nil && in.Municipio == nil && in.UF == nil && in.CEP == nil &&
		in.Cargo == nil && in.Funcao == nil && in.Departamento == nil &&
		in.Salario == nil && in.TipoPagamento == nil && in.HorasMensais == nil &&
		in.TipoContrato == nil && in.AdicionalPericulosidade == nil &&
		in.AdicionalInsalubridade == nil && in.DataDemissao == nil &&
		in.Ativo == nil && in.Observacoes == nil
}

// Validar aplica as restrições de schema aos campos presentes.
func (in *AtualizarFuncionarioRequest) Validar() error {
	if in.Nome != nil && (*in.Nome == "" || len(*in.Nome) > 100) {
		return fmt.Errorf("nome não pode ser vazio (máx. 100 caracteres)")
	}
	if in.UF != nil && len(*in.UF) != 2 {
		return fmt.Errorf("uf deve ter 2 caracteres")
	}
	if in.Salario != nil && !in.Salario.IsPositive() {
		return fmt.Errorf("salario deve ser maior que zero")
	}
	if in.HorasMensais != nil && (*in.HorasMensais <= 0 || *in.HorasMensais > 300) {
		return fmt.Errorf("horas_mensais deve estar entre 1 e 300")
	}
	if in.AdicionalPericulosidade != nil {
		if err := validarPercentual("adicional_periculosidade", *in.AdicionalPericulosidade); err != nil {
			return err
		}
	}
	if in.AdicionalInsalubridade != nil {
		if err := validarPercentual("adicional_insalubridade", *in.AdicionalInsalubridade); err != nil {
			return err
		}
	}
	return nil
}

// FuncionarioResponse ficha completa na saída.
type FuncionarioResponse struct {
	ID             int64  `json:"id"`
	CPF            string `json:"cpf"`
	Nome           string `json:"nome"`
	DataNascimento Data   `json:"data_nascimento"`

	MunicipioNascimento string `json:"municipio_nascimento"`
	UFNascimento        string `json:"uf_nascimento"`
	NomeMae             string `json:"nome_mae"`
	NomePai             string `json:"nome_pai"`
	Nacionalidade       string `json:"nacionalidade"`
	EstadoCivil         string `json:"estado_civil"`

	RGNumero             string  `json:"rg_numero"`
	RGDataEmissao        Data    `json:"rg_data_emissao"`
	RGOrgaoEmissor       string  `json:"rg_orgao_emissor"`
	CTPSNumero           string  `json:"ctps_numero"`
	CTPSSerie            string  `json:"ctps_serie"`
	CTPSUF               string  `json:"ctps_uf"`
	CTPSDataEmissao      Data    `json:"ctps_data_emissao"`
	TituloEleitor        string  `json:"titulo_eleitor"`
	TituloZona           string  `json:"titulo_zona"`
	TituloSecao          string  `json:"titulo_secao"`
	PIS                  string  `json:"pis"`
	PISDataCadastro      Data    `json:"pis_data_cadastro"`
	Habilitacao          *string `json:"habilitacao,omitempty"`
	HabilitacaoCategoria *string `json:"habilitacao_categoria,omitempty"`
	DocumentoMilitar     *string `json:"documento_militar,omitempty"`
	CBO                  string  `json:"cbo"`

	Endereco            string  `json:"endereco"`
	EnderecoNumero      string  `json:"endereco_numero"`
	EnderecoComplemento *string `json:"endereco_complemento,omitempty"`
	Bairro              string  `json:"bairro"`
	Municipio           string  `json:"municipio"`
	UF                  string  `json:"uf"`
	CEP                 string  `json:"cep"`
	Telefone            string  `json:"telefone"`
	Email               string  `json:"email"`

	Cargo                   string          `json:"cargo"`
	Funcao                  string          `json:"funcao"`
	Departamento            string          `json:"departamento"`
	DataAdmissao            Data            `json:"data_admissao"`
	DataDemissao            *Data           `json:"data_demissao,omitempty"`
	Salario                 decimal.Decimal `json:"salario"`
	TipoPagamento           string          `json:"tipo_pagamento"`
	HorasMensais            int             `json:"horas_mensais"`
	TipoContrato            string          `json:"tipo_contrato"`
	AdicionalPericulosidade decimal.Decimal `json:"adicional_periculosidade"`
	AdicionalInsalubridade  decimal.Decimal `json:"adicional_insalubridade"`
	GrauInstrucao           string          `json:"grau_instrucao"`
	FGTSDataOpcao           Data            `json:"fgts_data_opcao"`
	FGTSBanco               string          `json:"fgts_banco"`

	CriadoEm    time.Time `json:"criado_em"`
	Ativo       bool      `json:"ativo"`
	Observacoes *string   `json:"observacoes,omitempty"`

	Beneficiarios []BeneficiarioResponse `json:"beneficiarios"`
}
