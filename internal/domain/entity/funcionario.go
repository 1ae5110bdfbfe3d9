package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Beneficiario é um dependente de um funcionário (filho, cônjuge, etc.).
type Beneficiario struct {
	ID             int64
	FuncionarioID  int64
	Nome           string
	DataNascimento time.Time
	Parentesco     string
}

// Funcionario representa a ficha completa de um funcionário no RH.
// Campos opcionais no cadastro são ponteiros; os demais são obrigatórios.
type Funcionario struct {
	ID             int64
	CPF            string // formato 000.000.000-00, único
	Nome           string
	DataNascimento time.Time

	// Filiação e dados civis
	MunicipioNascimento string
	UFNascimento        string
	NomeMae             string
	NomePai             string
	Nacionalidade       string
	EstadoCivil         string

	// Documentos
	RGNumero             string
	RGDataEmissao        time.Time
	RGOrgaoEmissor       string
	CTPSNumero           string
	CTPSSerie            string
	CTPSUF               string
	CTPSDataEmissao      time.Time
	TituloEleitor        string
	TituloZona           string
	TituloSecao          string
	PIS                  string
	PISDataCadastro      time.Time
	Habilitacao          *string
	HabilitacaoCategoria *string
	DocumentoMilitar     *string
	CBO                  string

	// Endereço e contato
	Endereco            string
	EnderecoNumero      string
	EnderecoComplemento *string
	Bairro              string
	Municipio           string
	UF                  string
	CEP                 string
	Telefone            string
	Email               string

	// Vínculo empregatício
	Cargo                   string
	Funcao                  string
	Departamento            string
	DataAdmissao            time.Time
	DataDemissao            *time.Time
	Salario                 decimal.Decimal // > 0, NUMERIC(10,2)
	TipoPagamento           string
	HorasMensais            int // em (0, 300]
	TipoContrato            string
	AdicionalPericulosidade decimal.Decimal // percentual em [0, 100]
	AdicionalInsalubridade  decimal.Decimal // percentual em [0, 100]
	GrauInstrucao           string
	FGTSDataOpcao           time.Time
	FGTSBanco               string

	CriadoEm    time.Time
	Ativo       bool
	Observacoes *string

	// Preenchido apenas por buscas explícitas com dependentes.
	Beneficiarios []Beneficiario
}
