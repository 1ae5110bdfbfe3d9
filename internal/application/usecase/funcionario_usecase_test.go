package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/application/usecase"
	"github.com/cbdisson/sistema-rh/internal/domain"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositório em memória
//
// rhStoreMem implementa FuncionarioRepository e BeneficiarioRepository sobre
// mapas, com a mesma semântica do repositório Postgres: IDs sequenciais,
// ativo=true no insert, (nil, nil) quando não encontrado.
// ──────────────────────────────────────────────────────────────────────────────

type rhStoreMem struct {
	seqFunc       int64
	seqBen        int64
	funcionarios  map[int64]entity.Funcionario
	beneficiarios map[int64][]entity.Beneficiario
}

func newRHStoreMem() *rhStoreMem {
	return &rhStoreMem{
		funcionarios:  make(map[int64]entity.Funcionario),
		beneficiarios: make(map[int64][]entity.Beneficiario),
	}
}

func (s *rhStoreMem) Criar(f *entity.Funcionario) error {
	s.seqFunc++
	f.ID = s.seqFunc
	f.CriadoEm = time.Now()
	f.Ativo = true
	cp := *f
	cp.Beneficiarios = nil
	s.funcionarios[f.ID] = cp
	return nil
}

func (s *rhStoreMem) GetByID(id int64) (*entity.Funcionario, error) {
	f, ok := s.funcionarios[id]
	if !ok {
		return nil, nil
	}
	cp := f
	return &cp, nil
}

func (s *rhStoreMem) GetByCPF(cpf string) (*entity.Funcionario, error) {
	for _, f := range s.funcionarios {
		if f.CPF == cpf {
			cp := f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *rhStoreMem) GetComBeneficiarios(id int64) (*entity.Funcionario, error) {
	f, err := s.GetByID(id)
	if err != nil || f == nil {
		return f, err
	}
	bens, _ := s.ListarPorFuncionario(id)
	f.Beneficiarios = bens
	return f, nil
}

func (s *rhStoreMem) Listar(filtro repository.FiltroFuncionarios) ([]*entity.Funcionario, error) {
	out := make([]*entity.Funcionario, 0, len(s.funcionarios))
	for _, f := range s.funcionarios {
		if filtro.Departamento != nil && f.Departamento != *filtro.Departamento {
			continue
		}
		if filtro.Ativo != nil && f.Ativo != *filtro.Ativo {
			continue
		}
		cp := f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *rhStoreMem) Atualizar(f *entity.Funcionario) error {
	if _, ok := s.funcionarios[f.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *f
	cp.Beneficiarios = nil
	s.funcionarios[f.ID] = cp
	return nil
}

func (s *rhStoreMem) Departamentos() ([]string, error) {
	set := make(map[string]struct{})
	for _, f := range s.funcionarios {
		if f.Departamento != "" {
			set[f.Departamento] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

func (s *rhStoreMem) CriarBeneficiario(b *entity.Beneficiario) error {
	s.seqBen++
	b.ID = s.seqBen
	s.beneficiarios[b.FuncionarioID] = append(s.beneficiarios[b.FuncionarioID], *b)
	return nil
}

func (s *rhStoreMem) ListarPorFuncionario(funcionarioID int64) ([]entity.Beneficiario, error) {
	return append([]entity.Beneficiario(nil), s.beneficiarios[funcionarioID]...), nil
}

// benRepoMem adapta rhStoreMem ao porto BeneficiarioRepository.
type benRepoMem struct{ s *rhStoreMem }

func (r benRepoMem) Criar(b *entity.Beneficiario) error { return r.s.CriarBeneficiario(b) }
func (r benRepoMem) ListarPorFuncionario(id int64) ([]entity.Beneficiario, error) {
	return r.s.ListarPorFuncionario(id)
}

// txRunnerMem executa fn diretamente sobre o mesmo store; os testes de
// transação de verdade ficam no nível do repositório Postgres.
type txRunnerMem struct{ s *rhStoreMem }

func (t txRunnerMem) Run(_ context.Context, fn func(repository.FuncionarioRepository, repository.BeneficiarioRepository) error) error {
	return fn(t.s, benRepoMem{t.s})
}

func newTestUseCase() (*usecase.FuncionarioUseCase, *rhStoreMem) {
	store := newRHStoreMem()
	return usecase.NewFuncionarioUseCase(txRunnerMem{store}, store), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders
// ──────────────────────────────────────────────────────────────────────────────

func data(ano int, mes time.Month, dia int) dto.Data {
	return dto.NovaData(time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC))
}

func reqFuncionarioValido(cpf, departamento string) dto.CriarFuncionarioRequest {
	return dto.CriarFuncionarioRequest{
		CPF:            cpf,
		Nome:           "Maria da Silva",
		DataNascimento: data(1990, time.March, 14),

		MunicipioNascimento: "Campinas",
		UFNascimento:        "SP",
		NomeMae:             "Ana da Silva",
		NomePai:             "José da Silva",
		Nacionalidade:       "brasileira",
		EstadoCivil:         "solteira",

		RGNumero:        "12.345.678-9",
		RGDataEmissao:   data(2008, time.June, 2),
		RGOrgaoEmissor:  "SSP-SP",
		CTPSNumero:      "1234567",
		CTPSSerie:       "001",
		CTPSUF:          "SP",
		CTPSDataEmissao: data(2010, time.January, 20),
		TituloEleitor:   "123456789012",
		TituloZona:      "042",
		TituloSecao:     "0137",
		PIS:             "123.45678.90-1",
		PISDataCadastro: data(2010, time.February, 1),
		CBO:             "4110-05",

		Endereco:       "Rua das Acácias",
		EnderecoNumero: "120",
		Bairro:         "Centro",
		Municipio:      "Campinas",
		UF:             "SP",
		CEP:            "13010-000",
		Telefone:       "(19) 99999-0000",
		Email:          "maria.silva@empresa.com.br",

		Cargo:         "Analista Administrativo",
		Funcao:        "Rotinas de pessoal",
		Departamento:  departamento,
		DataAdmissao:  data(2020, time.August, 3),
		Salario:       decimal.NewFromFloat(3500.00),
		TipoPagamento: "mensal",
		HorasMensais:  220,
		TipoContrato:  "CLT",
		GrauInstrucao: "superior completo",
		FGTSDataOpcao: data(2020, time.August, 3),
		FGTSBanco:     "Caixa Econômica Federal",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar
// ──────────────────────────────────────────────────────────────────────────────

func TestCriar_PersisteFuncionarioComBeneficiarios(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	req := reqFuncionarioValido("123.456.789-09", "Financeiro")
	req.Beneficiarios = []dto.BeneficiarioRequest{
		{Nome: "Pedro da Silva", DataNascimento: data(2015, time.May, 10), Parentesco: "filho"},
		{Nome: "Laura da Silva", DataNascimento: data(2018, time.September, 22), Parentesco: "filha"},
	}

	out, err := uc.Criar(ctx, req)
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.True(t, out.Ativo, "funcionário recém-criado deve estar ativo")
	assert.Equal(t, "123.456.789-09", out.CPF)
	assert.True(t, out.Salario.Equal(decimal.NewFromFloat(3500.00)))
	require.Len(t, out.Beneficiarios, 2)
	assert.NotZero(t, out.Beneficiarios[0].ID)
	assert.Equal(t, "Pedro da Silva", out.Beneficiarios[0].Nome)

	// a ficha completa recuperada depois deve trazer os mesmos beneficiários
	ficha, err := uc.BuscarPorID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, ficha)
	assert.Len(t, ficha.Beneficiarios, 2)
}

func TestCriar_CPFDuplicado_RetornaError(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Criar(ctx, reqFuncionarioValido("123.456.789-09", "RH"))
	require.NoError(t, err)

	req := reqFuncionarioValido("123.456.789-09", "RH")
	req.Nome = "Outra Pessoa"
	_, err = uc.Criar(ctx, req)
	assert.ErrorIs(t, err, domain.ErrCPFJaCadastrado)
}

func TestCriar_CPFForaDoFormato_RetornaError(t *testing.T) {
	uc, _ := newTestUseCase()

	req := reqFuncionarioValido("12345678909", "RH") // sem pontuação
	_, err := uc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriar_SalarioZero_RetornaError(t *testing.T) {
	uc, _ := newTestUseCase()

	req := reqFuncionarioValido("123.456.789-09", "RH")
	req.Salario = decimal.Zero
	_, err := uc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriar_HorasMensaisForaDoIntervalo_RetornaError(t *testing.T) {
	uc, _ := newTestUseCase()

	req := reqFuncionarioValido("123.456.789-09", "RH")
	req.HorasMensais = 301
	_, err := uc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.HorasMensais = 0
	_, err = uc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriar_FGTSBancoPadrao(t *testing.T) {
	uc, _ := newTestUseCase()

	req := reqFuncionarioValido("123.456.789-09", "RH")
	req.FGTSBanco = ""
	out, err := uc.Criar(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Caixa Econômica Federal", out.FGTSBanco,
		"cadastro sem banco do FGTS deve assumir o padrão")
}

// ──────────────────────────────────────────────────────────────────────────────
// BuscarPorID / Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscarPorID_Inexistente_RetornaNil(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.BuscarPorID(9999)
	require.NoError(t, err)
	assert.Nil(t, out, "funcionário inexistente deve devolver nil, não erro")
}

func TestListar_FiltroDepartamentoExato(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Criar(ctx, reqFuncionarioValido("111.111.111-11", "Financeiro"))
	require.NoError(t, err)
	_, err = uc.Criar(ctx, reqFuncionarioValido("222.222.222-22", "Financeiro Corporativo"))
	require.NoError(t, err)
	_, err = uc.Criar(ctx, reqFuncionarioValido("333.333.333-33", "RH"))
	require.NoError(t, err)

	dep := "Financeiro"
	out, err := uc.Listar(repository.FiltroFuncionarios{Departamento: &dep})
	require.NoError(t, err)

	// igualdade exata: "Financeiro Corporativo" não entra
	require.Len(t, out, 1)
	assert.Equal(t, "111.111.111-11", out[0].CPF)
}

func TestListar_OrdenadoPorID(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	for _, cpf := range []string{"111.111.111-11", "222.222.222-22", "333.333.333-33"} {
		_, err := uc.Criar(ctx, reqFuncionarioValido(cpf, "RH"))
		require.NoError(t, err)
	}

	out, err := uc.Listar(repository.FiltroFuncionarios{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].ID < out[1].ID && out[1].ID < out[2].ID,
		"a listagem deve vir ordenada por id crescente")
}

func TestListar_FiltroAtivo(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	a, err := uc.Criar(ctx, reqFuncionarioValido("111.111.111-11", "RH"))
	require.NoError(t, err)
	_, err = uc.Criar(ctx, reqFuncionarioValido("222.222.222-22", "RH"))
	require.NoError(t, err)

	_, err = uc.Desativar(a.ID)
	require.NoError(t, err)

	ativo := true
	out, err := uc.Listar(repository.FiltroFuncionarios{Ativo: &ativo})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "222.222.222-22", out[0].CPF)

	inativo := false
	out, err = uc.Listar(repository.FiltroFuncionarios{Ativo: &inativo})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "111.111.111-11", out[0].CPF)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizar_ParcialTocaApenasCamposEnviados(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	criado, err := uc.Criar(ctx, reqFuncionarioValido("123.456.789-09", "RH"))
	require.NoError(t, err)

	novoCargo := "Coordenadora Administrativa"
	novoSalario := decimal.NewFromFloat(5200.00)
	out, err := uc.Atualizar(criado.ID, dto.AtualizarFuncionarioRequest{
		Cargo:   &novoCargo,
		Salario: &novoSalario,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, novoCargo, out.Cargo)
	assert.True(t, out.Salario.Equal(novoSalario))
	// campos não enviados permanecem intactos
	assert.Equal(t, criado.Nome, out.Nome)
	assert.Equal(t, criado.Departamento, out.Departamento)
	assert.Equal(t, criado.Telefone, out.Telefone)
	assert.Equal(t, criado.CPF, out.CPF, "o CPF nunca muda em atualização")
}

func TestAtualizar_PayloadVazio_RetornaError(t *testing.T) {
	uc, _ := newTestUseCase()

	criado, err := uc.Criar(context.Background(), reqFuncionarioValido("123.456.789-09", "RH"))
	require.NoError(t, err)

	_, err = uc.Atualizar(criado.ID, dto.AtualizarFuncionarioRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAtualizar_Inexistente_RetornaNil(t *testing.T) {
	uc, _ := newTestUseCase()

	nome := "Ninguém"
	out, err := uc.Atualizar(9999, dto.AtualizarFuncionarioRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestAtualizar_RegistraDemissao(t *testing.T) {
	uc, _ := newTestUseCase()

	criado, err := uc.Criar(context.Background(), reqFuncionarioValido("123.456.789-09", "RH"))
	require.NoError(t, err)

	demissao := data(2026, time.January, 30)
	inativo := false
	out, err := uc.Atualizar(criado.ID, dto.AtualizarFuncionarioRequest{
		DataDemissao: &demissao,
		Ativo:        &inativo,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotNil(t, out.DataDemissao)
	assert.Equal(t, demissao.Time, out.DataDemissao.Time)
	assert.False(t, out.Ativo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desativar — exclusão lógica
// ──────────────────────────────────────────────────────────────────────────────

func TestDesativar_PreservaFichaEBeneficiarios(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	req := reqFuncionarioValido("123.456.789-09", "RH")
	req.Beneficiarios = []dto.BeneficiarioRequest{
		{Nome: "Pedro da Silva", DataNascimento: data(2015, time.May, 10), Parentesco: "filho"},
	}
	criado, err := uc.Criar(ctx, req)
	require.NoError(t, err)

	out, err := uc.Desativar(criado.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.Ativo, "DELETE marca inativo, não remove")

	// a ficha continua recuperável, com os beneficiários
	ficha, err := uc.BuscarPorID(criado.ID)
	require.NoError(t, err)
	require.NotNil(t, ficha, "exclusão lógica preserva a ficha")
	assert.False(t, ficha.Ativo)
	assert.Len(t, ficha.Beneficiarios, 1)
}

func TestDesativar_Inexistente_RetornaNil(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.Desativar(9999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Departamentos
// ──────────────────────────────────────────────────────────────────────────────

func TestDepartamentos_DistintosOrdenados(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	for cpf, dep := range map[string]string{
		"111.111.111-11": "RH",
		"222.222.222-22": "Financeiro",
		"333.333.333-33": "RH",
		"444.444.444-44": "Almoxarifado",
	} {
		_, err := uc.Criar(ctx, reqFuncionarioValido(cpf, dep))
		require.NoError(t, err)
	}

	out, err := uc.Departamentos()
	require.NoError(t, err)
	assert.Equal(t, []string{"Almoxarifado", "Financeiro", "RH"}, out,
		"departamentos repetidos colapsam e a saída vem ordenada")
}
