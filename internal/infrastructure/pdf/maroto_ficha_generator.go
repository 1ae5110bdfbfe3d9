// Package pdf implementa a geração da Ficha Cadastral do Funcionário em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome + CPF  │  Matrícula + Situação                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DADOS PESSOAIS: nascimento / filiação / estado civil        │
//	│  DOCUMENTOS: RG / CTPS / Título / PIS / CBO                  │
//	│  ENDEREÇO E CONTATO                                          │
//	│  VÍNCULO: cargo / departamento / salário / contrato          │
//	│  TABELA: Beneficiários (nome | nascimento | parentesco)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cbdisson/sistema-rh/internal/application/usecase"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.FichaPDFGenerator = (*MarotoFichaGenerator)(nil)

// MarotoFichaGenerator implementa usecase.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

// NewMarotoFichaGenerator constrói o gerador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GerarFichaPDF gera o PDF da ficha e devolve seus bytes.
func (g *MarotoFichaGenerator) GerarFichaPDF(_ context.Context, f *entity.Funcionario) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha Cadastral do Funcionário", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(dadosPessoaisRow(f))
	m.AddRows(documentosRow(f))
	m.AddRows(enderecoRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(vinculoRows(f)...)

	if len(f.Beneficiarios) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(beneficiariosHeaderRow())
		for _, r := range beneficiariosRows(f.Beneficiarios) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome + CPF (esq) e matrícula + situação (dir).
func headerRow(f *entity.Funcionario) core.Row {
	situacao := "ATIVO"
	if !f.Ativo {
		situacao = "INATIVO"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(f.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CPF: "+f.CPF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA CADASTRAL DO FUNCIONÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Matrícula nº %d", f.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Situação: "+situacao, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func dadosPessoaisRow(f *entity.Funcionario) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DADOS PESSOAIS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Nascimento: %s em %s/%s   |   Nacionalidade: %s   |   Estado civil: %s",
				f.DataNascimento.Format("02/01/2006"),
				f.MunicipioNascimento, f.UFNascimento,
				f.Nacionalidade, f.EstadoCivil,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Mãe: %s   |   Pai: %s", f.NomeMae, f.NomePai),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func documentosRow(f *entity.Funcionario) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DOCUMENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("RG: %s (%s, %s)   |   CTPS: %s série %s/%s   |   PIS: %s",
				f.RGNumero, f.RGOrgaoEmissor, f.RGDataEmissao.Format("02/01/2006"),
				f.CTPSNumero, f.CTPSSerie, f.CTPSUF, f.PIS,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Título de eleitor: %s zona %s seção %s   |   CBO: %s",
				f.TituloEleitor, f.TituloZona, f.TituloSecao, f.CBO,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func enderecoRow(f *entity.Funcionario) core.Row {
	complemento := ""
	if f.EnderecoComplemento != nil && *f.EnderecoComplemento != "" {
		complemento = " " + *f.EnderecoComplemento
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ENDEREÇO E CONTATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, %s%s — %s, %s/%s — CEP %s",
				f.Endereco, f.EnderecoNumero, complemento,
				f.Bairro, f.Municipio, f.UF, f.CEP,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s", f.Telefone, f.Email),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func vinculoRows(f *entity.Funcionario) []core.Row {
	demissao := "—"
	if f.DataDemissao != nil {
		demissao = f.DataDemissao.Format("02/01/2006")
	}
	return []core.Row{
		row.New(14).Add(
			col.New(12).Add(
				text.New("VÍNCULO EMPREGATÍCIO", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("Cargo: %s   |   Função: %s   |   Departamento: %s",
					f.Cargo, f.Funcao, f.Departamento,
				), props.Text{Size: 8, Top: 7, Color: colorGray}),
				text.New(fmt.Sprintf("Admissão: %s   |   Demissão: %s   |   Contrato: %s",
					f.DataAdmissao.Format("02/01/2006"), demissao, f.TipoContrato,
				), props.Text{Size: 8, Top: 12, Color: colorGray}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Salário: R$ %s (%s, %dh mensais)   |   Periculosidade: %s%%   |   Insalubridade: %s%%",
					f.Salario.StringFixed(2), f.TipoPagamento, f.HorasMensais,
					f.AdicionalPericulosidade.StringFixed(0),
					f.AdicionalInsalubridade.StringFixed(0),
				), props.Text{Size: 8, Top: 2, Color: colorGray}),
				text.New(fmt.Sprintf("FGTS: opção em %s, banco %s",
					f.FGTSDataOpcao.Format("02/01/2006"), f.FGTSBanco,
				), props.Text{Size: 8, Top: 7, Color: colorGray}),
			),
		),
	}
}

// beneficiariosHeaderRow: cabeçalho da tabela de dependentes.
func beneficiariosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Beneficiário", 6, align.Left),
		h("Nascimento", 3, align.Center),
		h("Parentesco", 3, align.Left),
	)
}

// beneficiariosRows: uma linha por dependente.
func beneficiariosRows(beneficiarios []entity.Beneficiario) []core.Row {
	result := make([]core.Row, 0, len(beneficiarios))
	for _, b := range beneficiarios {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				b.Nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				b.DataNascimento.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				b.Parentesco,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}
