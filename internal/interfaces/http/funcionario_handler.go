package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/application/usecase"
	"github.com/cbdisson/sistema-rh/internal/domain"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// FuncionarioHandler trata as requisições HTTP de funcionários (protegido).
type FuncionarioHandler struct {
	uc    *usecase.FuncionarioUseCase
	ficha *usecase.FichaUseCase
}

// NewFuncionarioHandler constrói o handler.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase, ficha *usecase.FichaUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc, ficha: ficha}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// Listar godoc
// @Summary      Listar funcionários
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        departamento  query  string  false  "Filtro por departamento (igualdade exata)"
// @Param        ativo         query  bool    false  "Filtro por situação"
// @Success      200  {array}  dto.FuncionarioResponse
// @Router       /funcionarios [get]
func (h *FuncionarioHandler) Listar(c *fiber.Ctx) error {
	var filtro repository.FiltroFuncionarios
	if dep := c.Query("departamento"); dep != "" {
		filtro.Departamento = &dep
	}
	if ativoStr := c.Query("ativo"); ativoStr != "" {
		ativo, err := strconv.ParseBool(ativoStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ativo deve ser true ou false"})
		}
		filtro.Ativo = &ativo
	}
	out, err := h.uc.Listar(filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao recuperar funcionários"})
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar funcionário pelo ID
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do funcionário"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /funcionarios/{id} [get]
func (h *FuncionarioHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	out, err := h.uc.BuscarPorID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar funcionário"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Funcionário não encontrado"})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Cadastrar funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarFuncionarioRequest  true  "Ficha do funcionário"
// @Success      201   {object}  dto.FuncionarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /funcionarios [post]
func (h *FuncionarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrCPFJaCadastrado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_EXISTS", Message: "CPF já cadastrado no sistema"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao processar o cadastro"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar funcionário (parcial)
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do funcionário"
// @Param        body  body  dto.AtualizarFuncionarioRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.FuncionarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /funcionarios/{id} [put]
func (h *FuncionarioHandler) Atualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.AtualizarFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao atualizar funcionário"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Funcionário não encontrado"})
	}
	return c.JSON(out)
}

// Desativar godoc
// @Summary      Desativar funcionário (exclusão lógica)
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do funcionário"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /funcionarios/{id} [delete]
func (h *FuncionarioHandler) Desativar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	out, err := h.uc.Desativar(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao desativar funcionário"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Funcionário não encontrado"})
	}
	return c.JSON(out)
}

// Departamentos godoc
// @Summary      Listar departamentos distintos
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /departamentos [get]
func (h *FuncionarioHandler) Departamentos(c *fiber.Ctx) error {
	out, err := h.uc.Departamentos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao recuperar departamentos"})
	}
	if out == nil {
		out = []string{}
	}
	return c.JSON(out)
}

// Ficha godoc
// @Summary      Gerar ficha cadastral em PDF
// @Tags         funcionarios
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID do funcionário"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /funcionarios/{id}/ficha [get]
func (h *FuncionarioHandler) Ficha(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	pdfBytes, err := h.ficha.Gerar(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao gerar a ficha"})
	}
	if pdfBytes == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Funcionário não encontrado"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ficha.pdf"`)
	return c.Send(pdfBytes)
}
