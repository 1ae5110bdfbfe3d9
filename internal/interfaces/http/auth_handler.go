package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cbdisson/sistema-rh/internal/application/auth"
	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/domain"
)

// AuthHandler trata cadastro, login e listagem de usuários do RH.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Cadastrar godoc
// @Summary      Cadastrar usuário do RH
// @Tags         rh
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastrarUsuarioRHRequest  true  "email, nome, senha, nivel_acesso"
// @Success      201   {object}  dto.UsuarioRHResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /rh/cadastrar [post]
func (h *AuthHandler) Cadastrar(c *fiber.Ctx) error {
	var in dto.CadastrarUsuarioRHRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Nome == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, nome e senha são obrigatórios"})
	}
	if len(in.Senha) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "senha deve ter no mínimo 6 caracteres"})
	}
	usuario, err := h.uc.Cadastrar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailJaCadastrado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "Email já cadastrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nivel_acesso inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao processar o cadastro"})
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login godoc
// @Summary      Autenticar usuário do RH
// @Tags         rh
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /rh/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são obrigatórios"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Email desconhecido e senha incorreta compartilham a mesma resposta.
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Email ou senha incorretos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao autenticar"})
	}
	return c.JSON(out)
}

// ListarUsuarios godoc
// @Summary      Listar usuários do RH (somente admin)
// @Tags         rh
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UsuarioRHResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /rh/usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	out, err := h.uc.ListarUsuarios()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar usuários"})
	}
	return c.JSON(out)
}
