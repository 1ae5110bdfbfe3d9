package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
	"github.com/cbdisson/sistema-rh/pkg/jwt"
)

// Locals keys para Email e NivelAcesso no Fiber.
const (
	LocalEmail = "email"
	LocalNivel = "nivel_acesso"
)

// naoAutorizado responde 401 com corpo uniforme. Token ausente, malformado,
// expirado, com assinatura inválida ou de conta inexistente produzem exatamente
// a mesma resposta, para não revelar qual verificação falhou.
func naoAutorizado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "Token inválido ou expirado",
	})
}

// AuthMiddleware valida o Bearer Token JWT, confirma que a conta do subject
// ainda existe no banco e carrega email e nível de acesso em c.Locals.
func AuthMiddleware(jwtSecret string, usuarioRepo repository.UsuarioRHRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return naoAutorizado(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return naoAutorizado(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return naoAutorizado(c)
		}
		email, nivel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return naoAutorizado(c)
		}
		usuario, err := usuarioRepo.GetByEmail(email)
		if err != nil {
			// Falha de infraestrutura, não de credencial: não mascarar como 401.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INTERNAL",
				Message: "erro ao validar o token",
			})
		}
		if usuario == nil {
			return naoAutorizado(c)
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalNivel, nivel)
		return c.Next()
	}
}

// RequireAdmin autoriza apenas contas com nível admin. Deve ser usado DEPOIS
// de AuthMiddleware. Responde 403 (não 401): a identidade é conhecida, o
// privilégio é que falta.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetNivel(c) != entity.NivelAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Acesso restrito a administradores",
			})
		}
		return c.Next()
	}
}

// GetEmail devolve o email do contexto (depois do middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetNivel devolve o nível de acesso do contexto (depois do middleware de auth).
func GetNivel(c *fiber.Ctx) string {
	v := c.Locals(LocalNivel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
