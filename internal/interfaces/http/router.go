package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cbdisson/sistema-rh/internal/application/auth"
	"github.com/cbdisson/sistema-rh/internal/application/usecase"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FuncionarioUC *usecase.FuncionarioUseCase
	FichaUC       *usecase.FichaUseCase
	UsuarioRepo   repository.UsuarioRHRepository
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	autenticado := AuthMiddleware(deps.JWTSecret, deps.UsuarioRepo)
	admin := RequireAdmin()

	// RH: login é público; cadastro e listagem exigem admin
	// (cadastro aberto era uma falha da geração anterior do sistema).
	rh := app.Group("/rh")
	authHandler := NewAuthHandler(deps.AuthUC)
	rh.Post("/login", authHandler.Login)
	rh.Post("/cadastrar", autenticado, admin, authHandler.Cadastrar)
	rh.Get("/usuarios", autenticado, admin, authHandler.ListarUsuarios)

	// Funcionários (protegido)
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC, deps.FichaUC)
	funcionarios := app.Group("/funcionarios", autenticado)
	funcionarios.Get("/", funcionarioHandler.Listar)
	funcionarios.Post("/", funcionarioHandler.Criar)
	funcionarios.Get("/:id", funcionarioHandler.BuscarPorID)
	funcionarios.Put("/:id", funcionarioHandler.Atualizar)
	funcionarios.Delete("/:id", funcionarioHandler.Desativar)
	funcionarios.Get("/:id/ficha", funcionarioHandler.Ficha)

	// Departamentos (protegido)
	app.Get("/departamentos", autenticado, funcionarioHandler.Departamentos)
}
