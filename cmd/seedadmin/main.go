// Comando seedadmin cria a primeira conta admin do RH.
//
// O endpoint /rh/cadastrar exige um token admin, então um banco recém-criado
// precisa deste comando uma única vez:
//
//	SEED_EMAIL=admin@empresa.com SEED_SENHA=trocar123 go run ./cmd/seedadmin
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cbdisson/sistema-rh/internal/application/auth"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/infrastructure/postgres"
	"github.com/cbdisson/sistema-rh/pkg/config"
	"github.com/cbdisson/sistema-rh/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("SEED_EMAIL")
	senha := os.Getenv("SEED_SENHA")
	nome := os.Getenv("SEED_NOME")
	if email == "" || senha == "" {
		log.Fatal().Msg("SEED_EMAIL e SEED_SENHA são obrigatórios")
	}
	if nome == "" {
		nome = "Administrador"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	hash, err := auth.HashSenha(senha)
	if err != nil {
		log.Fatal().Err(err).Msg("hash da senha")
	}

	repo := postgres.NewUsuarioRHRepository(pool)
	usuario := &entity.UsuarioRH{
		ID:          uuid.New().String(),
		Email:       email,
		Nome:        nome,
		SenhaHash:   hash,
		NivelAcesso: entity.NivelAdmin,
		CriadoEm:    time.Now(),
	}
	if err := repo.Criar(usuario); err != nil {
		log.Fatal().Err(err).Msg("criar conta admin")
	}
	log.Info().Str("email", email).Msg("conta admin criada")
}
