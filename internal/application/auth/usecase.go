package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cbdisson/sistema-rh/internal/application/dto"
	"github.com/cbdisson/sistema-rh/internal/domain"
	"github.com/cbdisson/sistema-rh/internal/domain/entity"
	"github.com/cbdisson/sistema-rh/internal/domain/repository"
	"github.com/cbdisson/sistema-rh/pkg/jwt"
)

// custo bcrypt fixado; suficiente contra força bruta e ajustável sem migração
// (hashes antigos continuam verificáveis).
const custoBcrypt = 12

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro, login e listagem de usuários do RH.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRHRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRHRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// HashSenha gera hash bcrypt da senha em texto.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), custoBcrypt)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificarSenha compara a senha em texto com o hash armazenado.
// Qualquer erro interno (hash malformado inclusive) conta como não confere.
func VerificarSenha(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// Cadastrar cria um usuário do RH: hasheia a senha com bcrypt e persiste.
// Devolve domain.ErrEmailJaCadastrado se o email já existir.
func (uc *AuthUseCase) Cadastrar(in dto.CadastrarUsuarioRHRequest) (*dto.UsuarioRHResponse, error) {
	existing, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	nivel := in.NivelAcesso
	if nivel == "" {
		nivel = entity.NivelUser
	}
	if !entity.NivelValido(nivel) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := HashSenha(in.Senha)
	if err != nil {
		return nil, err
	}
	usuario := &entity.UsuarioRH{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Nome:        in.Nome,
		SenhaHash:   hash,
		NivelAcesso: nivel,
		CriadoEm:    time.Now(),
	}
	if err := uc.usuarioRepo.Criar(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica email/senha e emite um JWT com sub=email e nivel=nivel_acesso.
// Email desconhecido e senha incorreta produzem exatamente o mesmo erro, para
// não revelar a existência da conta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !VerificarSenha(in.Senha, usuario.SenhaHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.Email, usuario.NivelAcesso, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ListarUsuarios devolve todas as contas do RH, sem o hash da senha.
func (uc *AuthUseCase) ListarUsuarios() ([]dto.UsuarioRHResponse, error) {
	usuarios, err := uc.usuarioRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioRHResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

func toUsuarioResponse(u *entity.UsuarioRH) *dto.UsuarioRHResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioRHResponse{
		ID:          u.ID,
		Email:       u.Email,
		Nome:        u.Nome,
		NivelAcesso: u.NivelAcesso,
		CriadoEm:    u.CriadoEm,
	}
}
