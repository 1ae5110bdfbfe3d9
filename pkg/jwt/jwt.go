package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais o nível de acesso da aplicação.
// O payload segue o contrato {sub: email, nivel: nivel_acesso, exp: unix}.
type Claims struct {
	jwt.RegisteredClaims
	Nivel string `json:"nivel"` // "user" | "admin" | "gerente" | "assistente"
}

// Generate gera um token JWT assinado (HS256) com email no subject e o nível de acesso.
func Generate(secret, email, nivel, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Nivel: nivel,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida assinatura e expiração e devolve email e nível de acesso.
// Retorna erro se o token for malformado, expirado, tiver assinatura incorreta
// ou estiver sem sub/nivel. Quem chama deve tratar todos os casos de forma uniforme.
func Parse(secret, tokenString string) (email, nivel string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" || claims.Nivel == "" {
		return "", "", fmt.Errorf("claims obrigatórios ausentes")
	}
	return claims.Subject, claims.Nivel, nil
}
