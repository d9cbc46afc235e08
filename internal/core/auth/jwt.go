package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-gin-wishlist/internal/core/config"
)

// ErrInvalidToken 结构/签名/过期统一返回这个，不区分原因
var ErrInvalidToken = errors.New("invalid token")

const DefaultTTL = 15 * time.Minute

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims // sub = 用户 id
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Leeway time.Duration
	Now    func() time.Time // 测试注入
}

// NewJWTer 启动时构造一次，之后只读；换 secret 即作废全部旧 token
func NewJWTer(c config.JWT) (*JWTer, error) {
	if c.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &JWTer{
		Secret: []byte(c.Secret),
		Issuer: c.Issuer,
		TTL:    time.Duration(c.AccessTokenTTLMin) * time.Minute,
		Leeway: time.Duration(c.LeewaySec) * time.Second,
	}, nil
}

func (j *JWTer) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

func (j *JWTer) Issue(subject, email string) (string, error) {
	ttl := j.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return j.IssueWithTTL(subject, email, ttl)
}

func (j *JWTer) IssueWithTTL(subject, email string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 任何失败都只返回 ErrInvalidToken
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}
	if j.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(j.Leeway))
	}

	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return j.Secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
