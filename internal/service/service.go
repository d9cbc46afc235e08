package service

// PasswordHasher 凭据生成/校验（utils.Argon2Hasher 实现）
type PasswordHasher interface {
	Hash(pw string) (string, error)
	// Verify 不匹配只返回 false，不是错误
	Verify(encoded, pw string) bool
}

// TokenIssuer 签发 bearer token（auth.JWTer 实现）
type TokenIssuer interface {
	Issue(subject, email string) (string, error)
}
