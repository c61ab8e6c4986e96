package auth

import (
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService issues HS256 tokens for the administrative API.
type jwtService struct {
	secret []byte
	issuer string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Admin.Secret == "" {
		return nil, errors.New("auth.admin.secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Admin.Secret),
		issuer: cfg.Auth.Admin.Issuer,
	}, nil
}

// GenerateAdminToken creates a signed token for the subject with the given roles.
func (s *jwtService) GenerateAdminToken(subject uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.AdminClaims{
		AdminID: subject,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign admin token")
	}

	return signed, nil
}

// ValidateToken parses the token, accepting only HMAC signatures and the configured issuer.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	claims := &service.AdminClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}
	claims.AdminID = adminID

	return claims, nil
}
