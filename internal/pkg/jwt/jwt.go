package jwt

import (
	"fmt"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

// Service verifies bearer tokens issued by the identity collaborator and
// can mint compatible ones for tooling and tests.
type Service interface {
	GenerateAccessToken(identity user.Identity) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(identity user.Identity) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"employee_id":      identity.EmployeeID,
		"email":            identity.Email,
		"role":             string(identity.Role),
		"needs_onboarding": identity.NeedsOnboarding,
		"type":             tokenTypeAccess,
		"exp":              expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IdentityFromClaims maps verified access-token claims to an Identity.
func IdentityFromClaims(claims map[string]interface{}) (user.Identity, error) {
	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return user.Identity{}, fmt.Errorf("%w: not an access token", user.ErrInvalidToken)
	}

	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" {
		return user.Identity{}, fmt.Errorf("%w: employee_id claim is missing", user.ErrInvalidToken)
	}

	role := user.Role(fmt.Sprint(claims["role"]))
	if !role.IsValid() {
		return user.Identity{}, user.ErrInvalidRole
	}

	email, _ := claims["email"].(string)
	needsOnboarding, _ := claims["needs_onboarding"].(bool)

	return user.Identity{
		EmployeeID:      employeeID,
		Email:           email,
		Role:            role,
		NeedsOnboarding: needsOnboarding,
	}, nil
}
