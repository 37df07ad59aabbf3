package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleTeacher   Role = "TEACHER"
	RoleLibrarian Role = "LIBRARIAN"
)

// Identity is the request-scoped actor passed into every service call.
type Identity struct {
	Username string
	Role     Role
}

func (id Identity) IsLibrarian() bool {
	return id.Role == RoleLibrarian
}

type Profile struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var JWTKey = jwtKey()

func jwtKey() []byte {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("library-dev-key")
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, username string, role Role) context.Context {
	return context.WithValue(ctx, ctxKey{}, Identity{Username: username, Role: role})
}

func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.Username == "" {
		return Identity{}, errors.New("no identity in context")
	}
	return id, nil
}
