package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edutech-lab/school-library-service/pkg/auth"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()

	ctx := auth.SetAuthContext(context.Background(), "ms-reed", auth.RoleLibrarian)

	ident, err := auth.FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, "ms-reed", ident.Username)
	require.Equal(t, auth.RoleLibrarian, ident.Role)
	require.True(t, ident.IsLibrarian())
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	_, err := auth.FromContext(context.Background())
	require.Error(t, err)
}
