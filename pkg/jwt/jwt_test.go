package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

const secret = "s3cr3t"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "co-1", "manager", "propiedades-api", 5)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "co-1", claims.CompanyID)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "propiedades-api", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "co-1", "admin", "x", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "co-1", "admin", "x", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_SinEmpresa(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "", "admin", "x", 5)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err, "una sesión sin empresa no es válida")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "co-1", "admin", "x", 5)
	assert.Error(t, err)
}

func TestTokenFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, jwt.TokenFromContext(ctx))
	assert.Equal(t, "abc", jwt.TokenFromContext(jwt.WithToken(ctx, "abc")))
}
