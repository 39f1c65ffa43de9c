package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "itasset-manager-test"
)

func testIdentity() pkgjwt.Identity {
	return pkgjwt.Identity{
		UserID:    "00000000-0000-0000-0000-000000000001",
		Email:     "ana@empresa.ec",
		FirstName: "Ana",
		LastName:  "Mora",
		Role:      "manager_owner",
	}
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)

	tok, err := svc.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.UserID)
	assert.Equal(t, "ana@empresa.ec", claims.Email)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, "Mora", claims.LastName)
	assert.Equal(t, "manager_owner", claims.Role)
	assert.Nil(t, claims.SupportMode, "sin impersonación no debe haber support_mode")
	assert.False(t, claims.InSupportMode())
}

func TestIssueAndVerify_ConModoSoporte(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)
	started := time.Now().Truncate(time.Second)

	id := testIdentity()
	id.Role = "super_admin"
	id.SupportMode = &pkgjwt.SupportMode{
		CompanyID: "00000000-0000-0000-0000-000000000002",
		AdminID:   id.UserID,
		StartedAt: started,
	}

	tok, err := svc.Issue(id)
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	require.True(t, claims.InSupportMode())
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", claims.SupportMode.CompanyID)
	assert.Equal(t, id.UserID, claims.SupportMode.AdminID)
	assert.WithinDuration(t, started, claims.SupportMode.StartedAt, time.Second)
}

func TestVerify_ExpiraEnSieteDias(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)

	tok, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)

	expected := time.Now().Add(pkgjwt.TokenTTL)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute,
		"el token debe expirar 7 días después de su emisión")
}

func TestVerify_RechazaSecretoDistinto(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)
	otro := pkgjwt.NewService("otro-secreto-completamente-distinto", testIssuer)

	tok, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	_, err = otro.Verify(tok)
	assert.Error(t, err, "un token firmado con otro secreto no debe verificar")
}

func TestVerify_RechazaTokenManipulado(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)

	tok, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	// Alterar un byte del payload invalida la firma.
	manipulado := []byte(tok)
	mid := len(manipulado) / 2
	if manipulado[mid] == 'A' {
		manipulado[mid] = 'B'
	} else {
		manipulado[mid] = 'A'
	}

	_, err = svc.Verify(string(manipulado))
	assert.Error(t, err)
}

func TestVerify_RechazaBasura(t *testing.T) {
	svc := pkgjwt.NewService(testSecret, testIssuer)

	_, err := svc.Verify("no.es.un-jwt")
	assert.Error(t, err)

	_, err = svc.Verify("")
	assert.Error(t, err)
}
