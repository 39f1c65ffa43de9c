package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
)

// ─────────────────────────────────────────────────────────────────────────────
// Tests respondError — traducción de errores de dominio al contrato HTTP
// ─────────────────────────────────────────────────────────────────────────────

func taxonomyApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func TestRespondError_Taxonomia(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"credenciales", domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"no autenticado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"empresa inactiva", domain.ErrCompanyInactive, fiber.StatusForbidden, "COMPANY_INACTIVE"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE"},
		{"límite de activos", domain.ErrAssetLimitReached, fiber.StatusConflict, "ASSET_LIMIT"},
		{"límite de usuarios", domain.ErrUserLimitReached, fiber.StatusConflict, "USER_LIMIT"},
		{"error inesperado", fmt.Errorf("se cayó la base"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := taxonomyApp(tc.err)
			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

// El mensaje de duplicado es genérico: no revela qué campo chocó con el índice
// único, y la colisión se reporta como 400 igual que cualquier entrada inválida.
func TestRespondError_DuplicadoGenerico(t *testing.T) {
	app := taxonomyApp(fmt.Errorf("email ya registrado: %w", domain.ErrDuplicate))
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DUPLICATE", body.Code)
	assert.Equal(t, "el registro ya existe", body.Message)
	assert.NotContains(t, body.Message, "email")
}
