package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/invenkit/inventario/internal/domain"
)

type loginPayload struct {
	Correo string `json:"correo"`
}

func loginUsuario(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Correo requerido")
	}
	correo := strings.TrimSpace(payload.Correo)
	if correo == "" {
		return fail(c, http.StatusBadRequest, "Correo requerido")
	}

	if _, err := svc.RecordLogin(c.Request().Context(), correo); err != nil {
		zap.L().Error("record login failed", zap.String("correo", correo), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error registrando login")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"mensaje": fmt.Sprintf("Sesión registrada para %s", correo),
	})
}

func usuariosLogueados(c echo.Context) error {
	rows, err := svc.LoginEvents(c.Request().Context())
	if err != nil {
		zap.L().Error("list login events failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error obteniendo usuarios")
	}
	if rows == nil {
		rows = []domain.LoginEvent{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"total":    len(rows),
		"usuarios": rows,
	})
}
