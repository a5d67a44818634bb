// Package api exposes the HTTP surface of the inventory tracker. The
// wire contract (Spanish field names, `{success, mensaje}` shapes and
// fixed per-endpoint error messages) predates this implementation and
// is kept intact for the existing frontends.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invenkit/inventario/internal/domain"
	"github.com/invenkit/inventario/internal/webserver"
)

// Ledger is the slice of the inventory ledger service the handlers use.
// Declared here so tests can substitute a fake store.
type Ledger interface {
	RecordLogin(ctx context.Context, email string) (*domain.LoginEvent, error)
	ImportProducts(ctx context.Context, products []domain.Product) (int, error)
	RecordOutflow(ctx context.Context, productCode string, quantity int, ownerEmail string) (*domain.OutflowRecord, error)
	ProductsByOwner(ctx context.Context, email string) ([]domain.Product, error)
	OutflowsByOwner(ctx context.Context, email string) ([]domain.OutflowRecord, error)
	AllProducts(ctx context.Context) ([]domain.Product, error)
	AllOutflows(ctx context.Context) ([]domain.OutflowRecord, error)
	LoginEvents(ctx context.Context) ([]domain.LoginEvent, error)
}

var svc Ledger

// RegisterRoutes wires every endpoint onto the shared web server.
func RegisterRoutes(l Ledger) {
	svc = l
	webserver.GET("/", index)
	webserver.ApiPOST("/login-usuario", loginUsuario)
	webserver.ApiPOST("/importar-productos", importarProductos)
	webserver.ApiPOST("/importar-productos-csv", importarProductosCSV)
	webserver.ApiPOST("/registrar-salida", registrarSalida)
	webserver.ApiGET("/productos", productosPorUsuario)
	webserver.ApiGET("/historial-salidas", historialSalidas)
	webserver.ApiGET("/usuarios-logueados", usuariosLogueados)
	webserver.ApiGET("/todos-productos", todosProductos)
	webserver.ApiGET("/todas-salidas", todasSalidas)
}

func index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": "API de Inventario funcionando 🚀",
		"fecha":   time.Now().UTC().Format(time.RFC3339),
	})
}

// fail writes the endpoint's fixed error message. Storage detail never
// reaches the caller; it goes to the log instead.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}
