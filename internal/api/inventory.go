package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/invenkit/inventario/internal/domain"
	"github.com/invenkit/inventario/internal/ledger"
)

type productItem struct {
	IDProducto string `json:"id_producto" csv:"id_producto"`
	Nombre     string `json:"nombre" csv:"nombre"`
	Categoria  string `json:"categoria" csv:"categoria"`
	Stock      int    `json:"stock" csv:"stock"`
}

type importPayload struct {
	Productos     []productItem `json:"productos"`
	UsuarioCorreo string        `json:"usuario_correo"`
}

type salidaPayload struct {
	ProductoID    string `json:"producto_id"`
	Cantidad      int    `json:"cantidad"`
	UsuarioCorreo string `json:"usuario_correo"`
}

func importarProductos(c echo.Context) error {
	var payload importPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Datos de importación inválidos")
	}
	payload.UsuarioCorreo = strings.TrimSpace(payload.UsuarioCorreo)
	if payload.UsuarioCorreo == "" || payload.Productos == nil {
		return fail(c, http.StatusBadRequest, "Datos de importación inválidos")
	}
	return doImport(c, payload.Productos, payload.UsuarioCorreo)
}

// importarProductosCSV accepts the raw CSV file instead of pre-parsed
// JSON, for clients that do not want to parse on their side. Expected
// header: id_producto,nombre,categoria,stock.
func importarProductosCSV(c echo.Context) error {
	usuarioCorreo := strings.TrimSpace(c.QueryParam("usuario_correo"))
	if usuarioCorreo == "" {
		return fail(c, http.StatusBadRequest, "Datos de importación inválidos")
	}
	var items []productItem
	if err := gocsv.Unmarshal(c.Request().Body, &items); err != nil {
		return fail(c, http.StatusBadRequest, "CSV inválido")
	}
	return doImport(c, items, usuarioCorreo)
}

func doImport(c echo.Context, items []productItem, usuarioCorreo string) error {
	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, domain.Product{
			Code:       item.IDProducto,
			Name:       item.Nombre,
			Category:   item.Categoria,
			Stock:      item.Stock,
			OwnerEmail: usuarioCorreo,
		})
	}

	imported, err := svc.ImportProducts(c.Request().Context(), products)
	if err != nil {
		// Items before the failing one are already committed; the batch
		// is safe to re-run because each item is an upsert.
		zap.L().Error("import failed",
			zap.String("usuario_correo", usuarioCorreo),
			zap.Int("imported", imported),
			zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error importando productos")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"mensaje": fmt.Sprintf("Se importaron %d productos", imported),
	})
}

func registrarSalida(c echo.Context) error {
	var payload salidaPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Datos de salida inválidos")
	}
	payload.ProductoID = strings.TrimSpace(payload.ProductoID)
	payload.UsuarioCorreo = strings.TrimSpace(payload.UsuarioCorreo)
	if payload.ProductoID == "" || payload.UsuarioCorreo == "" || payload.Cantidad <= 0 {
		return fail(c, http.StatusBadRequest, "Datos de salida inválidos")
	}

	_, err := svc.RecordOutflow(c.Request().Context(), payload.ProductoID, payload.Cantidad, payload.UsuarioCorreo)
	switch {
	case errors.Is(err, ledger.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "Producto no encontrado")
	case errors.Is(err, ledger.ErrInsufficientStock):
		return fail(c, http.StatusBadRequest, "Stock insuficiente")
	case err != nil:
		zap.L().Error("record outflow failed",
			zap.String("producto_id", payload.ProductoID),
			zap.Int("cantidad", payload.Cantidad),
			zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error registrando salida")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"mensaje": fmt.Sprintf("Salida registrada: %d unidades", payload.Cantidad),
	})
}

func productosPorUsuario(c echo.Context) error {
	rows, err := svc.ProductsByOwner(c.Request().Context(), c.QueryParam("usuario_correo"))
	if err != nil {
		zap.L().Error("list products failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error obteniendo productos")
	}
	if rows == nil {
		rows = []domain.Product{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"productos": rows,
	})
}

func historialSalidas(c echo.Context) error {
	rows, err := svc.OutflowsByOwner(c.Request().Context(), c.QueryParam("usuario_correo"))
	if err != nil {
		zap.L().Error("list outflows failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error obteniendo historial")
	}
	if rows == nil {
		rows = []domain.OutflowRecord{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"salidas": rows,
	})
}

func todosProductos(c echo.Context) error {
	rows, err := svc.AllProducts(c.Request().Context())
	if err != nil {
		zap.L().Error("list all products failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error obteniendo productos")
	}
	if rows == nil {
		rows = []domain.Product{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"total":     len(rows),
		"productos": rows,
	})
}

func todasSalidas(c echo.Context) error {
	rows, err := svc.AllOutflows(c.Request().Context())
	if err != nil {
		zap.L().Error("list all outflows failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error obteniendo salidas")
	}
	if rows == nil {
		rows = []domain.OutflowRecord{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"total":   len(rows),
		"salidas": rows,
	})
}
