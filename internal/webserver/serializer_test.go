package webserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSerializeRoundTrip(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = NewJSONSerializer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, echo.Map{"success": true, "mensaje": "ok"}); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"success":true`) || !strings.Contains(body, `"mensaje":"ok"`) {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestDeserializeBadJSON(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = NewJSONSerializer()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var out struct {
		Correo string `json:"correo"`
	}
	err := c.Bind(&out)
	if err == nil {
		t.Fatal("expected bind error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
