package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"engetrack/internal/domain/permissions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const segredo = "segredo-de-teste"

func resolverTeste(t *testing.T) *permissions.Resolver {
	t.Helper()
	conteudo := `
usuarios:
  - email: ana@empresa.com.br
    nome: Ana Souza
    permissoes: [tecnica]
  - email: eng@empresa.com.br
    nome: Engenharia
    permissoes: [engenharia]
`
	path := filepath.Join(t.TempDir(), "permissions.yaml")
	if err := os.WriteFile(path, []byte(conteudo), 0o600); err != nil {
		t.Fatalf("writing table: %v", err)
	}
	r, err := permissions.LoadResolver(path)
	if err != nil {
		t.Fatalf("LoadResolver: %v", err)
	}
	return r
}

func tokenPara(t *testing.T, email, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func routerProtegido(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", Auth(segredo, resolverTeste(t)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"nome":  DisplayNameFrom(c),
			"email": c.GetString(ContextEmailKey),
		})
	})
	return r
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		r := routerProtegido(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := routerProtegido(t)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signature", func(t *testing.T) {
		r := routerProtegido(t)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenPara(t, "ana@empresa.com.br", "outro-segredo"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("identity without permissions", func(t *testing.T) {
		r := routerProtegido(t)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenPara(t, "intruso@empresa.com.br", segredo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		r := routerProtegido(t)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenPara(t, "ana@empresa.com.br", segredo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if body := w.Body.String(); !containsAll(body, `"nome":"Ana Souza"`, `"email":"ana@empresa.com.br"`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resolver := resolverTeste(t)

	r := gin.New()
	grupo := r.Group("", Auth(segredo, resolver), RequirePermission(permissions.Engenharia))
	grupo.GET("/restrito", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("capability present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/restrito", nil)
		req.Header.Set("Authorization", "Bearer "+tokenPara(t, "eng@empresa.com.br", segredo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("capability missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/restrito", nil)
		req.Header.Set("Authorization", "Bearer "+tokenPara(t, "ana@empresa.com.br", segredo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
