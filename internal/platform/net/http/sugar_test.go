package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type countDTO struct {
	Max int `json:"max"`
}

func TestSugar_JSONVerbs(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())

	// GET: accept body {}, ignore parsed input
	GetJSON(r, "/g", func(_ *http.Request) (any, error) {
		return map[string]string{"ok": "get"}, nil
	})
	PostJSON[countDTO](r, "/p", func(_ *http.Request, in countDTO) (any, error) {
		return map[string]int{"d": in.Max * 2}, nil
	})
	PutJSON[countDTO](r, "/u", func(_ *http.Request, in countDTO) (any, error) {
		return map[string]int{"t": in.Max * 3}, nil
	})
	PatchJSON[countDTO](r, "/x", func(_ *http.Request, in countDTO) (any, error) {
		return map[string]int{"max": in.Max}, nil
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	cases := []struct {
		method, path, body, want string
	}{
		{http.MethodGet, "/g", `{}`, `"ok":"get"`},
		{http.MethodPost, "/p", `{"max":7}`, `"d":14`},
		{http.MethodPut, "/u", `{"max":5}`, `"t":15`},
		{http.MethodPatch, "/x", `{"max":9}`, `"max":9`},
	}
	for _, c := range cases {
		rr := do(c.method, c.path, c.body)
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), c.want) {
			t.Fatalf("%s %s => code=%d body=%q", c.method, c.path, rr.Code, rr.Body.String())
		}
	}

	// bind error propagates via sugar+JSONHandler
	if rr := do(http.MethodPost, "/p", `{`); rr.Code == http.StatusOK {
		t.Fatalf("POST /p with bad json should not be 200; got %d", rr.Code)
	}
}
