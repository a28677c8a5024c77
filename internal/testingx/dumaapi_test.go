package testingx

import (
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/govapi/govapi/internal/runtimex"
)

func TestDumaAPIBackend(t *testing.T) {
	backend := NewDumaAPIBackend("T1")
	backend.SetResponse("topics.json", []byte(`[{"id":1,"name":"Экономика"}]`))
	srv := MustNewHTTPServer(backend.NewMux())
	defer srv.Close()

	t.Run("with the right token and a known resource", func(t *testing.T) {
		resp := runtimex.Try1(http.Get(srv.URL + "/api/T1/topics.json?app_token=A1"))
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			t.Fatal("unexpected status code", resp.StatusCode)
		}
		data := runtimex.Try1(io.ReadAll(resp.Body))
		if diff := cmp.Diff([]byte(`[{"id":1,"name":"Экономика"}]`), data); diff != "" {
			t.Fatal(diff)
		}
		if ctype := resp.Header.Get("Content-Type"); ctype != "application/json; charset=utf-8" {
			t.Fatal("unexpected content-type", ctype)
		}
	})

	t.Run("with the wrong token", func(t *testing.T) {
		resp := runtimex.Try1(http.Get(srv.URL + "/api/T2/topics.json"))
		defer resp.Body.Close()
		if resp.StatusCode != 403 {
			t.Fatal("unexpected status code", resp.StatusCode)
		}
	})

	t.Run("with an unknown resource", func(t *testing.T) {
		resp := runtimex.Try1(http.Get(srv.URL + "/api/T1/stages.json"))
		defer resp.Body.Close()
		if resp.StatusCode != 404 {
			t.Fatal("unexpected status code", resp.StatusCode)
		}
	})

	t.Run("we record the requests", func(t *testing.T) {
		reqs := backend.Requests()
		if len(reqs) != 3 {
			t.Fatal("unexpected number of requests", len(reqs))
		}
		if reqs[0].Query().Get("app_token") != "A1" {
			t.Fatal("unexpected query", reqs[0].RawQuery)
		}
	})
}
