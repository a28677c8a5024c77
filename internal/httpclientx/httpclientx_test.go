package httpclientx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/govapi/govapi/internal/model"
	"github.com/govapi/govapi/internal/model/mocks"
	"github.com/govapi/govapi/internal/testingx"
)

func TestGetRaw(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		expected := []byte(`[{"id":"1","name":"Экономика"}]`)

		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(200, expected))
		defer server.Close()

		respbody, err := GetRaw(context.Background(), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, server.URL)

		t.Log(respbody)
		t.Log(err)

		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expected, respbody); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an empty body we return an empty non-nil slice", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(204, nil))
		defer server.Close()

		respbody, err := GetRaw(context.Background(), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, server.URL)

		if err != nil {
			t.Fatal(err)
		}
		if respbody == nil || len(respbody) != 0 {
			t.Fatal("expected empty non-nil body")
		}
	})

	t.Run("with an invalid URL", func(t *testing.T) {
		respbody, err := GetRaw(context.Background(), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, "\t")

		if err == nil || !strings.HasSuffix(err.Error(), "invalid control character in URL") {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})

	t.Run("when the round trip fails", func(t *testing.T) {
		expected := errors.New("mocked error")
		clnt := &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}

		respbody, err := GetRaw(context.Background(), &Config{
			Client:    clnt,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, "http://api.duma.gov.ru/api/T1/topics.json")

		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})

	t.Run("when the server is not listening", func(t *testing.T) {
		respbody, err := GetRaw(context.Background(), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, testingx.MustNewClosedHTTPServerURL())

		if err == nil {
			t.Fatal("expected an error")
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})

	t.Run("when the context has already been canceled", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(200, []byte(`{}`)))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		respbody, err := GetRaw(ctx, &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: "govapi/0.0.0-test",
		}, server.URL)

		if !errors.Is(err, context.Canceled) {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})
}

func TestHTTPStatusCodeHandling(t *testing.T) {
	server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(403, []byte(`{"code":"403"}`)))
	defer server.Close()

	respbody, err := GetRaw(context.Background(), &Config{
		Client:    http.DefaultClient,
		Logger:    model.DiscardLogger,
		UserAgent: "govapi/0.0.0-test",
	}, server.URL)

	t.Log(respbody)
	t.Log(err)

	if err.Error() != "httpclientx: request failed: 403 Forbidden" {
		t.Fatal(err)
	}

	if respbody != nil {
		t.Fatal("expected nil response body")
	}

	var orig *ErrRequestFailed
	if !errors.As(err, &orig) {
		t.Fatal("not an *ErrRequestFailed instance")
	}
	if orig.StatusCode != 403 {
		t.Fatal("unexpected status code", orig.StatusCode)
	}
	if diff := cmp.Diff([]byte(`{"code":"403"}`), orig.Body); diff != "" {
		t.Fatal(diff)
	}
}

// This test ensures that GetRaw sets the expected HTTP headers.
func TestGetRawHeadersOkay(t *testing.T) {
	var (
		gotheaders http.Header
		gotmu      sync.Mutex
	)

	server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotmu.Lock()
		gotheaders = r.Header
		gotmu.Unlock()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := GetRaw(context.Background(), &Config{
		Client:    http.DefaultClient,
		Logger:    model.DiscardLogger,
		UserAgent: "govapi/0.0.0-test",
	}, server.URL)
	if err != nil {
		t.Fatal(err)
	}

	defer gotmu.Unlock()
	gotmu.Lock()

	if value := gotheaders.Get("User-Agent"); value != "govapi/0.0.0-test" {
		t.Fatal("unexpected User-Agent value", value)
	}
}

// This test ensures that GetRaw never logs the configured secrets.
func TestGetRawLoggingScrubsSecrets(t *testing.T) {
	server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(200, []byte(`[]`)))
	defer server.Close()

	logger := &testingx.Logger{}

	_, err := GetRaw(context.Background(), &Config{
		Client:    http.DefaultClient,
		Logger:    logger,
		Secrets:   []string{"", "s3cr3t-t0k3n", "s3cr3t-app"},
		UserAgent: "govapi/0.0.0-test",
	}, server.URL+"/api/s3cr3t-t0k3n/topics.json?app_token=s3cr3t-app")
	if err != nil {
		t.Fatal(err)
	}

	debuglines := logger.DebugLines()
	t.Log(debuglines)
	if len(debuglines) != 2 {
		t.Fatal("expected to see two debug lines")
	}
	for _, line := range debuglines {
		if strings.Contains(line, "s3cr3t") {
			t.Fatal("secret leaked into the logs", line)
		}
		if !strings.Contains(line, "/api/[scrubbed]/topics.json?app_token=[scrubbed]") {
			t.Fatal("unexpected log line", line)
		}
	}
}

func TestGetRawLoggingScrubsEscapedSecrets(t *testing.T) {
	const (
		token    = "tok en"
		appToken = "a+b/c"
		escaped  = "/api/tok%20en/topics.json?app_token=a%2Bb%2Fc"
	)
	secrets := []string{token, appToken}

	assertScrubbed := func(t *testing.T, debuglines []string) {
		if len(debuglines) != 2 {
			t.Fatal("expected to see two debug lines", debuglines)
		}
		for _, line := range debuglines {
			if strings.Contains(line, "tok%20en") || strings.Contains(line, "a%2Bb%2Fc") {
				t.Fatal("secret leaked into the logs", line)
			}
			if !strings.Contains(line, "/api/[scrubbed]/topics.json?app_token=[scrubbed]") {
				t.Fatal("unexpected log line", line)
			}
		}
	}

	t.Run("on success", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(200, []byte(`[]`)))
		defer server.Close()
		logger := &testingx.Logger{}

		_, err := GetRaw(context.Background(), &Config{
			Client:  http.DefaultClient,
			Logger:  logger,
			Secrets: secrets,
		}, server.URL+escaped)
		if err != nil {
			t.Fatal(err)
		}
		assertScrubbed(t, logger.DebugLines())
	})

	t.Run("when the round trip fails", func(t *testing.T) {
		logger := &testingx.Logger{}
		clnt := &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, &url.Error{Op: "Get", URL: req.URL.String(), Err: errors.New("connection refused")}
			},
		}

		_, err := GetRaw(context.Background(), &Config{
			Client:  clnt,
			Logger:  logger,
			Secrets: secrets,
		}, "http://api.duma.gov.ru"+escaped)
		if err == nil {
			t.Fatal("expected an error")
		}
		assertScrubbed(t, logger.DebugLines())
	})
}

// This test ensures that GetRaw falls back to the transport's User-Agent.
func TestGetRawDefaultUserAgent(t *testing.T) {
	var (
		gotua string
		gotmu sync.Mutex
	)

	server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotmu.Lock()
		gotua = r.Header.Get("User-Agent")
		gotmu.Unlock()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := GetRaw(context.Background(), &Config{
		Client: http.DefaultClient,
		Logger: model.DiscardLogger,
	}, server.URL)
	if err != nil {
		t.Fatal(err)
	}

	defer gotmu.Unlock()
	gotmu.Lock()
	if !strings.HasPrefix(gotua, "Go-http-client/") {
		t.Fatal("unexpected User-Agent value", gotua)
	}
}
