package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/govapi/govapi/pkg/govapi"
)

func TestReadConfig(t *testing.T) {
	t.Run("with a valid config using comments", func(t *testing.T) {
		config, err := ReadConfig("testdata/valid-config.json")
		if err != nil {
			t.Fatal(err)
		}
		expect := govapi.Config{
			Token:       "T1",
			AppToken:    "A1",
			Format:      govapi.FormatJSON,
			ServiceRoot: "https://mirror.example.org/api/",
		}
		if diff := cmp.Diff(expect, config.ClientConfig()); diff != "" {
			t.Fatal(diff)
		}
		if config.Path() != "testdata/valid-config.json" {
			t.Fatal("unexpected path", config.Path())
		}
	})

	t.Run("with a missing file", func(t *testing.T) {
		config, err := ReadConfig(filepath.Join(t.TempDir(), "config.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})
}

func TestParseConfig(t *testing.T) {
	t.Run("we set the version when missing", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"token": "T1"}`))
		if err != nil {
			t.Fatal(err)
		}
		if config.Version != Version {
			t.Fatal("unexpected version", config.Version)
		}
	})

	t.Run("with invalid HuJSON", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"token": `))
		if err == nil || !strings.HasPrefix(err.Error(), "parsing hujson: ") {
			t.Fatal("unexpected error", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})

	t.Run("with a type mismatch", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"token": 1}`))
		if err == nil || !strings.HasPrefix(err.Error(), "parsing json: ") {
			t.Fatal("unexpected error", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})

	t.Run("with an invalid format", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"token": "T1", "response_format": "csv"}`))
		var invalid *govapi.ErrInvalidFormat
		if !errors.As(err, &invalid) {
			t.Fatal("unexpected error", err)
		}
		if err.Error() != `validating: govapi: invalid format: "csv"` {
			t.Fatal("unexpected message", err.Error())
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})

	t.Run("with a version from the future", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"_version": 7}`))
		if err == nil || err.Error() != "validating: unsupported config version: 7" {
			t.Fatal("unexpected error", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("we can read back what we wrote", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "home", "config.json")
		config := New(path)
		config.Token = "T1"
		config.ResponseFormat = govapi.FormatXML
		if err := config.Write(); err != nil {
			t.Fatal(err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm()&0077 != 0 {
			t.Fatal("the config should be private", stat.Mode())
		}

		again, err := ReadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(config.ClientConfig(), again.ClientConfig()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("without a path", func(t *testing.T) {
		config := &Config{}
		if err := config.Write(); err == nil || err.Error() != "config file path is empty" {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvToken:    "T2",
		EnvAppToken: "",
	}
	lookup := func(key string) (string, bool) {
		value, found := env[key]
		return value, found
	}
	config := &Config{Token: "T1", AppToken: "A1"}
	cc := config.ClientConfig()
	ApplyEnv(&cc, lookup)
	expect := govapi.Config{Token: "T2", AppToken: "A1"}
	if diff := cmp.Diff(expect, cc); diff != "" {
		t.Fatal(diff)
	}
	if config.Token != "T1" {
		t.Fatal("ApplyEnv should not modify the config", config.Token)
	}
}

func TestDefaultHome(t *testing.T) {
	t.Run("with GOVAPI_HOME", func(t *testing.T) {
		t.Setenv(EnvHome, "/srv/govapi")
		home, err := DefaultHome()
		if err != nil {
			t.Fatal(err)
		}
		if home != "/srv/govapi" {
			t.Fatal("unexpected home", home)
		}
	})

	t.Run("without GOVAPI_HOME", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		home, err := DefaultHome()
		if err != nil {
			t.Skip("no home directory", err)
		}
		if filepath.Base(home) != ".govapi" {
			t.Fatal("unexpected home", home)
		}
	})
}
