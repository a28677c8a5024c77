package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/govapi/govapi/internal/config"
	"github.com/govapi/govapi/pkg/govapi"
)

func lookupFromMap(env map[string]string) func(key string) (string, bool) {
	return func(key string) (string, bool) {
		value, found := env[key]
		return value, found
	}
}

func TestNewSession(t *testing.T) {
	t.Run("flags override env which overrides the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := []byte(`{"token": "file-T", "app_token": "file-A", "response_format": "xml"}`)
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Fatal(err)
		}
		env := lookupFromMap(map[string]string{
			config.EnvToken:    "env-T",
			config.EnvAppToken: "env-A",
		})

		sess, err := NewSession(&Options{ConfigPath: path, AppToken: "flag-A"}, env)
		if err != nil {
			t.Fatal(err)
		}
		expect := govapi.Config{Token: "env-T", AppToken: "flag-A", Format: govapi.FormatXML}
		if diff := cmp.Diff(expect, sess.ClientConfig()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we do not save the env and flag overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte(`{"token": "file-T"}`), 0600); err != nil {
			t.Fatal(err)
		}
		env := lookupFromMap(map[string]string{config.EnvToken: "env-T"})

		sess, err := NewSession(&Options{ConfigPath: path, AppToken: "flag-A"}, env)
		if err != nil {
			t.Fatal(err)
		}
		if sess.FileConfig.Token != "file-T" || sess.FileConfig.AppToken != "" {
			t.Fatal("overrides leaked into the file config", sess.FileConfig.Token, sess.FileConfig.AppToken)
		}
		if err := sess.SaveConfig(); err != nil {
			t.Fatal(err)
		}

		saved, err := config.ReadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		expect := govapi.Config{Token: "file-T"}
		if diff := cmp.Diff(expect, saved.ClientConfig()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("a missing config path yields defaults saved to such a path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		sess, err := NewSession(&Options{ConfigPath: path}, lookupFromMap(nil))
		if err != nil {
			t.Fatal(err)
		}
		sess.FileConfig.Token = "T1"
		if err := sess.SaveConfig(); err != nil {
			t.Fatal(err)
		}
		c, err := config.ReadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if c.Token != "T1" {
			t.Fatal("unexpected token", c.Token)
		}
	})

	t.Run("a broken config file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte(`{`), 0600); err != nil {
			t.Fatal(err)
		}
		sess, err := NewSession(&Options{ConfigPath: path}, lookupFromMap(nil))
		if err == nil {
			t.Fatal("expected an error")
		}
		if sess != nil {
			t.Fatal("expected nil session")
		}
	})

	t.Run("without a config path we use the home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(config.EnvHome, home)

		sess, err := NewSession(&Options{}, lookupFromMap(nil))
		if err != nil {
			t.Fatal(err)
		}
		sess.FileConfig.Token = "T1"
		if err := sess.SaveConfig(); err != nil {
			t.Fatal(err)
		}

		again, err := NewSession(&Options{}, lookupFromMap(nil))
		if err != nil {
			t.Fatal(err)
		}
		if again.FileConfig.Token != "T1" {
			t.Fatal("unexpected token", again.FileConfig.Token)
		}
		if _, err := os.Stat(filepath.Join(home, config.StoreKey)); err != nil {
			t.Fatal(err)
		}
	})
}
