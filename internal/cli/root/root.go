// Package root contains the root command of govapi and the state shared
// by all the subcommands, which register themselves using [Command].
package root

import (
	"io/fs"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/govapi/govapi/internal/config"
	"github.com/govapi/govapi/internal/kvstore"
	"github.com/govapi/govapi/internal/log/handlers/cli"
	"github.com/govapi/govapi/internal/version"
	"github.com/govapi/govapi/pkg/govapi"
	"github.com/pkg/errors"
)

// Cmd is the root command
var Cmd = kingpin.New("govapi", "Command line client for the legislative-data API of the State Duma.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommands that need a [*Session]
var Init func() (*Session, error)

// Options contains the global command line options.
type Options struct {
	ConfigPath string
	Verbose    bool
	Token      string
	AppToken   string
}

func init() {
	opts := &Options{}
	Cmd.Flag("config", "Set a custom config file path.").Short('c').StringVar(&opts.ConfigPath)
	Cmd.Flag("verbose", "Enable verbose log output.").Short('v').BoolVar(&opts.Verbose)
	Cmd.Flag("token", "Override the configured token.").StringVar(&opts.Token)
	Cmd.Flag("app-token", "Override the configured application token.").StringVar(&opts.AppToken)

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if opts.Verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("govapi version %s", version.Info())
		}

		Init = func() (*Session, error) {
			return NewSession(opts, os.LookupEnv)
		}

		return nil
	})
}

// Session contains the configuration of a govapi invocation.
type Session struct {
	// FileConfig is the configuration as loaded from disk, which is what
	// SaveConfig persists. Use ClientConfig to obtain the configuration
	// including the environment variables and the command line overrides.
	FileConfig *config.Config

	// lookupEnv reads the environment variables.
	lookupEnv func(key string) (string, bool)

	// opts contains the command line overrides.
	opts *Options

	// store is where we save the config when there is no config path.
	store *kvstore.FS
}

// NewSession loads the configuration and creates a new [*Session].
//
// When opts.ConfigPath is set, we read the config from such a path,
// otherwise we use the key-value store inside [config.DefaultHome].
func NewSession(opts *Options, lookupEnv func(key string) (string, bool)) (*Session, error) {
	sess := &Session{lookupEnv: lookupEnv, opts: opts}
	if opts.ConfigPath != "" {
		log.Debugf("Reading config file from %s", opts.ConfigPath)
		c, err := config.ReadConfig(opts.ConfigPath)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Config file %s does not exist; using defaults", opts.ConfigPath)
			c, err = config.New(opts.ConfigPath), nil
		}
		if err != nil {
			return nil, err
		}
		sess.FileConfig = c
	} else {
		home, err := config.DefaultHome()
		if err != nil {
			return nil, err
		}
		log.Debugf("Reading config from %s", home)
		store, err := kvstore.NewFS(home)
		if err != nil {
			return nil, err
		}
		c, err := config.Load(store)
		if err != nil {
			return nil, err
		}
		sess.FileConfig = c
		sess.store = store
	}
	return sess, nil
}

// ClientConfig returns the effective client configuration. The environment
// variables override the config file and the flags override the environment
// variables.
func (sess *Session) ClientConfig() govapi.Config {
	cc := sess.FileConfig.ClientConfig()
	config.ApplyEnv(&cc, sess.lookupEnv)
	if sess.opts.Token != "" {
		cc.Token = sess.opts.Token
	}
	if sess.opts.AppToken != "" {
		cc.AppToken = sess.opts.AppToken
	}
	return cc
}

// SaveConfig persists FileConfig where we loaded it from.
func (sess *Session) SaveConfig() error {
	if sess.store != nil {
		log.Debugf("Saving config into %s", sess.store.Basedir())
		return sess.FileConfig.Save(sess.store)
	}
	log.Debugf("Writing config file to %s", sess.FileConfig.Path())
	return sess.FileConfig.Write()
}
