// Package configure contains the configure subcommand.
package configure

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/govapi/govapi/internal/cli/root"
	"github.com/govapi/govapi/internal/config"
	"github.com/govapi/govapi/internal/httpclientx"
	"github.com/govapi/govapi/pkg/govapi"
	"github.com/pkg/errors"
)

// options contains the configure command line options.
type options struct {
	Token          string
	AppToken       string
	ResponseFormat string
	ServiceRoot    string
	Yes            bool
}

// interactive returns whether we need to prompt the user.
func (opts *options) interactive() bool {
	return !opts.Yes && opts.Token == "" && opts.AppToken == "" &&
		opts.ResponseFormat == "" && opts.ServiceRoot == ""
}

// noFormat is the answer meaning that there is no default format.
const noFormat = "(none)"

// prompter asks the user a question. It is the signature of survey.AskOne.
type prompter func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

func init() {
	cmd := root.Command("configure", "Save the tokens and the default response format.")

	opts := &options{}
	cmd.Flag("set-token", "Token identifying the caller.").StringVar(&opts.Token)
	cmd.Flag("set-app-token", "Token identifying the application.").StringVar(&opts.AppToken)
	cmd.Flag("set-format", "Default response format.").
		EnumVar(&opts.ResponseFormat, string(govapi.FormatJSON), string(govapi.FormatXML), string(govapi.FormatRSS))
	cmd.Flag("set-service-root", "Service root URL.").StringVar(&opts.ServiceRoot)
	cmd.Flag("yes", "Do not prompt; only apply the given flags.").BoolVar(&opts.Yes)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		if opts.interactive() {
			err = prompt(survey.AskOne, sess.FileConfig)
		} else {
			err = apply(opts, sess.FileConfig)
		}
		if err != nil {
			return err
		}
		if err := sess.SaveConfig(); err != nil {
			log.WithError(err).Error("failed to write config")
			return err
		}
		logSummary(log.Log, sess.FileConfig)
		return nil
	})
}

// apply applies the command line flags to the config.
func apply(opts *options, c *config.Config) error {
	c.Lock()
	if opts.Token != "" {
		c.Token = opts.Token
	}
	if opts.AppToken != "" {
		c.AppToken = opts.AppToken
	}
	if opts.ResponseFormat != "" {
		c.ResponseFormat = govapi.ResponseFormat(opts.ResponseFormat)
	}
	if opts.ServiceRoot != "" {
		c.ServiceRoot = opts.ServiceRoot
	}
	c.Unlock()
	return validate(c)
}

// prompt asks the user for the config values, using the current
// values as the defaults.
func prompt(askOne prompter, c *config.Config) error {
	c.Lock()
	defer c.Unlock()

	token := c.Token
	err := askOne(&survey.Input{
		Message: "Token (see http://api.duma.gov.ru/key-request):",
		Default: c.Token,
	}, &token, survey.WithValidator(survey.Required))
	if err != nil {
		return errors.Wrap(err, "asking the token")
	}

	appToken := c.AppToken
	err = askOne(&survey.Input{
		Message: "Application token (optional):",
		Default: c.AppToken,
	}, &appToken)
	if err != nil {
		return errors.Wrap(err, "asking the application token")
	}

	options := []string{noFormat}
	for _, format := range govapi.SupportedFormats() {
		options = append(options, string(format))
	}
	format := noFormat
	if c.ResponseFormat != "" {
		format = string(c.ResponseFormat)
	}
	err = askOne(&survey.Select{
		Message: "Default response format:",
		Options: options,
		Default: format,
	}, &format)
	if err != nil {
		return errors.Wrap(err, "asking the response format")
	}
	if format == noFormat {
		format = ""
	}

	c.Token = token
	c.AppToken = appToken
	c.ResponseFormat = govapi.ResponseFormat(format)
	return nil
}

// validate ensures we can construct a client using the config.
func validate(c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := govapi.NewClient(c.ClientConfig()); err != nil {
		return err
	}
	return nil
}

// logSummary emits a "table" typed log describing the config.
func logSummary(logger log.Interface, c *config.Config) {
	cc := c.ClientConfig()
	format := string(cc.Format)
	if format == "" {
		format = noFormat
	}
	serviceRoot := cc.ServiceRoot
	if serviceRoot == "" {
		serviceRoot = govapi.DefaultServiceRoot
	}
	logger.WithFields(log.Fields{
		"type":            "table",
		"token":           scrub(cc.Token),
		"app_token":       scrub(cc.AppToken),
		"response_format": format,
		"service_root":    serviceRoot,
	}).Info("configuration")
}

// scrub hides a secret leaving a hint of whether it is set.
func scrub(secret string) string {
	if secret == "" {
		return ""
	}
	return httpclientx.ScrubbedPlaceholder
}
