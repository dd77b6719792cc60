package config

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/poller"
)

const AppName = "bojsubmit"

// Config is the merged result of every config layer.
type Config struct {
	AutoLogin   string `yaml:"boj_auto_login"`
	OnlineJudge string `yaml:"online_judge"`
	Language    string `yaml:"language"`
	// TargetFile is absolute once loaded when it came from a file layer.
	TargetFile string `yaml:"target_file"`
	CodeOpen   string `yaml:"code_open"`

	BaseURL         string        `yaml:"base_url"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	PollTimeout     time.Duration `yaml:"poll_timeout"`
	PollMaxAttempts int           `yaml:"poll_max_attempts"`

	NatsURL     string `yaml:"nats_url"`
	NatsSubject string `yaml:"nats_subject"`
	SQSQueueURL string `yaml:"sqs_queue_url"`

	LogLevel string `yaml:"log_level"`

	// Sources lists the files that contributed, in the order applied.
	Sources []string `yaml:"-"`
}

func Defaults() *Config {
	return &Config{
		CodeOpen:        boj.Open.String(),
		BaseURL:         boj.DefaultBaseURL,
		PollInterval:    poller.DefaultInterval,
		PollTimeout:     poller.DefaultTimeout,
		PollMaxAttempts: poller.DefaultMaxAttempts,
		NatsSubject:     "bojsubmit.runs",
		LogLevel:        "info",
	}
}

var logLevels = []any{"debug", "info", "warn", "error"}

var validLanguage = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := boj.ParseLanguage(s)
	return err
})

// natsServers accepts the comma-separated server list nats.Connect takes,
// e.g. "nats://a:4222,nats://b:4222".
var natsServers = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, server := range strings.Split(s, ",") {
		u, err := url.Parse(strings.TrimSpace(server))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("must be a list of server URLs")
		}
	}
	return nil
})

func (c *Config) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Language, validLanguage),
		validation.Field(&c.CodeOpen, validation.In("open", "close", "onlyaccepted")),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.PollInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.PollTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.PollMaxAttempts, validation.Min(0)),
		validation.Field(&c.NatsURL, natsServers),
		validation.Field(&c.SQSQueueURL, is.URL),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
	)
}

// ErrMissingLogin means no login cookie pair is configured.
var ErrMissingLogin = errors.New("boj_auto_login and online_judge must be set")

// ValidateLogin checks what every request to the judge needs.
func (c *Config) ValidateLogin() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.AutoLogin == "" || c.OnlineJudge == "" {
		return ErrMissingLogin
	}
	return validation.ValidateStruct(
		c,
		validation.Field(&c.AutoLogin, cookieValue),
		validation.Field(&c.OnlineJudge, cookieValue),
	)
}

var cookieValue = validation.By(func(value any) error {
	s, _ := value.(string)
	return (&http.Cookie{Name: "v", Value: s}).Valid()
})

// ValidateSubmit checks what a submission needs on top of the login.
func (c *Config) ValidateSubmit() error {
	if err := c.ValidateLogin(); err != nil {
		return err
	}
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Language, validation.Required),
		validation.Field(&c.TargetFile, validation.Required),
	)
}

func (c *Config) Login() boj.LoginCookie {
	return boj.LoginCookie{AutoLogin: c.AutoLogin, OnlineJudge: c.OnlineJudge}
}

func (c *Config) Poll() poller.Config {
	return poller.Config{
		Interval:    c.PollInterval,
		MaxAttempts: c.PollMaxAttempts,
		Timeout:     c.PollTimeout,
	}
}

// Masked returns a copy safe to print: cookie values are shortened.
func (c *Config) Masked() Config {
	m := *c
	m.AutoLogin = mask(c.AutoLogin)
	m.OnlineJudge = mask(c.OnlineJudge)
	return m
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
