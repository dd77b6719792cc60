package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/programme-lv/bojclient/internal/xdg"
	"gopkg.in/yaml.v3"
)

// per-directory file names, applied in this order
var dirFiles = []string{".bc.yml", ".bc.yaml", ".bc.toml"}

const userFile = "config.toml"

// environment overrides
const (
	EnvAutoLogin   = "BOJ_AUTO_LOGIN"
	EnvOnlineJudge = "BOJ_ONLINE_JUDGE"
	EnvLanguage    = "BOJ_LANGUAGE"
	EnvTargetFile  = "BOJ_TARGET_FILE"
)

// layer is one config file; nil fields leave the value underneath untouched.
type layer struct {
	AutoLogin       *string `yaml:"boj_auto_login" toml:"boj_auto_login"`
	OnlineJudge     *string `yaml:"online_judge" toml:"online_judge"`
	Language        *string `yaml:"language" toml:"language"`
	TargetFile      *string `yaml:"target_file" toml:"target_file"`
	CodeOpen        *string `yaml:"code_open" toml:"code_open"`
	BaseURL         *string `yaml:"base_url" toml:"base_url"`
	PollInterval    *string `yaml:"poll_interval" toml:"poll_interval"`
	PollTimeout     *string `yaml:"poll_timeout" toml:"poll_timeout"`
	PollMaxAttempts *int    `yaml:"poll_max_attempts" toml:"poll_max_attempts"`
	NatsURL         *string `yaml:"nats_url" toml:"nats_url"`
	NatsSubject     *string `yaml:"nats_subject" toml:"nats_subject"`
	SQSQueueURL     *string `yaml:"sqs_queue_url" toml:"sqs_queue_url"`
	LogLevel        *string `yaml:"log_level" toml:"log_level"`
}

type Loader struct {
	// WorkDir is where the ancestor walk starts and where .env is read.
	WorkDir string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Dirs defaults to xdg.New(Getenv).
	Dirs *xdg.Dirs
}

// Load merges, lowest priority first: defaults, the XDG config files, every
// directory from the filesystem root down to WorkDir, .env in WorkDir and
// finally the environment. The result is not validated.
func (l *Loader) Load() (*Config, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	dirs := l.Dirs
	if dirs == nil {
		dirs = xdg.New(getenv)
	}
	workDir, err := filepath.Abs(l.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", l.WorkDir, err)
	}

	cfg := Defaults()
	for _, path := range dirs.AppConfigFiles(AppName, userFile) {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	for _, dir := range ancestors(workDir) {
		for _, name := range dirFiles {
			if err := cfg.applyFile(filepath.Join(dir, name)); err != nil {
				return nil, err
			}
		}
	}

	dotenv, err := godotenv.Read(filepath.Join(workDir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	cfg.applyEnv(lookup, workDir)
	return cfg, nil
}

// ancestors returns dir and all of its parents, root first.
func ancestors(dir string) []string {
	var dirs []string
	for {
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var l layer
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(data, &l)
	default:
		err = yaml.Unmarshal(data, &l)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.merge(l, filepath.Dir(path)); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

func (c *Config) merge(l layer, dir string) error {
	setString(&c.AutoLogin, l.AutoLogin)
	setString(&c.OnlineJudge, l.OnlineJudge)
	setString(&c.Language, l.Language)
	setString(&c.CodeOpen, l.CodeOpen)
	setString(&c.BaseURL, l.BaseURL)
	setString(&c.NatsURL, l.NatsURL)
	setString(&c.NatsSubject, l.NatsSubject)
	setString(&c.SQSQueueURL, l.SQSQueueURL)
	setString(&c.LogLevel, l.LogLevel)
	if l.TargetFile != nil {
		c.TargetFile = resolvePath(dir, *l.TargetFile)
	}
	if l.PollMaxAttempts != nil {
		c.PollMaxAttempts = *l.PollMaxAttempts
	}
	if err := setDuration(&c.PollInterval, l.PollInterval); err != nil {
		return fmt.Errorf("poll_interval: %w", err)
	}
	if err := setDuration(&c.PollTimeout, l.PollTimeout); err != nil {
		return fmt.Errorf("poll_timeout: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) string, workDir string) {
	if v := lookup(EnvAutoLogin); v != "" {
		c.AutoLogin = v
	}
	if v := lookup(EnvOnlineJudge); v != "" {
		c.OnlineJudge = v
	}
	if v := lookup(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := lookup(EnvTargetFile); v != "" {
		c.TargetFile = resolvePath(workDir, v)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// resolvePath makes a relative target file relative to the directory of
// the layer that named it.
func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
