// Package config resolves picker settings from command-line flags and
// SHARKIT_* environment variables. There is no config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SHARKIT_DIR.
const EnvPrefix = "SHARKIT"

const (
	keyDir        = "dir"
	keyNoPreview  = "no-preview"
	keyIgnoreFile = "ignore-file"
	keyIgnore     = "ignore"
	keyHighlight  = "highlight"
	keyStyle      = "style"
	keyMarkdown   = "markdown"
	keyLogFile    = "log-file"
	keyDebug      = "debug"
)

// Config holds the resolved settings for one run.
type Config struct {
	Dir        string
	NoPreview  bool
	IgnoreFile string
	Ignore     []string
	Highlight  bool
	Style      string
	Markdown   bool
	LogFile    string
	Debug      bool
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		Dir:        ".",
		IgnoreFile: ".gitignore",
		Highlight:  true,
		Style:      "nord",
		Markdown:   true,
	}
}

// RegisterFlags adds the picker flags to fs with defaults from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(keyDir, "d", d.Dir, "directory to list")
	fs.Bool(keyNoPreview, d.NoPreview, "start with the preview pane hidden")
	fs.String(keyIgnoreFile, d.IgnoreFile, "gitignore-style file (inside dir) whose matches are dimmed")
	fs.StringSliceP(keyIgnore, "i", d.Ignore, "extra glob patterns to dim, e.g. '*.log' (repeatable)")
	fs.Bool(keyHighlight, d.Highlight, "syntax-highlight previews")
	fs.String(keyStyle, d.Style, "chroma style used for highlighting")
	fs.Bool(keyMarkdown, d.Markdown, "render markdown previews")
	fs.String(keyLogFile, d.LogFile, "write logs to this file")
	fs.Bool(keyDebug, d.Debug, "enable debug logging")
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(keyDir, d.Dir)
	v.SetDefault(keyNoPreview, d.NoPreview)
	v.SetDefault(keyIgnoreFile, d.IgnoreFile)
	v.SetDefault(keyIgnore, d.Ignore)
	v.SetDefault(keyHighlight, d.Highlight)
	v.SetDefault(keyStyle, d.Style)
	v.SetDefault(keyMarkdown, d.Markdown)
	v.SetDefault(keyLogFile, d.LogFile)
	v.SetDefault(keyDebug, d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load binds fs into v and returns the resolved settings. Flags set on the
// command line win over environment variables, which win over defaults.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	c := Config{
		Dir:        v.GetString(keyDir),
		NoPreview:  v.GetBool(keyNoPreview),
		IgnoreFile: v.GetString(keyIgnoreFile),
		Ignore:     splitList(v.GetStringSlice(keyIgnore)),
		Highlight:  v.GetBool(keyHighlight),
		Style:      v.GetString(keyStyle),
		Markdown:   v.GetBool(keyMarkdown),
		LogFile:    v.GetString(keyLogFile),
		Debug:      v.GetBool(keyDebug),
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	return c, nil
}

// splitList splits comma-separated items the way a repeated slice flag does,
// so SHARKIT_IGNORE="*.log,*.tmp" yields two patterns like -i does.
func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
