package catalog

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/gobwas/glob"
)

// Matcher decides whether a file name of the listed directory is ignored.
type Matcher interface {
	Match(name string) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(name string) bool

func (f MatcherFunc) Match(name string) bool { return f(name) }

type nothing struct{}

func (nothing) Match(string) bool { return false }

// Nothing never matches.
var Nothing Matcher = nothing{}

type gitMatcher struct {
	m gitignore.Matcher
}

func (g gitMatcher) Match(name string) bool {
	return g.m.Match([]string{name}, false)
}

// LoadGitignore reads the gitignore-style file called file inside dir. A
// missing or unreadable file yields Nothing; loading never fails.
func LoadGitignore(dir, file string, logger *slog.Logger) Matcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if file == "" {
		return Nothing
	}
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, file)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("ignore file unreadable, ignoring nothing", "path", path, "err", err)
		}
		return Nothing
	}

	patterns := ParseGitignore(data)
	if len(patterns) == 0 {
		return Nothing
	}
	logger.Debug("ignore file loaded", "path", path, "patterns", len(patterns))
	return gitMatcher{m: gitignore.NewMatcher(patterns)}
}

// ParseGitignore turns gitignore file contents into patterns. Blank lines and
// comments are dropped the same way git does.
func ParseGitignore(data []byte) []gitignore.Pattern {
	var ps []gitignore.Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps
}

type globMatcher []glob.Glob

func (gs globMatcher) Match(name string) bool {
	for _, g := range gs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// CompileGlobs builds a matcher from shell-style patterns such as "*.log".
// Patterns that do not compile are logged and dropped.
func CompileGlobs(patterns []string, logger *slog.Logger) Matcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var gs globMatcher
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			logger.Warn("dropping bad ignore pattern", "pattern", p, "err", err)
			continue
		}
		gs = append(gs, g)
	}
	if len(gs) == 0 {
		return Nothing
	}
	return gs
}

// AnyOf matches when any of ms matches. Nil matchers are skipped.
func AnyOf(ms ...Matcher) Matcher {
	var live []Matcher
	for _, m := range ms {
		if m == nil {
			continue
		}
		if _, none := m.(nothing); none {
			continue
		}
		live = append(live, m)
	}
	switch len(live) {
	case 0:
		return Nothing
	case 1:
		return live[0]
	}
	return MatcherFunc(func(name string) bool {
		for _, m := range live {
			if m.Match(name) {
				return true
			}
		}
		return false
	})
}
