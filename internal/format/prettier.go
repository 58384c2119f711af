package format

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Prettier formats by piping the source through `npx prettier` with an
// explicit parser, the way the generated output would be formatted inside a
// frontend project.
type Prettier struct {
	// Command overrides the launcher, "npx" by default. Tests point this
	// at a stub.
	Command string
}

// Format implements Service.
func (p Prettier) Format(src string, opts Options) (string, error) {
	launcher := p.Command
	if launcher == "" {
		launcher = "npx"
	}
	args := []string{"prettier", "--parser", string(opts.Dialect)}
	if opts.Quote == QuoteSingle {
		args = append(args, "--single-quote")
	}
	cmd := exec.Command(launcher, args...)
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "prettier: %s", strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// WithFallback returns a Service that tries primary and falls back to
// secondary when primary fails (prettier not installed, no network for
// npx, malformed exec environment).
func WithFallback(primary, secondary Service) Service {
	return fallback{primary: primary, secondary: secondary}
}

type fallback struct {
	primary   Service
	secondary Service
}

func (f fallback) Format(src string, opts Options) (string, error) {
	out, err := f.primary.Format(src, opts)
	if err == nil {
		return out, nil
	}
	return f.secondary.Format(src, opts)
}
