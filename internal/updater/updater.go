// Package updater locates and rewrites version strings in managed
// files. A file is classified once by Kind (JSON manifest, plain
// VERSION file, or pattern-embedded source file) and the version is
// extracted, optionally incremented, and written back while preserving
// the surrounding content.
package updater

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/semver"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// versionField is the JSON key holding the version in KindJSON files.
const versionField = "version"

// embeddedVersionRegex locates the literal word VERSION followed,
// non-greedily across any intervening characters, by a semantic-version
// token with an optional alphanumeric pre-release suffix. Only the
// first match in a file is read or rewritten; capture group 1 is the
// version token itself.
var embeddedVersionRegex = regexp.MustCompile(
	`(?s)\bVERSION\b.*?(\d+\.\d+\.\d+(?:-[a-zA-Z0-9]+)?)`,
)

// ErrVersionNotFound is returned when a file yields no version to
// extract: a JSON document without a version field, or a
// pattern-embedded file with no VERSION marker.
var ErrVersionNotFound = errors.New("no version found")

// Options configures an Updater.
type Options struct {
	// Version, when set, is used as the authoritative version instead
	// of extracting one from the file.
	Version string

	// Cmd is the increment command applied during Change.
	// Defaults to semver.CmdSame.
	Cmd semver.Command
}

// Updater performs the read -> extract -> increment -> write sequence
// for a single file. It is constructed fresh per operation and holds no
// state beyond one extract-then-change sequence.
type Updater struct {
	fs      core.FileSystem
	path    string
	kind    Kind
	opts    Options
	version string // validated semver, "" when absent
}

// New creates an Updater for path. The file kind is derived from the
// path; opts may carry an explicit version and an increment command.
func New(fs core.FileSystem, path string, opts Options) *Updater {
	if opts.Cmd == "" {
		opts.Cmd = semver.CmdSame
	}
	return &Updater{
		fs:   fs,
		path: path,
		kind: KindForFile(path),
		opts: opts,
	}
}

// Path returns the file path this updater manages.
func (u *Updater) Path() string {
	return u.path
}

// Kind returns the classified file kind.
func (u *Updater) Kind() Kind {
	return u.kind
}

// Version returns the currently stored version, or "" when absent.
func (u *Updater) Version() string {
	return u.version
}

// SetVersion validates and stores a version string. On invalid input
// the stored version is cleared and a validation error is returned;
// this is a local, recoverable failure.
func (u *Updater) SetVersion(s string) error {
	v, err := semver.ParseVersion(s)
	if err != nil {
		u.version = ""
		return fmt.Errorf("invalid version %q: %w", s, err)
	}
	u.version = v.String()
	return nil
}

// Extract reads the file and pulls out its version according to kind.
// The extracted string is validated and stored; on validation failure
// or when nothing is found, the stored version is cleared and an error
// is returned.
func (u *Updater) Extract(ctx context.Context) (string, error) {
	data, err := u.readFile(ctx)
	if err != nil {
		return "", err
	}

	candidate, err := u.extractFrom(data)
	if err != nil {
		u.version = ""
		return "", err
	}

	if err := u.SetVersion(candidate); err != nil {
		return "", err
	}
	return u.version, nil
}

// extractFrom pulls the version candidate out of raw file content.
func (u *Updater) extractFrom(data []byte) (string, error) {
	switch u.kind {
	case KindJSON:
		result := gjson.GetBytes(data, versionField)
		if !result.Exists() {
			return "", fmt.Errorf("%w: no %q field in %q", ErrVersionNotFound, versionField, u.path)
		}
		return result.String(), nil
	case KindPlain:
		return strings.TrimSpace(string(data)), nil
	default:
		m := embeddedVersionRegex.FindSubmatch(data)
		if m == nil {
			return "", fmt.Errorf("%w: no VERSION marker in %q", ErrVersionNotFound, u.path)
		}
		return string(m[1]), nil
	}
}

// Increment applies cmd to the stored version and re-stores the result.
// It is a no-op (false, nil) when no version is stored or cmd is empty,
// unrecognized, or set. An error from the underlying increment
// algorithm is non-recoverable and must be handled by the caller.
func (u *Updater) Increment(cmd semver.Command) (string, bool, error) {
	if u.version == "" {
		return "", false, nil
	}
	if !cmd.IsValid() || cmd == semver.CmdSet {
		return "", false, nil
	}

	v, err := semver.ParseVersion(u.version)
	if err != nil {
		// The stored version is validated on the way in, so a parse
		// failure here is a defect, not a routine condition.
		return "", false, fmt.Errorf("increment failed on stored version %q: %w", u.version, err)
	}

	next, err := semver.Bump(v, cmd)
	if err != nil {
		return "", false, fmt.Errorf("increment failed on %q: %w", u.version, err)
	}

	u.version = next.String()
	return u.version, true, nil
}

// Change performs the full read-modify-write sequence: determine the
// version (explicit Options.Version or extracted from the file), apply
// the increment command, and rewrite the file preserving all
// surrounding content. Read, parse, and write errors surface unchanged.
func (u *Updater) Change(ctx context.Context) error {
	data, err := u.readFile(ctx)
	if err != nil {
		return err
	}

	if u.opts.Version != "" {
		if err := u.SetVersion(u.opts.Version); err != nil {
			return err
		}
	} else {
		candidate, err := u.extractFrom(data)
		if err != nil {
			u.version = ""
			return err
		}
		if err := u.SetVersion(candidate); err != nil {
			return err
		}
	}

	if _, _, err := u.Increment(u.opts.Cmd); err != nil {
		return err
	}

	updated, err := u.rewrite(data)
	if err != nil {
		return err
	}

	return u.writeFile(ctx, updated)
}

// rewrite produces the new file content for the stored version.
func (u *Updater) rewrite(data []byte) ([]byte, error) {
	switch u.kind {
	case KindJSON:
		return u.rewriteJSON(data)
	case KindPlain:
		return []byte(u.version + "\n"), nil
	default:
		return u.rewritePattern(data)
	}
}

// rewriteJSON overwrites the version field only when it is already
// present, then re-emits the document with two-space indentation and a
// trailing newline.
func (u *Updater) rewriteJSON(data []byte) ([]byte, error) {
	if gjson.GetBytes(data, versionField).Exists() {
		var err error
		data, err = sjson.SetBytes(data, versionField, u.version)
		if err != nil {
			return nil, fmt.Errorf("failed to set version in %q: %w", u.path, err)
		}
	}

	out := pretty.PrettyOptions(data, &pretty.Options{Indent: "  "})
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}

// rewritePattern substitutes only the version token of the first
// pattern match, leaving every other byte untouched.
func (u *Updater) rewritePattern(data []byte) ([]byte, error) {
	loc := embeddedVersionRegex.FindSubmatchIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("%w: no VERSION marker in %q", ErrVersionNotFound, u.path)
	}

	// loc[2]:loc[3] bounds capture group 1, the version token.
	out := make([]byte, 0, len(data)+len(u.version))
	out = append(out, data[:loc[2]]...)
	out = append(out, u.version...)
	out = append(out, data[loc[3]:]...)
	return out, nil
}

// readFile reads the file and, for JSON kind, verifies the content is a
// parseable JSON document. A parse failure is fatal for this file.
func (u *Updater) readFile(ctx context.Context) ([]byte, error) {
	data, err := u.fs.ReadFile(ctx, u.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", u.path, err)
	}

	if u.kind == KindJSON && !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse JSON in %q", u.path)
	}

	return data, nil
}

// writeFile writes the rewritten content back to the file.
func (u *Updater) writeFile(ctx context.Context, data []byte) error {
	if err := u.fs.WriteFile(ctx, u.path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", u.path, err)
	}
	return nil
}
