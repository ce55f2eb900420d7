package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Command names a version increment operation.
type Command string

const (
	CmdPreMajor   Command = "premajor"
	CmdPreMinor   Command = "preminor"
	CmdPrePatch   Command = "prepatch"
	CmdPreRelease Command = "prerelease"
	CmdMajor      Command = "major"
	CmdMinor      Command = "minor"
	CmdPatch      Command = "patch"
	CmdPre        Command = "pre"
	CmdSame       Command = "same"
	CmdSet        Command = "set"
)

// commands is the fixed set of recognized increment commands.
var commands = map[Command]bool{
	CmdPreMajor:   true,
	CmdPreMinor:   true,
	CmdPrePatch:   true,
	CmdPreRelease: true,
	CmdMajor:      true,
	CmdMinor:      true,
	CmdPatch:      true,
	CmdPre:        true,
	CmdSame:       true,
	CmdSet:        true,
}

// String returns the string representation of the command.
func (c Command) String() string {
	return string(c)
}

// IsValid returns true if the command is a recognized increment command.
func (c Command) IsValid() bool {
	return commands[c]
}

// Bump applies cmd to v and returns the resulting version.
//
// Rules follow the conventional semantic-versioning increments:
//   - major/minor/patch bump that component, zero everything below it and
//     clear the pre-release identifier (1.2.3-rc.1 + minor -> 1.3.0).
//   - premajor/preminor/prepatch bump the component and start a "0"
//     pre-release (1.2.3 + preminor -> 1.3.0-0).
//   - prerelease (and its alias pre) increments the trailing numeric
//     identifier of an existing pre-release (1.2.3-rc.1 -> 1.2.3-rc.2),
//     appends ".0" when the pre-release has no numeric tail, and on a
//     final version bumps patch and starts a "0" pre-release
//     (1.2.3 -> 1.2.4-0).
//   - same and set return v unchanged.
//
// An unrecognized command is an error; callers that want lenient
// handling should check Command.IsValid first.
func Bump(v SemVersion, cmd Command) (SemVersion, error) {
	switch cmd {
	case CmdMajor:
		return SemVersion{Major: v.Major + 1}, nil
	case CmdMinor:
		return SemVersion{Major: v.Major, Minor: v.Minor + 1}, nil
	case CmdPatch:
		return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case CmdPreMajor:
		return SemVersion{Major: v.Major + 1, PreRelease: "0"}, nil
	case CmdPreMinor:
		return SemVersion{Major: v.Major, Minor: v.Minor + 1, PreRelease: "0"}, nil
	case CmdPrePatch:
		return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1, PreRelease: "0"}, nil
	case CmdPreRelease, CmdPre:
		return bumpPreRelease(v), nil
	case CmdSame, CmdSet:
		return v, nil
	default:
		return SemVersion{}, fmt.Errorf("unknown bump command: %s", cmd)
	}
}

// bumpPreRelease advances the pre-release identifier of v, or starts a
// new pre-release on the next patch when v is a final version.
func bumpPreRelease(v SemVersion) SemVersion {
	if v.PreRelease == "" {
		return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1, PreRelease: "0"}
	}

	parts := strings.Split(v.PreRelease, ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
	} else {
		parts = append(parts, "0")
	}

	return SemVersion{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		PreRelease: strings.Join(parts, "."),
	}
}
