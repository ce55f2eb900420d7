package semver

import "testing"

func TestCommand_IsValid(t *testing.T) {
	for _, cmd := range []Command{
		CmdPreMajor, CmdPreMinor, CmdPrePatch, CmdPreRelease,
		CmdMajor, CmdMinor, CmdPatch, CmdPre, CmdSame, CmdSet,
	} {
		if !cmd.IsValid() {
			t.Errorf("Command(%q).IsValid() = false", cmd)
		}
	}

	for _, cmd := range []Command{"", "release", "MAJOR", "bump"} {
		if cmd.IsValid() {
			t.Errorf("Command(%q).IsValid() = true", cmd)
		}
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		name    string
		version string
		cmd     Command
		want    string
		wantErr bool
	}{
		{"major", "1.2.3", CmdMajor, "2.0.0", false},
		{"minor", "1.2.3", CmdMinor, "1.3.0", false},
		{"patch", "1.2.3", CmdPatch, "1.2.4", false},
		{"major clears pre-release", "1.2.3-rc.1", CmdMajor, "2.0.0", false},
		{"minor clears pre-release", "1.2.3-rc.1", CmdMinor, "1.3.0", false},
		{"premajor", "1.2.3", CmdPreMajor, "2.0.0-0", false},
		{"preminor", "1.2.3", CmdPreMinor, "1.3.0-0", false},
		{"prepatch", "1.2.3", CmdPrePatch, "1.2.4-0", false},
		{"prerelease from final", "1.2.3", CmdPreRelease, "1.2.4-0", false},
		{"prerelease numeric tail", "1.2.3-rc.1", CmdPreRelease, "1.2.3-rc.2", false},
		{"prerelease bare numeric", "1.2.3-0", CmdPreRelease, "1.2.3-1", false},
		{"prerelease no numeric tail", "1.2.3-alpha", CmdPreRelease, "1.2.3-alpha.0", false},
		{"pre alias", "1.2.3-rc.1", CmdPre, "1.2.3-rc.2", false},
		{"same is identity", "1.2.3", CmdSame, "1.2.3", false},
		{"same keeps pre-release", "1.2.3-beta.4", CmdSame, "1.2.3-beta.4", false},
		{"set is identity", "1.2.3", CmdSet, "1.2.3", false},
		{"unknown command", "1.2.3", Command("release"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.version)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Bump(v, tt.cmd)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Bump(%s, %s) succeeded, want error", tt.version, tt.cmd)
				}
				return
			}
			if err != nil {
				t.Fatalf("Bump(%s, %s) error = %v", tt.version, tt.cmd, err)
			}
			if got.String() != tt.want {
				t.Errorf("Bump(%s, %s) = %s, want %s", tt.version, tt.cmd, got, tt.want)
			}
		})
	}
}
