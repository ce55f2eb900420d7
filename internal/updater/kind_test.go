package updater

import "testing"

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindJSON, true},
		{KindPlain, true},
		{KindPattern, true},
		{Kind("yaml"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindForFile(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"VERSION", KindPlain},
		{"VERSION.txt", KindPlain},
		{"lib/VERSION", KindPlain},
		{"package.json", KindJSON},
		{"nested/dir/manifest.json", KindJSON},
		{"composer.JSON", KindJSON},
		{"main.go", KindPattern},
		{"Makefile", KindPattern},
		{"version", KindPattern},
		{"VERSIONS.txt", KindPattern},
		{"src/app.py", KindPattern},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := KindForFile(tt.path); got != tt.want {
				t.Errorf("KindForFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
