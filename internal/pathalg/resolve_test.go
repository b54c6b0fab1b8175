package pathalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		addition string
		want     string
	}{
		{"relative_addition", "/data", "logs", "/data/logs"},
		{"base_with_trailing_sep", "/data/", "logs", "/data/logs"},
		{"rooted_addition_wins", "/data", "/etc", "/etc"},
		{"drive_addition_wins", "/data", `C:\x`, `C:\x`},
		{"unc_addition_wins", "/data", `\\server\share`, `\\server\share`},
		{"home_addition_wins", "/data", "~/x", "~/x"},
		{"bare_drive_wins", "/data", "C:", "C:"},
		{"drive_relative_keeps_base", "", "C:x", "C:x"},
		{"backslash_base_style", `C:\data`, "logs", `C:\data\logs`},
		{"empty_base", "", "logs", "logs"},
		{"empty_addition", "/data", "", "/data/"},
		{"no_normalization", "/data/..", "x/./y", "/data/../x/./y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Cd(tt.base, tt.addition)
			assert.Equal(t, tt.want, got, "Cd(%q, %q)", tt.base, tt.addition)
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"nil", nil, ""},
		{"single", []string{"foo"}, "foo"},
		{"two_relative", []string{"foo", "bar"}, "foo/bar"},
		{"root_then_relative", []string{"/a", "b", "c"}, "/a/b/c"},
		// The part where a root appears last wins.
		{"last_root_wins", []string{"/a", "/b", "c"}, "/b/c"},
		{"three_rooted_fragments", []string{"/a", `C:\b`, "/c", "d"}, "/c/d"},
		{"trailing_root_wins", []string{"a", "b", `\\s\t`}, `\\s\t`},
		{"empty_parts_skipped", []string{"", "a", "", "b"}, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Join(tt.parts...)
			assert.Equal(t, tt.want, got, "Join(%v)", tt.parts)
		})
	}
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	env := Env{Home: "/home/user", WorkingDir: "/work/dir"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"already_rooted", "/etc/passwd", "/etc/passwd"},
		{"drive_rooted", `C:\x`, `C:\x`},
		{"home_rooted", "~/x", "~/x"},
		{"relative", "logs/app.log", "/work/dir/logs/app.log"},
		{"relative_with_updir", "../sibling", "/work/sibling"},
		{"dot", ".", "/work/dir"},
		{"empty", "", "/work/dir/"},
		{"trailing_sep_kept", "logs/", "/work/dir/logs/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := env.Absolute(tt.text)
			assert.Equal(t, tt.want, got, "Absolute(%q)", tt.text)
		})
	}
}

func TestAbsoluteWindowsWorkingDir(t *testing.T) {
	t.Parallel()

	env := Env{WorkingDir: `C:\Users\u`}
	assert.Equal(t, `C:\Users\u\x`, env.Absolute("x"))
	assert.Equal(t, `C:\Users\x`, env.Absolute(`..\x`))
	// A drive-relative path has no root and resolves against the
	// working directory.
	assert.Equal(t, `C:\Users\u\C:x`, env.Absolute("C:x"))
}
