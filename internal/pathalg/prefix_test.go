package pathalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want PrefixInfo
	}{
		// No prefix
		{"empty", "", PrefixInfo{Kind: KindNone}},
		{"bare_name", "foo", PrefixInfo{Kind: KindNone}},
		{"relative_nested", "foo/bar", PrefixInfo{Kind: KindNone}},
		{"dot", ".", PrefixInfo{Kind: KindNone}},
		{"dotdot", "..", PrefixInfo{Kind: KindNone}},

		// Unix root
		{"root_slash", "/", PrefixInfo{Kind: KindUnixRoot, PrefixLen: 1, HasRoot: true, IsRoot: true}},
		{"root_backslash", `\`, PrefixInfo{Kind: KindUnixRoot, PrefixLen: 1, HasRoot: true, IsRoot: true}},
		{"rooted", "/foo", PrefixInfo{Kind: KindUnixRoot, PrefixLen: 1, HasRoot: true}},

		// UNC
		{"unc_bare", `\\`, PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true, IsRoot: true}},
		{"unc_server", `\\server`, PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true}},
		{"unc_share", `\\server\share`, PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true}},
		{"unc_forward", "//server/share", PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true}},
		{"unc_mixed", `\/server`, PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true}},

		// Drive labels
		{"drive_root", `C:\`, PrefixInfo{Kind: KindDriveRoot, PrefixLen: 3, HasRoot: true, IsRoot: true}},
		{"drive_rooted", `C:\Windows`, PrefixInfo{Kind: KindDriveRoot, PrefixLen: 3, HasRoot: true}},
		{"drive_root_forward", "C:/Windows", PrefixInfo{Kind: KindDriveRoot, PrefixLen: 3, HasRoot: true}},
		{"drive_lowercase", `c:\x`, PrefixInfo{Kind: KindDriveRoot, PrefixLen: 3, HasRoot: true}},
		{"drive_bare", "C:", PrefixInfo{Kind: KindDriveRelative, PrefixLen: 2, IsRoot: true}},
		{"drive_relative", "C:notepad.exe", PrefixInfo{Kind: KindDriveRelative, PrefixLen: 2}},
		{"drive_relative_dots", `C:..\bar`, PrefixInfo{Kind: KindDriveRelative, PrefixLen: 2}},
		{"not_a_drive", "1:foo", PrefixInfo{Kind: KindNone}},

		// Home symbol
		{"home_bare", "~", PrefixInfo{Kind: KindHomeRoot, PrefixLen: 1, HasRoot: true, IsRoot: true}},
		{"home_slash", "~/", PrefixInfo{Kind: KindHomeRelative, PrefixLen: 2, HasRoot: true}},
		{"home_nested", "~/foo", PrefixInfo{Kind: KindHomeRelative, PrefixLen: 2, HasRoot: true}},
		{"home_backslash", `~\foo`, PrefixInfo{Kind: KindHomeRelative, PrefixLen: 2, HasRoot: true}},
		{"tilde_name", "~foo", PrefixInfo{Kind: KindNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.text)
			assert.Equal(t, tt.want, got, "Classify(%q)", tt.text)
		})
	}
}

func TestClassifyTotality(t *testing.T) {
	t.Parallel()

	// Every input yields a result with a prefix length inside the text.
	inputs := []string{"", "~", "~~", ":", "::", "/", "//", `\\\`, "C:", "C", "~/", " ", "a:b:c"}
	for _, in := range inputs {
		info := Classify(in)
		assert.GreaterOrEqual(t, info.PrefixLen, 0, "Classify(%q)", in)
		assert.LessOrEqual(t, info.PrefixLen, len(in), "Classify(%q)", in)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"bare", "foo", []string{"foo"}},
		{"relative", "foo/bar", []string{"foo", "bar"}},
		{"rooted", "/foo/bar", []string{"/", "foo", "bar"}},
		{"root_only", "/", []string{"/"}},
		{"drive", `C:\Windows\system32`, []string{`C:\`, "Windows", "system32"}},
		{"drive_relative", "C:foo", []string{"C:", "foo"}},
		{"unc", `\\server\share`, []string{`\\`, "server", "share"}},
		{"home", "~/docs", []string{"~/", "docs"}},
		{"trailing_sep", "foo/bar/", []string{"foo", "bar"}},
		{"leading_dotdot", "../bar", []string{"..", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.text)
			assert.Equal(t, tt.want, got, "Split(%q)", tt.text)
		})
	}
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('/'), Style("foo/bar"))
	assert.Equal(t, byte('\\'), Style(`C:\foo/bar`))
	assert.Equal(t, byte('/'), Style("C:/foo"))
	assert.Equal(t, byte('/'), Style("plain"))
	assert.Equal(t, byte('\\'), Style(`\`))
}
