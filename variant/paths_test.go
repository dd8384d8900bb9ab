package variant

import (
	"reflect"
	"testing"
)

func TestSplitRelative(t *testing.T) {
	tests := []struct {
		input   string
		back    int
		forward []string
	}{
		{"helper.ts", 0, []string{"helper.ts"}},
		{"./helper.ts", 0, []string{"helper.ts"}},
		{"./utils/index.ts", 0, []string{"utils", "index.ts"}},
		{"../helper.ts", 1, []string{"helper.ts"}},
		{"../../helper.ts", 2, []string{"helper.ts"}},
		{"../utils/helper.ts", 1, []string{"utils", "helper.ts"}},
		// Forward-resolving embedded segments cancel and do not count
		// as back-navigation.
		{"x/../y.ts", 0, []string{"y.ts"}},
		{"a/b/../c.ts", 0, []string{"a", "c.ts"}},
		// Only the uncancelled remainder counts.
		{"x/../../y.ts", 1, []string{"y.ts"}},
		{"../x/../y.ts", 1, []string{"y.ts"}},
		{"..", 1, []string{}},
		{"", 0, []string{}},
		{".", 0, []string{}},
		{"a//b.ts", 0, []string{"a", "b.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			back, forward := splitRelative(tt.input)
			if back != tt.back {
				t.Errorf("splitRelative(%q) back = %d, want %d", tt.input, back, tt.back)
			}
			if !reflect.DeepEqual(forward, tt.forward) {
				t.Errorf("splitRelative(%q) forward = %v, want %v", tt.input, forward, tt.forward)
			}
		})
	}
}

func TestRelativeKey(t *testing.T) {
	tests := []struct {
		back     int
		forward  []string
		expected string
	}{
		{0, []string{"helper.ts"}, "helper.ts"},
		{1, []string{"helper.ts"}, "../helper.ts"},
		{2, []string{"utils", "index.ts"}, "../../utils/index.ts"},
		{0, nil, ""},
	}

	for _, tt := range tests {
		result := relativeKey(tt.back, tt.forward)
		if result != tt.expected {
			t.Errorf("relativeKey(%d, %v) = %q, want %q", tt.back, tt.forward, result, tt.expected)
		}
	}
}

func TestSyntheticDirectories(t *testing.T) {
	tests := []struct {
		depth    int
		expected []string
	}{
		{0, nil},
		{-1, nil},
		{1, []string{"a"}},
		{2, []string{"a", "b"}},
		{4, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		result := syntheticDirectories(tt.depth)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("syntheticDirectories(%d) = %v, want %v", tt.depth, result, tt.expected)
		}
	}
}

func TestLooksLikeFileName(t *testing.T) {
	tests := []struct {
		segment  string
		expected bool
	}{
		{"index.ts", true},
		{"component.tsx", true},
		{"package.json", true},
		{"checkbox", false},
		{"v2", false},
		{"dir.with.dots.d", true},
		{"trailing.", false},
	}

	for _, tt := range tests {
		if got := looksLikeFileName(tt.segment); got != tt.expected {
			t.Errorf("looksLikeFileName(%q) = %v, want %v", tt.segment, got, tt.expected)
		}
	}
}

func TestParseOriginURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		dir  []string
		base string
		ok   bool
	}{
		{
			name: "file URL with file name",
			url:  "file:///lib/components/checkbox/index.ts",
			dir:  []string{"lib", "components", "checkbox"},
			base: "index.ts",
			ok:   true,
		},
		{
			name: "directory URL",
			url:  "file:///lib/components/checkbox",
			dir:  []string{"lib", "components", "checkbox"},
			base: "",
			ok:   true,
		},
		{
			name: "https URL",
			url:  "https://example.com/docs/demo/App.tsx",
			dir:  []string{"docs", "demo"},
			base: "App.tsx",
			ok:   true,
		},
		{
			name: "relative path is not an origin",
			url:  "lib/components/index.ts",
			ok:   false,
		},
		{
			name: "malformed URL degrades",
			url:  "://not-a-url",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, base, ok := parseOriginURL(tt.url)
			if ok != tt.ok {
				t.Fatalf("parseOriginURL(%q) ok = %v, want %v", tt.url, ok, tt.ok)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(dir, tt.dir) {
				t.Errorf("parseOriginURL(%q) dir = %v, want %v", tt.url, dir, tt.dir)
			}
			if base != tt.base {
				t.Errorf("parseOriginURL(%q) base = %q, want %q", tt.url, base, tt.base)
			}
		})
	}
}

func TestJoinSegments(t *testing.T) {
	if got := joinSegments([]string{"a", "b"}, "index.ts"); got != "a/b/index.ts" {
		t.Errorf("joinSegments = %q, want %q", got, "a/b/index.ts")
	}
	if got := joinSegments(nil, "index.ts"); got != "index.ts" {
		t.Errorf("joinSegments = %q, want %q", got, "index.ts")
	}
	if got := joinSegments([]string{"a"}, ""); got != "a" {
		t.Errorf("joinSegments = %q, want %q", got, "a")
	}
}
