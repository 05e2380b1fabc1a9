package journal

import (
	"strings"
	"testing"
)

func TestExpandUserRefs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    string
		wantErr bool
	}{
		{
			name:    "site attribute builds subdomain profile URL",
			text:    `see <user name="A_B" site="example.com"> for details`,
			pattern: "",
			want:    `see <a class="user" href="https://a-b.example.com/profile">A_B</a> for details`,
		},
		{
			name:    "pattern substitution",
			text:    `<user user="A_B">`,
			pattern: "http://{}.livejournal.com/profile",
			want:    `<a class="user" href="http://a-b.livejournal.com/profile">A_B</a>`,
		},
		{
			name:    "name overrides user",
			text:    `<user user="alice" name="bob">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/bob">bob</a>`,
		},
		{
			name:    "later of name and comm wins",
			text:    `<user name="alice" comm="a_community">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/a-community">a_community</a>`,
		},
		{
			name:    "later of comm and name wins",
			text:    `<user comm="a_community" name="alice">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/alice">alice</a>`,
		},
		{
			name:    "entities in attribute values are unescaped then re-escaped",
			text:    `<user name="a&amp;b">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/a&amp;b">a&amp;b</a>`,
		},
		{
			name:    "attribute names are case-insensitive",
			text:    `<USER NAME="Bob">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/bob">Bob</a>`,
		},
		{
			name:    "marker without a user name is left untouched",
			text:    `<user foo="bar">`,
			pattern: "http://x/{}",
			want:    `<user foo="bar">`,
		},
		{
			name:    "marker spanning a newline is left untouched",
			text:    "<user name=\"a\"\n site=\"b\">",
			pattern: "",
			want:    "<user name=\"a\"\n site=\"b\">",
		},
		{
			name: "text without markers passes through",
			text: "plain <b>html</b> text",
			want: "plain <b>html</b> text",
		},
		{
			name:    "multiple markers in one text",
			text:    `<user user="a"> and <user user="b">`,
			pattern: "http://x/{}",
			want:    `<a class="user" href="http://x/a">a</a> and <a class="user" href="http://x/b">b</a>`,
		},
		{
			name:    "no pattern and no site is an error",
			text:    `<user user="alice">`,
			pattern: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandUserRefs(tt.text, tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandUserRefs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ExpandUserRefs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandUserRefs_SiteWinsOverPattern(t *testing.T) {
	got, err := ExpandUserRefs(`<user name="a" site="example.com">`, "http://x/{}")
	if err != nil {
		t.Fatalf("ExpandUserRefs() error = %v", err)
	}
	if !strings.Contains(got, "https://a.example.com/profile") {
		t.Errorf("expected site-based URL, got %q", got)
	}
}
