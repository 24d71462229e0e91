package generator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`a "b"`, `"a \"b\""`},
		{`c:\tmp`, `"c:\\tmp"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"bell\a", `"bell\u0007"`},
		{"sep\u2028", `"sep\u2028"`},
		{"Sales & Marketing <b>", `"Sales & Marketing <b>"`},
		{"héllo ⌘", `"héllo ⌘"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := quote(tt.in)
			assert.Equal(t, tt.want, got)

			back, err := strconv.Unquote(got)
			assert.NoError(t, err)
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestLiteralTeams(t *testing.T) {
	got := literalAt(0, func(l *literal) {
		l.teams([]models.Team{{Name: "Acme", IconName: "Command", Plan: "Free"}, {Name: "Bare"}})
	})

	want := `[
  {
    name: "Acme",
    logo: Command,
    plan: "Free"
  },
  {
    name: "Bare",
    logo: undefined,
    plan: ""
  }
]`
	assert.Equal(t, want, got)
}

func TestLiteralNestedDepth(t *testing.T) {
	got := literalAt(1, func(l *literal) {
		l.object(nested("projects", func(l *literal) {
			l.projects([]models.Project{{Name: "P", URL: "#", IconName: "Map"}})
		}))
	})

	want := "{\n    projects: [\n      {\n        name: \"P\",\n        url: \"#\",\n        icon: Map\n      }\n    ]\n  }"
	assert.Equal(t, want, got)
}

func TestLiteralEmpty(t *testing.T) {
	assert.Equal(t, "[]", literalAt(0, func(l *literal) { l.projects(nil) }))
	assert.Equal(t, "{}", literalAt(0, func(l *literal) { l.object() }))
}
