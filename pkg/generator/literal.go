package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// literal builds JavaScript object/array literals directly from content
// records. Keys are bare identifiers, strings are double quoted, icon fields
// are bare references to imported components, and there are no trailing
// commas. Nested levels are indented by two spaces.
type literal struct {
	b     strings.Builder
	depth int
}

// field is one key of an object literal. Raw values are written verbatim.
type field struct {
	key   string
	value string
	raw   bool
	emit  func(l *literal)
}

func str(key, value string) field { return field{key: key, value: value} }

func ref(key, name string) field {
	if name == "" {
		name = "undefined"
	}
	return field{key: key, value: name, raw: true}
}

func boolean(key string, v bool) field {
	return field{key: key, value: fmt.Sprintf("%t", v), raw: true}
}

func nested(key string, emit func(l *literal)) field {
	return field{key: key, emit: emit}
}

func (l *literal) newline() {
	l.b.WriteByte('\n')
	l.b.WriteString(strings.Repeat("  ", l.depth))
}

func (l *literal) object(fields ...field) {
	l.b.WriteByte('{')
	l.depth++
	for i, f := range fields {
		l.newline()
		l.b.WriteString(f.key)
		l.b.WriteString(": ")
		switch {
		case f.emit != nil:
			f.emit(l)
		case f.raw:
			l.b.WriteString(f.value)
		default:
			l.b.WriteString(quote(f.value))
		}
		if i < len(fields)-1 {
			l.b.WriteByte(',')
		}
	}
	l.depth--
	if len(fields) > 0 {
		l.newline()
	}
	l.b.WriteByte('}')
}

func (l *literal) array(n int, elem func(i int)) {
	if n == 0 {
		l.b.WriteString("[]")
		return
	}
	l.b.WriteByte('[')
	l.depth++
	for i := 0; i < n; i++ {
		l.newline()
		elem(i)
		if i < n-1 {
			l.b.WriteByte(',')
		}
	}
	l.depth--
	l.newline()
	l.b.WriteByte(']')
}

func (l *literal) String() string {
	return l.b.String()
}

func (l *literal) user(u models.User) {
	l.object(
		str("name", u.Name),
		str("email", u.Email),
		str("avatar", u.Avatar),
	)
}

func (l *literal) teams(teams []models.Team) {
	l.array(len(teams), func(i int) {
		t := teams[i]
		l.object(
			str("name", t.Name),
			ref("logo", t.IconName),
			str("plan", t.Plan),
		)
	})
}

func (l *literal) navItems(items []models.NavItem) {
	l.array(len(items), func(i int) {
		item := items[i]
		fields := []field{
			str("title", item.Title),
			str("url", item.URL),
			ref("icon", item.IconName),
		}
		if item.IsActive {
			fields = append(fields, boolean("isActive", true))
		}
		fields = append(fields, nested("items", func(l *literal) {
			l.subItems(item.Items)
		}))
		l.object(fields...)
	})
}

func (l *literal) subItems(items []models.SubItem) {
	l.array(len(items), func(i int) {
		l.object(
			str("title", items[i].Title),
			str("url", items[i].URL),
		)
	})
}

func (l *literal) projects(projects []models.Project) {
	l.array(len(projects), func(i int) {
		p := projects[i]
		l.object(
			str("name", p.Name),
			str("url", p.URL),
			ref("icon", p.IconName),
		)
	})
}

// literalAt renders emit with every line after the first indented by depth levels
func literalAt(depth int, emit func(l *literal)) string {
	l := &literal{depth: depth}
	emit(l)
	return l.String()
}

// quote returns s as a double-quoted JavaScript string literal
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
