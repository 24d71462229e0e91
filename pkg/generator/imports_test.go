package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIcons(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"drops blanks", []string{"", "Bot", ""}, []string{"Bot"}},
		{"first occurrence wins", []string{"Map", "Bot", "Map", "Frame", "Bot"}, []string{"Map", "Bot", "Frame"}},
		{"case sensitive", []string{"bot", "Bot"}, []string{"bot", "Bot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueIcons(tt.in...))
		})
	}
}

func TestMergeIcons(t *testing.T) {
	got := mergeIcons([]string{"ChevronsUpDown", "Plus"}, []string{"Plus", "Command", "", "Command"})
	assert.Equal(t, []string{"ChevronsUpDown", "Plus", "Command"}, got)

	fixed := []string{"A"}
	_ = mergeIcons(fixed, []string{"B"})
	assert.Equal(t, []string{"A"}, fixed)
}

func TestNamedImport(t *testing.T) {
	assert.Equal(t, "", namedImport("x"))
	assert.Equal(t, "import { A } from \"x\"\n", namedImport("x", "A"))
	assert.Equal(t, "import { A, B } from \"x\"\n", namedImport("x", "A", "B"))
	assert.Equal(t, "import {\n  A,\n  B,\n  C,\n} from \"x\"\n", namedImport("x", "A", "B", "C"))
}

func TestIconImport(t *testing.T) {
	assert.Equal(t, "import { ChevronRight, type LucideIcon } from \"lucide-react\"\n",
		iconImport([]string{"ChevronRight"}, "LucideIcon"))
	assert.Equal(t, "", iconImport(nil))
}
