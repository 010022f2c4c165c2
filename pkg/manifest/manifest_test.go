package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoreBranch(t *testing.T) {
	assert.Equal(t, "7.x", CoreBranch("7"))
	assert.Equal(t, "8.x", CoreBranch("8"))
}

func TestFor(t *testing.T) {
	legacy := For("7")
	assert.Len(t, legacy, len(Base)+3)
	assert.Equal(t, Base, legacy[:len(Base)])
	assert.Equal(t, []string{"7.x/example.info", "7.x/example.install", "7.x/example.profile"}, legacy[len(Base):])

	assert.Equal(t, Base, For("8"))

	// For must not alias Base
	files := For("8")
	files[0] = "changed"
	assert.Equal(t, ".editorconfig", Base[0])
}

func TestStubExtension(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
		wantOK  bool
	}{
		{"example.info", ".info", true},
		{"example.install", ".install", true},
		{"example.profile", ".profile", true},
		{"example.info.yml", "", false},
		{"example.Info", "", false},
		{"example", "", false},
		{"examples.info", "", false},
		{"my-example.info", "", false},
		{"README.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := StubExtension(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestStubTarget(t *testing.T) {
	got, ok := StubTarget("example.install", "acme")
	assert.True(t, ok)
	assert.Equal(t, "acme.install", got)

	_, ok = StubTarget("FeatureContext.php", "acme")
	assert.False(t, ok)
}

func TestProduced(t *testing.T) {
	produced := Produced("7", "acme")

	assert.Contains(t, produced, "build-acme.make")
	assert.NotContains(t, produced, BuildMakefile)
	assert.Contains(t, produced, "acme.info")
	assert.Contains(t, produced, "acme.install")
	assert.Contains(t, produced, "acme.profile")
	assert.Contains(t, produced, "test/features/bootstrap/FeatureContext.php")
	for _, p := range produced {
		assert.NotContains(t, p, "7.x")
		assert.NotContains(t, p, "example.")
	}
	assert.Len(t, produced, len(Base)+3)

	assert.Len(t, Produced("8", "acme"), len(Base))
}
