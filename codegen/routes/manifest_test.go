package routes

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(filepath.Join("testdata", "petstore.yaml"))
	require.NoError(t, err)

	assert.True(t, m.Naming.Singularize)
	assert.Equal(t, 1, m.Naming.TopLevel)
	assert.Equal(t, []string{"equipment"}, m.Naming.Uncountables)
	assert.Equal(t, []string{"placed", "in-progress", "2day"}, m.Enums["order-status"])
	assert.Equal(t, "com.acme.store", m.Package)
	require.Len(t, m.Controllers, 2)
	assert.Equal(t, "EquipmentServiceImpl", m.Controllers[1].Type)
	assert.Equal(t, "${api.base:/api}/users", m.Controllers[0].Route)
	require.Len(t, m.Controllers[0].Actions, 4)
	assert.Equal(t, "post", m.Controllers[0].Actions[1].Verb)
	assert.Equal(t, []string{"application/json", "application/xml"}, m.Controllers[0].Actions[1].ContentTypes)
}

func TestLoadManifestRejectsUnknownVerb(t *testing.T) {
	_, err := LoadManifest(filepath.Join("testdata", "bad_verb.yaml"))
	require.Error(t, err)
	var verr *jsonschema.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParseManifest(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"minimal", "controllers: []", false},
		{"missing controllers", "naming: {depth: 1}", true},
		{"unknown field", "controllers: []\nextra: 1", true},
		{"negative depth", "naming: {depth: -1}\ncontrollers: []", true},
		{"action without verb", "controllers: [{route: /a, actions: [{route: /a}]}]", true},
		{"empty document", "", true},
		{"malformed yaml", "controllers: [", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(c.data))
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNamingConfig(t *testing.T) {
	cfg := Naming{WordDelimiters: "-", Uncountables: []string{"sheep"}}.Config()
	assert.Equal(t, "-", cfg.WordDelimiters)
	assert.Equal(t, []string{"sheep"}, cfg.Uncountables)

	cfg = Naming{}.Config()
	assert.NotEmpty(t, cfg.WordDelimiters)
}
