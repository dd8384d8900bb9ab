package variant_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/codelift/sandpath/variant"
)

func TestExtraFileUnmarshalJSON_Shorthand(t *testing.T) {
	var code variant.Code
	err := json.Unmarshal([]byte(`{
		"fileName": "index.ts",
		"extraFiles": {
			"../helper.ts": "export const helper = 1",
			"../package.json": {"metadata": true, "source": "{}"}
		}
	}`), &code)
	require.NoError(t, err)

	helper := code.ExtraFiles["../helper.ts"]
	require.NotNil(t, helper.Source, "bare string is shorthand for {source}")
	assert.Equal(t, "export const helper = 1", *helper.Source)
	assert.False(t, helper.Metadata)

	pkg := code.ExtraFiles["../package.json"]
	assert.True(t, pkg.Metadata)
	require.NotNil(t, pkg.Source)
	assert.Equal(t, "{}", *pkg.Source)
}

func TestExtraFileUnmarshalJSON_Invalid(t *testing.T) {
	var file variant.ExtraFile
	err := json.Unmarshal([]byte(`42`), &file)
	assert.Error(t, err)
}

func TestExtraFileUnmarshalYAML_Shorthand(t *testing.T) {
	var code variant.Code
	err := yaml.Unmarshal([]byte(`
fileName: index.ts
extraFiles:
  "../helper.ts": "export const helper = 1"
  "../package.json":
    metadata: true
`), &code)
	require.NoError(t, err)

	helper := code.ExtraFiles["../helper.ts"]
	require.NotNil(t, helper.Source)
	assert.Equal(t, "export const helper = 1", *helper.Source)

	assert.True(t, code.ExtraFiles["../package.json"].Metadata)
	assert.Nil(t, code.ExtraFiles["../package.json"].Source)
}

func TestWithPathsMarshalJSON(t *testing.T) {
	resolved := variant.AddPathsToVariant(variant.Code{
		URL:      "file:///lib/components/checkbox/index.ts",
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"../helper.ts": src(),
		},
	})

	data, err := json.Marshal(resolved)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"checkbox/index.ts"`)
	assert.Contains(t, string(data), `"path":"helper.ts"`)
}
