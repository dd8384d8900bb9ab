package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelift/sandpath/internal/util"
	"github.com/codelift/sandpath/variant"
)

func TestCreatePathContext_NoURL(t *testing.T) {
	ctx := variant.CreatePathContext(variant.Code{
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"../../helper.ts": {Source: util.Ptr("export {}")},
			"../utils.ts":     {Source: util.Ptr("export {}")},
		},
	})

	assert.False(t, ctx.HasURL)
	assert.False(t, ctx.HasMetadata)
	assert.Equal(t, 2, ctx.MaxBackNavigation)
	assert.Empty(t, ctx.URLDirectory)
	assert.Empty(t, ctx.PathInwardFromRoot)
}

func TestCreatePathContext_WithURL(t *testing.T) {
	ctx := variant.CreatePathContext(variant.Code{
		URL:      "file:///lib/components/checkbox/index.ts",
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"../helper.ts": {Source: util.Ptr("export {}")},
		},
	})

	require.True(t, ctx.HasURL)
	assert.Equal(t, "file:///lib/components/checkbox/index.ts", ctx.ActualURL)
	assert.Equal(t, []string{"lib", "components", "checkbox"}, ctx.URLDirectory)
	assert.Equal(t, "lib", ctx.RootLevel)
	assert.Equal(t, 1, ctx.MaxBackNavigation)
	assert.Equal(t, []string{"checkbox"}, ctx.PathInwardFromRoot)
}

func TestCreatePathContext_MetadataDiscount(t *testing.T) {
	// A metadata file's back-navigation is discounted by one level: the
	// metadata prefix directory supplies the level it escapes through.
	ctx := variant.CreatePathContext(variant.Code{
		URL:      "file:///lib/components/checkbox/index.ts",
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"../helper.ts":       {Source: util.Ptr("export {}")},
			"../../package.json": {Metadata: true},
		},
	})

	assert.True(t, ctx.HasMetadata)
	assert.Equal(t, 1, ctx.MaxBackNavigation,
		"metadata back-count of 2 discounts to 1, matching the source maximum")
}

func TestCreatePathContext_MetadataDiscountFloorsAtZero(t *testing.T) {
	ctx := variant.CreatePathContext(variant.Code{
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"package.json": {Metadata: true},
		},
	})

	assert.True(t, ctx.HasMetadata)
	assert.Equal(t, 0, ctx.MaxBackNavigation)
}

func TestCreatePathContext_MalformedURLDegrades(t *testing.T) {
	ctx := variant.CreatePathContext(variant.Code{
		URL:      "://definitely not a url",
		FileName: "index.ts",
	})

	assert.False(t, ctx.HasURL, "malformed URL must degrade to a no-URL context, not error")
	assert.Empty(t, ctx.ActualURL)
}

func TestCreatePathContext_PathInwardRequiresEnoughSegments(t *testing.T) {
	ctx := variant.CreatePathContext(variant.Code{
		URL:      "file:///checkbox/index.ts",
		FileName: "index.ts",
		ExtraFiles: map[string]variant.ExtraFile{
			"../../helper.ts": {Source: util.Ptr("export {}")},
		},
	})

	require.True(t, ctx.HasURL)
	assert.Equal(t, 2, ctx.MaxBackNavigation)
	assert.Empty(t, ctx.PathInwardFromRoot,
		"URL supplies only one directory segment for two levels of back-navigation")
}
