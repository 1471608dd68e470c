package yamlfile

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_OverridePrecedence(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, `
service:
  url: https://api.example.com
  retries: 2
logging:
  level: INFO
`)

	merged := base.Merge(Mapping{
		{Key: "service", Value: Mapping{
			{Key: "retries", Value: 5},
			{Key: "timeout", Value: 30},
		}},
	})

	// Shared mapping keys merge recursively, not wholesale.
	assert.Equal(t, "https://api.example.com", merged.Get("service.url"))
	assert.EqualValues(t, 5, merged.Get("service.retries"))
	assert.EqualValues(t, 30, merged.Get("service.timeout"))

	// Keys unique to the base pass through unchanged.
	assert.Equal(t, "INFO", merged.Get("logging.level"))
}

func TestMerge_ScalarReplacesSubtree(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "service:\n  url: x\n  retries: 2\n")

	merged := base.Merge(Mapping{{Key: "service", Value: "disabled"}})

	assert.Equal(t, "disabled", merged.Get("service"))
	assert.False(t, merged.ExistsKey("service.url"))
}

func TestMerge_SequencesReplaceWholesale(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "hosts:\n  - a\n  - b\n  - c\n")

	merged := base.Merge(Mapping{{Key: "hosts", Value: []any{"d"}}})

	assert.Equal(t, []any{"d"}, merged.Get("hosts"))
}

func TestMerge_MappingReplacesScalar(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "service: disabled\n")

	merged := base.Merge(Mapping{
		{Key: "service", Value: Mapping{{Key: "url", Value: "x"}}},
	})

	assert.Equal(t, "x", merged.Get("service.url"))
}

func TestMerge_AddsOverrideOnlyKeysInOrder(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "b: 1\na: 2\n")

	merged := base.Merge(Mapping{
		{Key: "z", Value: 3},
		{Key: "a", Value: 20},
		{Key: "y", Value: 4},
	})

	root, ok := merged.Data().(Mapping)
	require.True(t, ok)

	keys := make([]string, 0, len(root))
	for _, item := range root {
		keys = append(keys, item.Key.(string))
	}

	// Base keys keep their positions; new keys append in override order.
	assert.Equal(t, []string{"b", "a", "z", "y"}, keys)
	assert.EqualValues(t, 20, merged.Get("a"))
}

func TestMerge_BaseIsNeverMutated(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, `
service:
  url: x
  nested:
    deep: original
`)

	before, err := yaml.Marshal(base.Data())
	require.NoError(t, err)

	merged := base.Merge(Mapping{
		{Key: "service", Value: Mapping{
			{Key: "nested", Value: Mapping{{Key: "deep", Value: "changed"}}},
		}},
	})

	after, err := yaml.Marshal(base.Data())
	require.NoError(t, err)

	assert.Equal(t, string(before), string(after))
	assert.Equal(t, "changed", merged.Get("service.nested.deep"))
	assert.Equal(t, "original", base.Get("service.nested.deep"))
}

func TestMerge_ResultIsDeepCopy(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "service:\n  url: x\n")

	merged := base.Merge(nil)
	merged.Set("service.url", "mutated")

	assert.Equal(t, "x", base.Get("service.url"))
	assert.Equal(t, "mutated", merged.Get("service.url"))
}

func TestMerge_InheritsOrigin(t *testing.T) {
	t.Parallel()

	base := &Document{data: Mapping{{Key: "a", Value: 1}}, origin: "/etc/app/config.yaml"}

	merged := base.Merge(Mapping{{Key: "b", Value: 2}})

	assert.Equal(t, "/etc/app/config.yaml", merged.Origin())
}

func TestMerge_EmptyOverrideIsIdentity(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, sampleConfig)

	merged := base.Merge(Mapping{})

	assert.Equal(t, base.ToMap(), merged.ToMap())
}

func TestMerge_NonMappingRootCopiesData(t *testing.T) {
	t.Parallel()

	base := mustLoadString(t, "- one\n- two\n")

	merged := base.Merge(Mapping{{Key: "a", Value: 1}})

	assert.Equal(t, []any{"one", "two"}, merged.Data())
}
