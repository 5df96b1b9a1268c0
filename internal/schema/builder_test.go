package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laggycomputer/env-vars-struct/internal/diagnostic"
)

func recordByName(t *testing.T, records []Record, name string) Record {
	t.Helper()

	for _, r := range records {
		if r.TypeName == name {
			return r
		}
	}

	t.Fatalf("record %q not found", name)

	return Record{}
}

func TestFromPaths_NestedRecords(t *testing.T) {
	records, diags := FromPaths([]string{
		"DATABASE.HOST",
		"DATABASE.PORT",
		"API.KEY",
		"API.SECRET",
		"CACHE.REDIS.URL",
		"HAT",
	}, "Vars")

	assert.False(t, diags.HasWarnings())

	// One record per internal node plus the root, root last.
	require.Len(t, records, 5)
	assert.Equal(t, "Vars", records[len(records)-1].TypeName)
	assert.True(t, records[len(records)-1].IsRoot)

	root := recordByName(t, records, "Vars")
	require.Len(t, root.Fields, 4)

	// Lexicographic by normalized field identifier.
	assert.Equal(t, "api", root.Fields[0].Name)
	assert.Equal(t, "cache", root.Fields[1].Name)
	assert.Equal(t, "database", root.Fields[2].Name)
	assert.Equal(t, "hat", root.Fields[3].Name)

	assert.Equal(t, FieldNested, root.Fields[0].Kind)
	assert.Equal(t, "VarsApi", root.Fields[0].ChildType)
	assert.Equal(t, FieldLeaf, root.Fields[3].Kind)
	assert.Equal(t, "HAT", root.Fields[3].SourceKey)

	db := recordByName(t, records, "VarsDatabase")
	require.Len(t, db.Fields, 2)
	assert.Equal(t, "host", db.Fields[0].Name)
	assert.Equal(t, "DATABASE.HOST", db.Fields[0].SourceKey)
	assert.Equal(t, "port", db.Fields[1].Name)

	// Deeply nested type names concatenate fragments from the root down.
	redis := recordByName(t, records, "VarsCacheRedis")
	require.Len(t, redis.Fields, 1)
	assert.Equal(t, "url", redis.Fields[0].Name)
	assert.Equal(t, "CACHE.REDIS.URL", redis.Fields[0].SourceKey)
}

func TestFromPaths_ChildRecordsPrecedeParents(t *testing.T) {
	records, _ := FromPaths([]string{"CACHE.REDIS.URL"}, "Vars")

	var order []string
	for _, r := range records {
		order = append(order, r.TypeName)
	}

	assert.Equal(t, []string{"VarsCacheRedis", "VarsCache", "Vars"}, order)
}

func TestFromPaths_NestedWinsOverLeaf(t *testing.T) {
	records, diags := FromPaths([]string{"A", "A.B"}, "Vars")

	root := recordByName(t, records, "Vars")
	require.Len(t, root.Fields, 1)

	// "A" must come out nested; its bare value binding is gone.
	assert.Equal(t, FieldNested, root.Fields[0].Kind)
	assert.Equal(t, "VarsA", root.Fields[0].ChildType)
	assert.Empty(t, root.Fields[0].SourceKey)

	a := recordByName(t, records, "VarsA")
	require.Len(t, a.Fields, 1)
	assert.Equal(t, "b", a.Fields[0].Name)
	assert.Equal(t, "A.B", a.Fields[0].SourceKey)

	require.True(t, diags.HasWarnings())
	assert.Equal(t, diagnostic.CodeLeafDiscarded, diags.Warnings[0].Code)
}

func TestFromPaths_NestedWinsRegardlessOfInsertionOrder(t *testing.T) {
	forward, _ := FromPaths([]string{"A", "A.B"}, "Vars")
	reverse, _ := FromPaths([]string{"A.B", "A"}, "Vars")

	assert.Equal(t, forward, reverse)
}

func TestFromPaths_SeparatorNormalization(t *testing.T) {
	records, _ := FromPaths([]string{"CACHE.REDIS-URL", "CACHE.REDIS-URL.POOL"}, "Vars")

	cache := recordByName(t, records, "VarsCache")
	require.Len(t, cache.Fields, 1)
	assert.Equal(t, "redis_url", cache.Fields[0].Name)
	assert.Equal(t, "VarsCacheRedisUrl", cache.Fields[0].ChildType)
}

func TestFromPaths_DuplicatePathWarns(t *testing.T) {
	records, diags := FromPaths([]string{"HAT", "HAT"}, "Vars")

	root := recordByName(t, records, "Vars")
	require.Len(t, root.Fields, 1)
	assert.Equal(t, "HAT", root.Fields[0].SourceKey)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicatePath, diags.Warnings[0].Code)
}

func TestFromPaths_FieldCollisionWarns(t *testing.T) {
	// Distinct raw segments, same normalized identifier.
	_, diags := FromPaths([]string{"REDIS-URL", "REDIS_URL.X"}, "Vars")

	require.True(t, diags.HasWarnings())

	var codes []string
	for _, w := range diags.Warnings {
		codes = append(codes, w.Code)
	}

	assert.Contains(t, codes, diagnostic.CodeFieldCollision)
}

func TestFromPaths_EmptyPathIgnored(t *testing.T) {
	records, diags := FromPaths([]string{"", "HAT"}, "Vars")

	assert.False(t, diags.HasWarnings())

	root := recordByName(t, records, "Vars")
	require.Len(t, root.Fields, 1)
	assert.Equal(t, "hat", root.Fields[0].Name)
}

func TestFromPaths_Idempotent(t *testing.T) {
	input := []string{"B.X", "A.Y", "CACHE.REDIS.URL", "HAT"}

	first, _ := FromPaths(input, "Vars")

	for i := 0; i < 10; i++ {
		again, _ := FromPaths(input, "Vars")
		assert.Equal(t, first, again)
	}
}

func TestFromPaths_DefaultRootName(t *testing.T) {
	records, _ := FromPaths([]string{"HAT"}, "")

	assert.Equal(t, DefaultRootName, records[len(records)-1].TypeName)
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "FieldLeaf", FieldLeaf.String())
	assert.Equal(t, "FieldNested", FieldNested.String())
}
