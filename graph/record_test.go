package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessors(t *testing.T) {
	now := time.Now()
	rec := Record{
		"name":     "APT29",
		"count":    int64(7),
		"ratio":    3.9,
		"active":   true,
		"modified": now,
		"groups":   []any{"APT29", int64(1), "FIN7"},
		"null":     nil,
	}

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "APT29", rec.AsString("name"))
		assert.Equal(t, "", rec.AsString("null"))
		assert.Equal(t, "", rec.AsString("absent"))
	})

	t.Run("int64", func(t *testing.T) {
		assert.Equal(t, int64(7), rec.AsInt64("count"))
		assert.Equal(t, int64(3), rec.AsInt64("ratio"), "floats truncate")
		assert.Equal(t, int64(0), rec.AsInt64("absent"))
	})

	t.Run("bool", func(t *testing.T) {
		assert.True(t, rec.AsBool("active"))
		assert.False(t, rec.AsBool("absent"))
	})

	t.Run("time", func(t *testing.T) {
		got, ok := rec.AsTime("modified")
		assert.True(t, ok)
		assert.True(t, got.Equal(now))

		_, ok = rec.AsTime("name")
		assert.False(t, ok)
	})

	t.Run("string list", func(t *testing.T) {
		assert.Equal(t, []string{"APT29", "FIN7"}, rec.AsStringList("groups"),
			"non-string elements are skipped")
		assert.Empty(t, rec.AsStringList("absent"))
		assert.NotNil(t, rec.AsStringList("absent"))
	})

	t.Run("path", func(t *testing.T) {
		_, ok := rec.AsPath("name")
		assert.False(t, ok)
	})
}
