package schema

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Type: "Test",
	Fields: []Field{
		{Name: "width", Kind: KindInt, Range: &Range{Min: 1, Max: 4096}},
		{Name: "mode", Kind: KindEnum, Enum: []string{"A", "B"}},
		{Name: "frame", Kind: KindAsset, Asset: "SpriteFrame", Tooltip: "the frame"},
	},
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testSchema, Schema{Type: "Empty"}))

	assert.Contains(t, buf.String(), "type: Test")
	assert.Contains(t, buf.String(), "asset: SpriteFrame")

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	assert.Equal(t, testSchema, decoded[0])
	assert.Equal(t, "Empty", decoded[1].Type)
}

func TestField(t *testing.T) {
	field, ok := testSchema.Field("mode")
	require.True(t, ok)
	assert.Equal(t, KindEnum, field.Kind)

	_, ok = testSchema.Field("missing")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cases := map[string]Schema{
		"duplicate": {Type: "X", Fields: []Field{{Name: "a", Kind: KindBool}, {Name: "a", Kind: KindBool}}},
		"enum":      {Type: "X", Fields: []Field{{Name: "a", Kind: KindEnum}}},
		"asset":     {Type: "X", Fields: []Field{{Name: "a", Kind: KindAsset}}},
		"range":     {Type: "X", Fields: []Field{{Name: "a", Kind: KindFloat, Range: &Range{Min: 1, Max: 0}}}},
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Validate())
			assert.Error(t, Encode(&bytes.Buffer{}, s))
		})
	}

	assert.NoError(t, testSchema.Validate())
}
