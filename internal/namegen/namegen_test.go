package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterSequences(t *testing.T) {
	c := NewCounter()

	formatID, globalID := c.Next("csv")
	assert.Equal(t, 0, formatID)
	assert.Equal(t, 0, globalID)

	formatID, globalID = c.Next("csv")
	assert.Equal(t, 1, formatID)
	assert.Equal(t, 1, globalID)

	// A different format restarts its format sequence but keeps advancing
	// the global one.
	formatID, globalID = c.Next("tsv")
	assert.Equal(t, 0, formatID)
	assert.Equal(t, 2, globalID)
}

func TestResolveSpecifiers(t *testing.T) {
	meta := Metadata{Format: "csv", Filename: "orders"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"filename", SpecFilename, "orders"},
		{"format name", SpecFormatName, "csv"},
		{"literal", "static_name", "static_name"},
		{"mixed", "%(format_name)s_%(filename)s", "csv_orders"},
		{"surrounding whitespace trimmed", "  %(filename)s  ", "orders"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.template, meta, NewCounter())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConsumesIDsOnlyWhenReferenced(t *testing.T) {
	c := NewCounter()
	meta := Metadata{Format: "csv", Filename: "orders"}

	got, err := Resolve(SpecFilename, meta, c)
	require.NoError(t, err)
	assert.Equal(t, "orders", got)

	// The previous resolve referenced no ids, so the sequences are still
	// at zero.
	got, err = Resolve(SpecFormatName+SpecFormatID, meta, c)
	require.NoError(t, err)
	assert.Equal(t, "csv0", got)

	got, err = Resolve("t_%(global_id)s", meta, c)
	require.NoError(t, err)
	assert.Equal(t, "t_1", got)
}

func TestResolveBothIDsDrawOnce(t *testing.T) {
	c := NewCounter()
	meta := Metadata{Format: "csv"}

	got, err := Resolve("%(format_id)s_%(global_id)s", meta, c)
	require.NoError(t, err)
	assert.Equal(t, "0_0", got)

	got, err = Resolve("%(format_id)s_%(global_id)s", meta, c)
	require.NoError(t, err)
	assert.Equal(t, "1_1", got)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("", Metadata{}, NewCounter())
	require.Error(t, err)

	_, err = Resolve("   ", Metadata{}, NewCounter())
	require.Error(t, err)

	// Filename specifier with no filename resolves to nothing.
	_, err = Resolve(SpecFilename, Metadata{Format: "csv"}, NewCounter())
	require.Error(t, err)
}
