package models

import (
	"encoding/json"
	"testing"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOpTag_IsChange(t *testing.T) {
	assert.False(t, OpEqual.IsChange())
	assert.True(t, OpReplace.IsChange())
	assert.True(t, OpDelete.IsChange())
	assert.True(t, OpInsert.IsChange())
}

func TestCell_Text(t *testing.T) {
	cell := &Cell{LineNo: 2, Segments: []Segment{
		{Text: "Line 2", Kind: SegmentPlain},
		{Text: " changed", Kind: SegmentAdded},
	}}

	assert.Equal(t, "Line 2 changed", cell.Text())

	var blank *Cell
	assert.Equal(t, "", blank.Text())
}

func TestDiffResult_HasChanges(t *testing.T) {
	identical := &DiffResult{Opcodes: []Opcode{{Tag: OpEqual, I1: 0, I2: 2, J1: 0, J2: 2}}}
	assert.False(t, identical.HasChanges())

	changed := &DiffResult{Opcodes: []Opcode{
		{Tag: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: OpInsert, I1: 1, I2: 1, J1: 1, J2: 2},
	}}
	assert.True(t, changed.HasChanges())

	assert.False(t, (&DiffResult{}).HasChanges())
}

func TestParseContextLines(t *testing.T) {
	tests := []struct {
		input    string
		expected ContextLines
		wantErr  bool
	}{
		{input: "all", expected: AllContext},
		{input: "ALL", expected: AllContext},
		{input: "", expected: AllContext},
		{input: "3", expected: 3},
		{input: "0", expected: 0},
		{input: "-5", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "some", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContextLines(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContextLines_YAML(t *testing.T) {
	var cfg struct {
		Context ContextLines `yaml:"context"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("context: all\n"), &cfg))
	assert.True(t, cfg.Context.IsAll())

	require.NoError(t, yaml.Unmarshal([]byte("context: 5\n"), &cfg))
	assert.Equal(t, ContextLines(5), cfg.Context)

	assert.Error(t, yaml.Unmarshal([]byte("context: -2\n"), &cfg))

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "context: 5\n", string(out))

	cfg.Context = AllContext
	out, err = yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "context: all\n", string(out))
}

func TestContextLines_JSON(t *testing.T) {
	var cfg struct {
		Context ContextLines `json:"context"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"context":"all"}`), &cfg))
	assert.Equal(t, AllContext, cfg.Context)

	require.NoError(t, json.Unmarshal([]byte(`{"context":2}`), &cfg))
	assert.Equal(t, ContextLines(2), cfg.Context)

	assert.Error(t, json.Unmarshal([]byte(`{"context":true}`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"context":-3}`), &cfg))
	assert.Equal(t, ContextLines(2), cfg.Context)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"context":2}`, string(out))
}

func TestRenderOptions_Validate(t *testing.T) {
	opts := DefaultRenderOptions()
	require.NoError(t, opts.Validate())

	opts.TabSize = 0
	err := opts.Validate()
	require.Error(t, err)
	assert.True(t, errorwrapper.IsValidationError(err))
	assert.Contains(t, err.Error(), "tab_size")

	opts = DefaultRenderOptions()
	opts.ColumnWidth = -1
	err = opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column_width")

	opts = DefaultRenderOptions()
	opts.ContextLines = -2
	assert.Error(t, opts.Validate())
}
