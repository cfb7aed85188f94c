package differ

import (
	"testing"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleBefore = []string{"Line 1", "Line 2", "Line 3"}
	sampleAfter  = []string{"Line 1", "Line 2 changed", "Line 3", "Line 4 added"}
)

func newTestDiffer(t *testing.T, opts models.RenderOptions) *Differ {
	t.Helper()
	d, err := NewDiffer(zerolog.Nop(), opts)
	require.NoError(t, err)
	return d
}

func TestLineDiffer_SampleOpcodes(t *testing.T) {
	opcodes := NewLineDiffer().Opcodes(sampleBefore, sampleAfter)

	expected := []models.Opcode{
		{Tag: models.OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: models.OpReplace, I1: 1, I2: 2, J1: 1, J2: 2},
		{Tag: models.OpEqual, I1: 2, I2: 3, J1: 2, J2: 3},
		{Tag: models.OpInsert, I1: 3, I2: 3, J1: 3, J2: 4},
	}
	assert.Equal(t, expected, opcodes)
}

func TestLineDiffer_Reconstruction(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		after  []string
	}{
		{"sample", sampleBefore, sampleAfter},
		{"both empty", []string{}, []string{}},
		{"before empty", []string{}, []string{"a", "b"}},
		{"after empty", []string{"a", "b"}, []string{}},
		{"repeated lines", []string{"x", "x", "x", "y"}, []string{"x", "y", "x", "x"}},
		{"empty strings", []string{"", "a", ""}, []string{"a", "", ""}},
		{"disjoint", []string{"a", "b"}, []string{"c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opcodes := NewLineDiffer().Opcodes(tt.before, tt.after)

			var gotBefore, gotAfter []string
			prevI, prevJ := 0, 0
			for _, op := range opcodes {
				assert.Equal(t, prevI, op.I1, "before ranges must be contiguous")
				assert.Equal(t, prevJ, op.J1, "after ranges must be contiguous")
				assert.False(t, op.BeforeLen() == 0 && op.AfterLen() == 0, "opcode with two empty ranges")
				gotBefore = append(gotBefore, tt.before[op.I1:op.I2]...)
				gotAfter = append(gotAfter, tt.after[op.J1:op.J2]...)
				prevI, prevJ = op.I2, op.J2
			}
			assert.Equal(t, len(tt.before), prevI)
			assert.Equal(t, len(tt.after), prevJ)
			assert.Equal(t, len(tt.before), len(gotBefore))
			assert.Equal(t, len(tt.after), len(gotAfter))
			for i := range gotBefore {
				assert.Equal(t, tt.before[i], gotBefore[i])
			}
			for j := range gotAfter {
				assert.Equal(t, tt.after[j], gotAfter[j])
			}
		})
	}
}

func TestLineDiffer_IdenticalAndEmpty(t *testing.T) {
	ld := NewLineDiffer()

	opcodes := ld.Opcodes([]string{"a", "b"}, []string{"a", "b"})
	require.Len(t, opcodes, 1)
	assert.Equal(t, models.Opcode{Tag: models.OpEqual, I1: 0, I2: 2, J1: 0, J2: 2}, opcodes[0])

	assert.Empty(t, ld.Opcodes([]string{}, []string{}))

	opcodes = ld.Opcodes([]string{}, []string{"a", "b"})
	require.Len(t, opcodes, 1)
	assert.Equal(t, models.OpInsert, opcodes[0].Tag)

	opcodes = ld.Opcodes([]string{"a", "b"}, nil)
	require.Len(t, opcodes, 1)
	assert.Equal(t, models.Opcode{Tag: models.OpDelete, I1: 0, I2: 2, J1: 0, J2: 0}, opcodes[0])
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"\n", []string{""}},
		{"a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SplitLines(tt.input), "input %q", tt.input)
	}
}

func TestDiffer_Sample(t *testing.T) {
	d := newTestDiffer(t, models.DefaultRenderOptions())

	result := d.Diff(sampleBefore, sampleAfter)
	require.Len(t, result.Groups, 4)
	assert.True(t, result.HasChanges())

	replaceRow := result.Groups[1].Rows[0]
	assert.Equal(t, models.OpReplace, replaceRow.Tag)
	assert.Equal(t, 2, replaceRow.Left.LineNo)
	assert.Equal(t, 2, replaceRow.Right.LineNo)
	assert.Equal(t, []models.Segment{{Text: "Line 2", Kind: models.SegmentPlain}}, replaceRow.Left.Segments)
	assert.Equal(t, []models.Segment{
		{Text: "Line 2", Kind: models.SegmentPlain},
		{Text: " changed", Kind: models.SegmentAdded},
	}, replaceRow.Right.Segments)

	insertRow := result.Groups[3].Rows[0]
	assert.Equal(t, models.OpInsert, insertRow.Tag)
	assert.Nil(t, insertRow.Left)
	assert.Equal(t, 4, insertRow.Right.LineNo)
	assert.Equal(t, "Line 4 added", insertRow.Right.Text())

	assert.Equal(t, models.DiffStatistics{
		LinesAdded:   1,
		LinesChanged: 1,
		LinesEqual:   2,
	}, result.Stats)
}

func TestDiffer_Identical(t *testing.T) {
	d := newTestDiffer(t, models.DefaultRenderOptions())

	result := d.Diff([]string{"a", "b", "c"}, []string{"a", "b", "c"})
	assert.False(t, result.HasChanges())
	assert.True(t, result.Stats.IsIdentical)
	require.Len(t, result.Groups, 1)
	for i, row := range result.Groups[0].Rows {
		assert.Equal(t, models.OpEqual, row.Tag)
		assert.Equal(t, i+1, row.Left.LineNo)
		assert.Equal(t, i+1, row.Right.LineNo)
		assert.Equal(t, row.Left.Text(), row.Right.Text())
	}
}

func TestDiffer_OneSideEmpty(t *testing.T) {
	d := newTestDiffer(t, models.DefaultRenderOptions())

	result := d.Diff(nil, []string{"x", "y"})
	require.Len(t, result.Groups, 1)
	for _, row := range result.Groups[0].Rows {
		assert.Nil(t, row.Left)
		require.NotNil(t, row.Right)
		assert.Equal(t, models.SegmentAdded, row.Right.Segments[0].Kind)
	}

	result = d.Diff([]string{"x", "y"}, nil)
	require.Len(t, result.Groups, 1)
	for _, row := range result.Groups[0].Rows {
		assert.Nil(t, row.Right)
		require.NotNil(t, row.Left)
		assert.Equal(t, models.SegmentRemoved, row.Left.Segments[0].Kind)
	}
	assert.Equal(t, 2, result.Stats.LinesDeleted)
}

func TestRowBuilder_UnequalReplacePairing(t *testing.T) {
	rb := NewRowBuilder(NewDiffProcessor(DefaultDiffConfig()), 8)
	before := []string{"a1", "a2", "a3"}
	after := []string{"b1"}
	op := models.Opcode{Tag: models.OpReplace, I1: 0, I2: 3, J1: 0, J2: 1}

	groups := rb.BuildGroups(before, after, []models.Opcode{op})
	require.Len(t, groups, 1)
	rows := groups[0].Rows
	require.Len(t, rows, 3)

	assert.Equal(t, models.OpReplace, rows[0].Tag)
	assert.Equal(t, 1, rows[0].Left.LineNo)
	assert.Equal(t, 1, rows[0].Right.LineNo)

	for k, row := range rows[1:] {
		assert.Equal(t, models.OpDelete, row.Tag)
		assert.Nil(t, row.Right)
		assert.Equal(t, k+2, row.Left.LineNo)
	}

	after = []string{"b1", "b2"}
	op = models.Opcode{Tag: models.OpReplace, I1: 0, I2: 1, J1: 0, J2: 2}
	groups = rb.BuildGroups([]string{"a1"}, after, []models.Opcode{op})
	rows = groups[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, models.OpInsert, rows[1].Tag)
	assert.Nil(t, rows[1].Left)
	assert.Equal(t, "b2", rows[1].Right.Text())
}

func TestRowBuilder_ExpandsTabs(t *testing.T) {
	rb := NewRowBuilder(NewDiffProcessor(DefaultDiffConfig()), 4)
	op := models.Opcode{Tag: models.OpEqual, I1: 0, I2: 1, J1: 0, J2: 1}

	groups := rb.BuildGroups([]string{"a\tb"}, []string{"a\tb"}, []models.Opcode{op})
	assert.Equal(t, "a   b", groups[0].Rows[0].Left.Text())
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "        x", expandTabs("\tx", 8))
	assert.Equal(t, "ab  cd", expandTabs("ab\tcd", 4))
	assert.Equal(t, "abcd    e", expandTabs("abcd\te", 4))
	assert.Equal(t, "no tabs", expandTabs("no tabs", 4))
}

func TestApplyContext(t *testing.T) {
	before := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	after := []string{"1", "2", "3", "4", "five", "6", "7", "8", "9", "10"}

	opts := models.DefaultRenderOptions()
	opts.ContextLines = 1
	result := newTestDiffer(t, opts).Diff(before, after)

	require.Len(t, result.Groups, 5)
	assert.True(t, result.Groups[0].Skipped)
	assert.Equal(t, 3, result.Groups[0].HiddenLines)
	assert.Equal(t, 4, result.Groups[1].Rows[0].Left.LineNo)
	assert.Equal(t, models.OpReplace, result.Groups[2].Tag)
	assert.Equal(t, 6, result.Groups[3].Rows[0].Left.LineNo)
	assert.True(t, result.Groups[4].Skipped)
	assert.Equal(t, 4, result.Groups[4].HiddenLines)
}

func TestApplyContext_MiddleGroup(t *testing.T) {
	groups := []models.RowGroup{
		{Tag: models.OpInsert, Rows: make([]models.DiffRow, 1)},
		{Tag: models.OpEqual, Rows: make([]models.DiffRow, 7)},
		{Tag: models.OpDelete, Rows: make([]models.DiffRow, 1)},
	}

	trimmed := ApplyContext(groups, 2)
	require.Len(t, trimmed, 5)
	assert.Len(t, trimmed[1].Rows, 2)
	assert.True(t, trimmed[2].Skipped)
	assert.Equal(t, 3, trimmed[2].HiddenLines)
	assert.Len(t, trimmed[3].Rows, 2)

	// short gaps stay whole
	assert.Len(t, ApplyContext(groups, 4), 3)
}

func TestApplyContext_NoChanges(t *testing.T) {
	groups := []models.RowGroup{{Tag: models.OpEqual, Rows: make([]models.DiffRow, 3)}}

	assert.Nil(t, ApplyContext(groups, 2))
	assert.Equal(t, groups, ApplyContext(groups, models.AllContext))
}

func TestLineWrapper_WrapsToWidth(t *testing.T) {
	opts := models.DefaultRenderOptions()
	opts.ColumnWidth = 4
	result := newTestDiffer(t, opts).Diff([]string{"abcdefghij"}, []string{"abcdefghij"})

	rows := result.Groups[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "abcd", rows[0].Left.Text())
	assert.Equal(t, 1, rows[0].Left.LineNo)
	assert.False(t, rows[0].Left.Continuation)
	assert.Equal(t, "efgh", rows[1].Right.Text())
	assert.True(t, rows[1].Right.Continuation)
	assert.Equal(t, 0, rows[1].Right.LineNo)
	assert.Equal(t, "ij", rows[2].Left.Text())
}

func TestLineWrapper_WideRunesAndUnevenSides(t *testing.T) {
	lw := NewLineWrapper(4)
	groups := []models.RowGroup{{
		Tag: models.OpReplace,
		Rows: []models.DiffRow{{
			Tag:   models.OpReplace,
			Left:  newCell(1, "日本語", models.SegmentChanged),
			Right: newCell(1, "ab", models.SegmentChanged),
		}},
	}}

	rows := lw.WrapGroups(groups)[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "日本", rows[0].Left.Text())
	assert.Equal(t, "語", rows[1].Left.Text())
	assert.Nil(t, rows[1].Right)

	for _, row := range rows {
		assert.LessOrEqual(t, lw.StringWidth(row.Left.Text()), 4)
	}
}

func TestLineWrapper_KeepsSegmentKinds(t *testing.T) {
	lw := NewLineWrapper(3)
	cell := &models.Cell{LineNo: 1, Segments: []models.Segment{
		{Text: "ab", Kind: models.SegmentPlain},
		{Text: "cd", Kind: models.SegmentChanged},
	}}

	chunks := lw.wrapCell(cell)
	require.Len(t, chunks, 2)
	assert.Equal(t, []models.Segment{
		{Text: "ab", Kind: models.SegmentPlain},
		{Text: "c", Kind: models.SegmentChanged},
	}, chunks[0])
	assert.Equal(t, []models.Segment{{Text: "d", Kind: models.SegmentChanged}}, chunks[1])
}

func TestLineWrapper_EmptyLine(t *testing.T) {
	lw := NewLineWrapper(5)
	rows := lw.wrapRow(models.DiffRow{Tag: models.OpEqual, Left: newCell(3, "", models.SegmentPlain)})

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Left)
	assert.Equal(t, 3, rows[0].Left.LineNo)
	assert.Nil(t, rows[0].Right)
}

func TestDifferBuilder_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config DiffConfig
		field  string
	}{
		{"negative width", DiffConfig{ColumnWidth: -1, TabSize: 8}, "column_width"},
		{"zero tab size", DiffConfig{TabSize: 0}, "tab_size"},
		{"context below all", DiffConfig{TabSize: 8, ContextLines: -2}, "context_lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDifferBuilder(zerolog.Nop()).WithConfig(tt.config).Build()
			assert.Nil(t, d)
			require.Error(t, err)

			var verr *errorwrapper.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUnifiedDiff(t *testing.T) {
	text, err := UnifiedDiff(sampleBefore, sampleAfter, "before", "after", models.AllContext)
	require.NoError(t, err)

	assert.Contains(t, text, "--- before\n")
	assert.Contains(t, text, "+++ after\n")
	assert.Contains(t, text, "@@ -1,3 +1,4 @@\n")
	assert.Contains(t, text, "-Line 2\n")
	assert.Contains(t, text, "+Line 2 changed\n")
	assert.Contains(t, text, "+Line 4 added\n")
	assert.Contains(t, text, " Line 3\n")

	text, err = UnifiedDiff(sampleBefore, sampleBefore, "before", "after", 3)
	require.NoError(t, err)
	assert.Empty(t, text)
}

type fixedAligner struct {
	opcodes []models.Opcode
}

func (a fixedAligner) Opcodes(before, after []string) []models.Opcode {
	return a.opcodes
}

type taggingHighlighter struct{}

func (taggingHighlighter) Highlight(left, right string) ([]models.Segment, []models.Segment) {
	return []models.Segment{{Text: "L:" + left, Kind: models.SegmentRemoved}},
		[]models.Segment{{Text: "R:" + right, Kind: models.SegmentAdded}}
}

func TestDifferBuilder_CustomAlignerAndHighlighter(t *testing.T) {
	aligner := fixedAligner{opcodes: []models.Opcode{{Tag: models.OpReplace, I1: 0, I2: 1, J1: 0, J2: 1}}}

	d, err := NewDifferBuilder(zerolog.Nop()).
		WithAligner(aligner).
		WithHighlighter(taggingHighlighter{}).
		Build()
	require.NoError(t, err)

	result := d.Diff([]string{"same"}, []string{"same"})
	require.Len(t, result.Groups, 1)
	require.Len(t, result.Groups[0].Rows, 1)

	row := result.Groups[0].Rows[0]
	assert.Equal(t, models.OpReplace, row.Tag)
	assert.Equal(t, []models.Segment{{Text: "L:same", Kind: models.SegmentRemoved}}, row.Left.Segments)
	assert.Equal(t, []models.Segment{{Text: "R:same", Kind: models.SegmentAdded}}, row.Right.Segments)
	assert.Equal(t, 1, row.Left.LineNo)
	assert.Equal(t, 1, row.Right.LineNo)
}
