package differ

import "github.com/aleister1102/sidediff/internal/models"

// ApplyContext keeps at most n unchanged rows around each change and replaces
// the rest with skipped groups. With AllContext the groups are returned as
// is; when nothing changed and trimming is on, no groups remain.
func ApplyContext(groups []models.RowGroup, n models.ContextLines) []models.RowGroup {
	if n.IsAll() {
		return groups
	}
	if !hasChangedGroup(groups) {
		return nil
	}

	keep := int(n)
	trimmed := make([]models.RowGroup, 0, len(groups))
	for idx, group := range groups {
		if group.Tag != models.OpEqual {
			trimmed = append(trimmed, group)
			continue
		}

		rows := group.Rows
		switch {
		case idx == 0:
			head := max(0, len(rows)-keep)
			trimmed = appendSkip(trimmed, head)
			trimmed = appendEqual(trimmed, rows[head:])
		case idx == len(groups)-1:
			tail := min(keep, len(rows))
			trimmed = appendEqual(trimmed, rows[:tail])
			trimmed = appendSkip(trimmed, len(rows)-tail)
		case len(rows) > 2*keep:
			trimmed = appendEqual(trimmed, rows[:keep])
			trimmed = appendSkip(trimmed, len(rows)-2*keep)
			trimmed = appendEqual(trimmed, rows[len(rows)-keep:])
		default:
			trimmed = append(trimmed, group)
		}
	}
	return trimmed
}

func hasChangedGroup(groups []models.RowGroup) bool {
	for _, group := range groups {
		if group.Tag.IsChange() {
			return true
		}
	}
	return false
}

func appendEqual(groups []models.RowGroup, rows []models.DiffRow) []models.RowGroup {
	if len(rows) == 0 {
		return groups
	}
	return append(groups, models.RowGroup{Tag: models.OpEqual, Rows: rows})
}

func appendSkip(groups []models.RowGroup, hidden int) []models.RowGroup {
	if hidden <= 0 {
		return groups
	}
	return append(groups, models.RowGroup{Tag: models.OpEqual, Skipped: true, HiddenLines: hidden})
}
