package catalog

// UpdateResult reports what a carry-forward merge changed.
type UpdateResult struct {
	Changed      bool
	TitleChanged bool
}

// BuildUpdate merges a sparse client payload onto an existing record.
// Recognized text fields overwrite when present in the payload (even
// when empty) and carry the stored value forward when absent. Title and
// status keep their stored value when absent OR supplied empty, since an
// empty value would violate their invariants. Unrecognized keys are
// ignored. The record is re-asserted as a complete row; the caller
// persists it with a full save, never a column-subset update.
func BuildUpdate(rec Record, fields map[string]string) UpdateResult {
	var res UpdateResult

	if v, ok := fields["title"]; ok && v != "" && v != rec.GetTitle() {
		rec.SetTitle(v)
		res.Changed = true
		res.TitleChanged = true
	}

	if v, ok := fields["status"]; ok && v != "" && v != rec.GetStatus() {
		rec.SetStatus(v)
		res.Changed = true
	}

	for key, ptr := range rec.TextFields() {
		if v, ok := fields[key]; ok && v != *ptr {
			*ptr = v
			res.Changed = true
		}
	}

	return res
}
