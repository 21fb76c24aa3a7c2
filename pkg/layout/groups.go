package layout

// AnnotateGroups walks fields in document order and flags group starts. A
// start separates two distinct runs of named groups: the first named group
// ever seen is not a start, a repeated group is a continuation, and an
// ungrouped field resets the run so that the next named group reads as a
// fresh transition, even when it resumes the group that ran before the
// reset. The gap before a start comes from the per-group configuration,
// falling back to the global group gap.
func AnnotateGroups(fields []FieldLayout, cfg Config) {
	previous := ""
	seenGroup := false

	for i := range fields {
		group := fields[i].Group
		fields[i].GroupStart = false
		fields[i].GapBefore = 0

		if group == "" {
			previous = ""
			continue
		}

		if seenGroup && group != previous {
			fields[i].GroupStart = true
			fields[i].GapBefore = cfg.GroupGapBefore(group)
		}
		previous = group
		seenGroup = true
	}
}
