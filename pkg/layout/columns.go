package layout

import "math"

// ComputeColumns derives the live column count from the measured container
// width. A non-finite or non-positive width keeps the previous count (1 when
// there is no previous pass), widths at or below the collapse breakpoint
// force a single column, and everything else fits as many minimum-width
// columns as the container holds:
//
//	clamp(floor((width + gap) / (minColumnWidth + gap)), 1, maxColumns)
//
// For a fixed configuration the result is monotonically non-decreasing in
// width.
func ComputeColumns(widthPx float64, cfg Config, previous int) int {
	maxColumns := maxColumnsOf(cfg)

	if math.IsNaN(widthPx) || math.IsInf(widthPx, 0) || widthPx <= 0 {
		return clampInt(previous, 1, maxColumns)
	}

	if widthPx <= cfg.CollapseAt {
		return 1
	}

	unit := cfg.MinColumnWidth + cfg.Gap
	if unit <= 0 {
		unit = DefaultMinColumnWidth + DefaultGap
	}

	columns := int(math.Floor((widthPx + cfg.Gap) / unit))
	return clampInt(columns, 1, maxColumns)
}
