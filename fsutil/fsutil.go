// Package fsutil holds small formatting helpers shared by the ecs150fs
// CLI, grounded on the teacher's util/printer.go role of turning raw
// geometry numbers into the strings a human or a test expects.
package fsutil

import "fmt"

// Ratio formats free/total the way fs_info's fat_free_ratio and
// rdir_free_ratio fields are printed (spec.md §9 design note: integer
// ratios, not percentages).
func Ratio(free, total int) string {
	return fmt.Sprintf("%d/%d", free, total)
}

// ByteSize renders a byte count the way a CLI progress or export
// summary line would, picking the largest unit that keeps the number
// at least 1.
func ByteSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	units := "KMGTPE"
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), units[exp])
}
