package genealogy

import "strings"

// MinRecordLines is the number of positional fields every record must carry.
const MinRecordLines = 8

// SplitRecords segments an export into per-creature line blocks. Blocks are
// separated by blank lines; blocks shorter than MinRecordLines are dropped.
func SplitRecords(text string) [][]string {
	blocks, _ := splitBlocks(text)
	return blocks
}

// splitBlocks is SplitRecords plus the count of blocks dropped for being short.
func splitBlocks(text string) (blocks [][]string, short int) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		if len(current) >= MinRecordLines {
			blocks = append(blocks, current)
		} else {
			short++
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks, short
}
