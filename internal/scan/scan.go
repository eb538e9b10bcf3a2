package scan

import "strings"

// fenceInfo is the info-string that marks a quiz block fence.
const fenceInfo = "masteryls"

// Scan extracts masteryls blocks from a markdown document.
//
// Only fences whose info-string equals exactly "masteryls" are captured;
// all other fenced regions are skipped opaquely so code samples inside them
// can never be mistaken for quiz syntax. A masteryls fence that reaches the
// end of the document without a closing fence is reported as truncated.
// Scanning is pure: the same input always yields the same result.
func Scan(document string) Result {
	lines := splitLines(document)
	var result Result

	for i := 0; i < len(lines); i++ {
		ticks, info, ok := fenceOpen(lines[i])
		if !ok {
			continue
		}
		if info != fenceInfo {
			i = skipForeignFence(lines, i+1, ticks)
			continue
		}

		index := len(result.Blocks) + len(result.Truncated)
		fenceLine := i + 1
		var header []string
		closed := false
		j := i + 1
		for ; j < len(lines); j++ {
			if fenceClose(lines[j], ticks) {
				closed = true
				break
			}
			header = append(header, lines[j])
		}
		if !closed {
			result.Truncated = append(result.Truncated, Truncated{Index: index, Line: fenceLine})
			break
		}

		options, next := collectOptions(lines, j+1)
		result.Blocks = append(result.Blocks, RawBlock{
			Index:      index,
			FenceLine:  fenceLine,
			HeaderText: strings.Join(header, "\n"),
			Options:    options,
		})
		i = next - 1
	}
	return result
}

// splitLines splits a document into lines, tolerating CRLF endings.
func splitLines(document string) []string {
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// fenceOpen parses a line as an opening code fence.
func fenceOpen(line string) (int, string, bool) {
	rest, ok := trimFenceIndent(line)
	if !ok {
		return 0, "", false
	}
	ticks := leadingBackticks(rest)
	if ticks < 3 {
		return 0, "", false
	}
	info := strings.TrimSpace(rest[ticks:])
	if strings.Contains(info, "`") {
		return 0, "", false
	}
	return ticks, info, true
}

// fenceClose reports whether a line closes a fence opened with openTicks.
func fenceClose(line string, openTicks int) bool {
	rest, ok := trimFenceIndent(line)
	if !ok {
		return false
	}
	ticks := leadingBackticks(rest)
	if ticks < openTicks {
		return false
	}
	return strings.TrimSpace(rest[ticks:]) == ""
}

// trimFenceIndent removes up to three leading spaces from a fence line.
func trimFenceIndent(line string) (string, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return "", false
	}
	return line[indent:], true
}

// leadingBackticks counts the backticks at the start of a line.
func leadingBackticks(line string) int {
	count := 0
	for count < len(line) && line[count] == '`' {
		count++
	}
	return count
}

// skipForeignFence advances past a non-masteryls fenced region.
func skipForeignFence(lines []string, start, openTicks int) int {
	for i := start; i < len(lines); i++ {
		if fenceClose(lines[i], openTicks) {
			return i
		}
	}
	return len(lines)
}

// collectOptions gathers the contiguous run of list lines after a fence.
//
// The run ends at the first blank line or the first line that is not a
// markdown list item. Checkbox syntax is not enforced here; the validator
// decides whether each captured line is a well-formed option.
func collectOptions(lines []string, start int) ([]OptionLine, int) {
	var options []OptionLine
	i := start
	for ; i < len(lines); i++ {
		item, ok := listItem(lines[i])
		if !ok {
			break
		}
		options = append(options, OptionLine{Line: i + 1, Text: item})
	}
	return options, i
}

// listItem reports whether a line is a "- " markdown list item.
func listItem(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "- ") {
		return "", false
	}
	return strings.TrimRight(trimmed, " \t"), true
}
