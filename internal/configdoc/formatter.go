// Package configdoc turns a line-oriented key=value configuration resource
// into the configuration reference document.
package configdoc

import "strings"

// DocFile is the artifact name of the configuration reference.
const DocFile = "configuration.adoc"

// BlockSeparator joins consecutive formatted blocks.
const BlockSeparator = "\n\n"

// FormatLine converts one raw configuration line into a markup block:
//
//	# Some note      -> _Some note_
//	server.port=8080 -> *server.port*\n\n'''
//	anything else    -> unchanged
//
// Every '#' is removed from comment lines, not only the leading ones. The value
// of a key=value line is never rendered.
func FormatLine(line string) string {
	if strings.HasPrefix(line, "#") {
		return "_" + strings.TrimSpace(strings.ReplaceAll(line, "#", "")) + "_"
	}
	key, _, found := strings.Cut(line, "=")
	if !found {
		return line
	}
	return "*" + key + "*\n\n'''"
}

// Format converts lines 1:1 and joins the blocks with BlockSeparator.
func Format(lines []string) string {
	blocks := make([]string, len(lines))
	for i, line := range lines {
		blocks[i] = FormatLine(line)
	}
	return strings.Join(blocks, BlockSeparator)
}
