package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one per rendered byte
const (
	HL_NORMAL = iota
	HL_COMMENT
	HL_MLCOMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

// Per-language feature flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

type editorSyntax struct {
	filetype               string
	filematch              []string
	keywords               []string
	singlelineCommentStart string
	multilineCommentStart  string
	multilineCommentEnd    string
	flags                  int
}

// A trailing '|' marks a secondary (type) keyword.
var HLDB_ENTRIES = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
			"map", "package", "range", "return", "select", "struct", "switch", "type",
			"var",
			"bool|", "byte|", "error|", "float64|", "int|", "int64|", "rune|",
			"string|", "uint|"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// Check if the character is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' || c == 0 {
		return true
	}
	return strings.IndexByte(",.()+-/=~%<>[];", c) != -1
}

// updateSyntax rescans this row, then walks forward rescanning successors
// for as long as the open-comment flag keeps changing. The walk is bounded
// by the number of rows below this one.
func (row *editorRow) updateSyntax(e *Editor) {
	changed := row.scanSyntax(e)
	for j := row.idx + 1; changed && j < e.numrows; j++ {
		changed = e.rows[j].scanSyntax(e)
	}
}

// scanSyntax regenerates row.hl from row.render and reports whether the
// row's open-comment flag changed.
func (row *editorRow) scanSyntax(e *Editor) bool {
	row.hl = make([]byte, len(row.render))

	if e.syntax == nil {
		return false
	}

	keywords := e.syntax.keywords

	scs := []byte(e.syntax.singlelineCommentStart)
	mcs := []byte(e.syntax.multilineCommentStart)
	mce := []byte(e.syntax.multilineCommentEnd)

	prevSep := true
	var inString byte = 0
	inComment := row.idx > 0 && row.idx-1 < len(e.rows) && e.rows[row.idx-1].hlOpenComment

	for i := 0; i < len(row.render); {
		c := row.render[i]
		prevHl := byte(HL_NORMAL)
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(row.render[i:], scs) {
				for j := i; j < len(row.render); j++ {
					row.hl[j] = HL_COMMENT
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HL_MLCOMMENT
				if bytes.HasPrefix(row.render[i:], mce) {
					for j := range len(mce) {
						row.hl[i+j] = HL_MLCOMMENT
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(row.render[i:], mcs) {
				for j := range len(mcs) {
					row.hl[i+j] = HL_MLCOMMENT
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				// A backslash protects the next byte
				if c == '\\' && i+1 < len(row.render) {
					row.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) ||
				(c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, keyword := range keywords {
				klen := len(keyword)
				hlClass := byte(HL_KEYWORD1)
				if keyword[klen-1] == '|' {
					hlClass = HL_KEYWORD2
					klen--
				}

				if i+klen <= len(row.render) &&
					bytes.Equal(row.render[i:i+klen], []byte(keyword[:klen])) &&
					(i+klen == len(row.render) || isSeparator(row.render[i+klen])) {
					for k := range klen {
						row.hl[i+k] = hlClass
					}
					i += klen
					matched = true
					break
				}
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	return changed
}

func syntaxToColor(hl byte) int {
	switch hl {
	case HL_COMMENT, HL_MLCOMMENT:
		return 36
	case HL_KEYWORD1:
		return 33
	case HL_KEYWORD2:
		return 32
	case HL_STRING:
		return 35
	case HL_NUMBER:
		return 31
	case HL_MATCH:
		return 34
	default:
		return 37
	}
}

// SelectSyntaxHighlight picks a language by filename and re-highlights the
// whole buffer. Patterns starting with '.' match the filename extension,
// anything else matches as a substring.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	var ext string
	if lastDot := strings.LastIndex(e.filename, "."); lastDot != -1 {
		ext = e.filename[lastDot:]
	}

	for j := range HLDB_ENTRIES {
		s := &HLDB_ENTRIES[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = s

				// Scanning in order seeds each row from its predecessor.
				for filerow := range e.numrows {
					e.rows[filerow].scanSyntax(e)
				}
				return
			}
		}
	}
}
