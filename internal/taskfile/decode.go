package taskfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/domain"
)

// Decode parses the raw text of a task file into an ordered task list.
// It never fails: malformed content degrades to a shorter (or empty) list
// plus diagnostics.
//
// Failures come in two tiers. A malformed task object is skipped with a
// record-level diagnostic and scanning continues after its closing brace.
// A malformed file (bad top-level framing, mismatched braces) discards
// everything, including objects already parsed during this call, and
// returns an empty list with a file-level diagnostic. The two tiers are
// deliberate and must not be unified: a truncated file reporting "no
// data" is preferable to a silently truncated list.
func Decode(content string) ([]domain.Task, []Diagnostic) {
	var diags []Diagnostic

	content = strings.TrimSpace(content)
	if len(content) <= 1 || content[0] != '[' || content[len(content)-1] != ']' {
		if content != "" {
			diags = append(diags, fileDiag("task file is not a top-level array; starting with an empty task list"))
		}
		return nil, diags
	}

	var tasks []domain.Task
	pos := 1
	for pos < len(content)-1 {
		idx := strings.IndexByte(content[pos:], '{')
		if idx < 0 {
			break
		}
		objStart := pos + idx

		objEnd, ok := matchBrace(content, objStart)
		if !ok {
			diags = append(diags, fileDiag("mismatched braces in task file; discarding all tasks"))
			return nil, diags
		}

		task, objDiags, err := decodeObject(content[objStart : objEnd+1])
		diags = append(diags, objDiags...)
		if err != nil {
			diags = append(diags, recordDiag(fmt.Sprintf("skipping malformed task object: %v", err)))
		} else {
			tasks = append(tasks, task)
		}
		pos = objEnd + 1
	}

	return tasks, diags
}

// matchBrace finds the closing brace balancing the '{' at start, scanning
// only up to (not including) the final ']' of the array. The scan counts
// every brace byte, quoted or not, exactly like the writer side never
// escapes braces.
func matchBrace(content string, start int) (int, bool) {
	depth := 0
	for i := start; i < len(content)-1; i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// cursor is a position index walked over one object substring.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.s)
}

func (c *cursor) peek() byte {
	return c.s[c.pos]
}

func (c *cursor) skipSpace() {
	for !c.eof() {
		switch c.s[c.pos] {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

// readQuoted reads a double-quoted string starting at the cursor,
// unescaping as it goes.
func (c *cursor) readQuoted() (string, error) {
	if c.eof() || c.peek() != '"' {
		return "", fmt.Errorf("expected '\"' at offset %d", c.pos)
	}
	c.pos++

	var b strings.Builder
	for !c.eof() {
		ch := c.s[c.pos]
		c.pos++
		switch ch {
		case '"':
			return b.String(), nil
		case '\\':
			if c.eof() {
				return "", fmt.Errorf("unterminated escape at offset %d", c.pos)
			}
			b.WriteByte(unescapeByte(c.s[c.pos]))
			c.pos++
		default:
			b.WriteByte(ch)
		}
	}
	return "", fmt.Errorf("unterminated string at offset %d", c.pos)
}

// readInt reads a bare decimal integer starting at the cursor.
func (c *cursor) readInt() (int64, error) {
	start := c.pos
	if !c.eof() && (c.peek() == '-' || c.peek() == '+') {
		c.pos++
	}
	for !c.eof() && c.peek() >= '0' && c.peek() <= '9' {
		c.pos++
	}
	if c.pos == start {
		return 0, fmt.Errorf("expected integer at offset %d", start)
	}
	n, err := strconv.ParseInt(c.s[start:c.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", c.s[start:c.pos], err)
	}
	return n, nil
}

// decodeObject parses one {...} substring into a task. An error fails
// this object only; the diagnostics carry field-level degradations
// (timestamp fallbacks, unknown keys) that do not fail the object.
func decodeObject(obj string) (domain.Task, []Diagnostic, error) {
	// Missing timestamps keep the sentinel, matching the fallback used
	// when a stored timestamp fails to parse.
	task := domain.Task{Status: domain.StatusTodo, CreatedAt: Epoch, UpdatedAt: Epoch}
	var diags []Diagnostic

	if len(obj) < 2 || obj[0] != '{' || obj[len(obj)-1] != '}' {
		return task, diags, fmt.Errorf("task object is missing braces")
	}

	c := &cursor{s: obj, pos: 1}
	c.skipSpace()

	for {
		if c.eof() {
			return task, diags, fmt.Errorf("unexpected end of task object")
		}
		if c.peek() == '}' {
			break
		}

		key, err := c.readQuoted()
		if err != nil {
			return task, diags, fmt.Errorf("reading key: %w", err)
		}

		c.skipSpace()
		if c.eof() || c.peek() != ':' {
			return task, diags, fmt.Errorf("expected ':' after key %q", key)
		}
		c.pos++
		c.skipSpace()

		var (
			strVal string
			numVal int64
			quoted bool
		)
		if !c.eof() && c.peek() == '"' {
			quoted = true
			strVal, err = c.readQuoted()
			if err != nil {
				return task, diags, fmt.Errorf("reading value for key %q: %w", key, err)
			}
		} else {
			numVal, err = c.readInt()
			if err != nil {
				return task, diags, fmt.Errorf("reading value for key %q: %w", key, err)
			}
		}

		switch key {
		case "id":
			if quoted {
				return task, diags, fmt.Errorf("expected numeric value for key \"id\", got %q", strVal)
			}
			task.ID = numVal
		case "description":
			if !quoted {
				return task, diags, fmt.Errorf("expected quoted value for key %q", key)
			}
			task.Description = strVal
		case "status":
			if !quoted {
				return task, diags, fmt.Errorf("expected quoted value for key %q", key)
			}
			task.Status = domain.ParseStatus(strVal)
		case "createdAt", "updatedAt":
			if !quoted {
				return task, diags, fmt.Errorf("expected quoted value for key %q", key)
			}
			ts, tsErr := ParseTimestamp(strVal)
			if tsErr != nil {
				diags = append(diags, recordDiag(fmt.Sprintf("failed to parse timestamp %q for key %q; using epoch", strVal, key)))
			}
			if key == "createdAt" {
				task.CreatedAt = ts
			} else {
				task.UpdatedAt = ts
			}
		default:
			// Unknown keys are consumed and ignored so newer files
			// still load.
			diags = append(diags, recordDiag(fmt.Sprintf("unknown key %q in task object", key)))
		}

		c.skipSpace()
		if c.eof() {
			return task, diags, fmt.Errorf("unexpected end of task object after value for key %q", key)
		}
		switch c.peek() {
		case ',':
			c.pos++
			c.skipSpace()
		case '}':
			// Loop condition terminates on the next iteration.
		default:
			return task, diags, fmt.Errorf("expected ',' or '}' after value for key %q, got %q", key, string(c.peek()))
		}
	}

	return task, diags, nil
}
