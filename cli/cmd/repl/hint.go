package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Styles for argument slot hints.
var (
	hintTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	currentSlotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// argHint describes the slot layout of an open construct: the text leading
// up to the first slot, the slot placeholder names, and the separator that
// follows each slot. A trailing "..." placeholder marks a variadic slot.
type argHint struct {
	lead   string
	params []string
	seps   []string
}

// slotContext reports the construct enclosing the cursor and the index of
// the slot being typed.
type slotContext struct {
	hint     argHint
	slotIdx  int
	inConstr bool
}

// detectSlot analyzes the input to determine whether the cursor sits inside
// an open construct with argument slots: a function call, a fraction, a
// braced exponent, a grouping, a vector, or a matrix. The innermost
// unclosed delimiter decides the construct.
func detectSlot(input string, cursor int) slotContext {
	if cursor > len(input) {
		cursor = len(input)
	}

	opener, openPos := findOpenDelimiter(input, cursor)
	if openPos == -1 {
		return slotContext{}
	}

	switch opener {
	case '(':
		return detectParenSlot(input, openPos, cursor)

	case '{':
		return detectBraceSlot(input, openPos, cursor)

	case '<':
		return slotContext{
			hint: argHint{
				lead:   "<",
				params: []string{"element", "..."},
				seps:   []string{", ", ">"},
			},
			slotIdx:  countSlots(input, openPos+1, cursor, true),
			inConstr: true,
		}

	case '[':
		return slotContext{
			hint: argHint{
				lead:   "[",
				params: []string{"element", "..."},
				seps:   []string{", ", "; ...]"},
			},
			slotIdx:  countSlots(input, openPos+1, cursor, true),
			inConstr: true,
		}
	}

	return slotContext{}
}

// findOpenDelimiter scans backward from the cursor for the innermost
// delimiter that has not been closed. Each delimiter kind is balanced
// independently.
func findOpenDelimiter(input string, cursor int) (opener byte, pos int) {
	var depth [4]int // ( { < [

	idx := func(b byte) int {
		switch b {
		case '(', ')':
			return 0
		case '{', '}':
			return 1
		case '<', '>':
			return 2
		default:
			return 3
		}
	}

	for i := cursor - 1; i >= 0; i-- {
		switch c := input[i]; c {
		case ')', '}', '>', ']':
			depth[idx(c)]++

		case '(', '{', '<', '[':
			if depth[idx(c)] == 0 {
				return c, i
			}

			depth[idx(c)]--
		}
	}

	return 0, -1
}

// detectParenSlot classifies an unclosed paren as a grouping or a function
// call argument list, based on the text immediately before it.
func detectParenSlot(input string, openPos, cursor int) slotContext {
	// A "\left(" opener is a grouping with a single expression slot.
	if strings.HasSuffix(input[:openPos], `\left`) {
		return slotContext{
			hint: argHint{
				lead:   `\left(`,
				params: []string{"expression"},
				seps:   []string{`\right)`},
			},
			inConstr: true,
		}
	}

	name := nameBefore(input, openPos)
	if name == "" {
		// Bare grouping paren.
		return slotContext{
			hint: argHint{
				lead:   "(",
				params: []string{"expression"},
				seps:   []string{")"},
			},
			inConstr: true,
		}
	}

	return slotContext{
		hint: argHint{
			lead:   name + "(",
			params: []string{"argument", "..."},
			seps:   []string{", ", ")"},
		},
		slotIdx:  countSlots(input, openPos+1, cursor, false),
		inConstr: true,
	}
}

// detectBraceSlot classifies an unclosed brace as a fraction slot, an
// exponent, or a bare group.
func detectBraceSlot(input string, openPos, cursor int) slotContext {
	fracHint := argHint{
		lead:   `\frac{`,
		params: []string{"numerator", "denominator"},
		seps:   []string{"}{", "}"},
	}

	before := strings.TrimRight(input[:openPos], " \t")

	// First fraction slot: "\frac{" with the cursor inside the first group.
	if strings.HasSuffix(before, `\frac`) {
		return slotContext{hint: fracHint, inConstr: true}
	}

	// Second fraction slot: "\frac{...}{" with a balanced first group.
	if strings.HasSuffix(before, "}") {
		if start := matchingBrace(before, len(before)-1); start != -1 {
			head := strings.TrimRight(before[:start], " \t")
			if strings.HasSuffix(head, `\frac`) {
				return slotContext{hint: fracHint, slotIdx: 1, inConstr: true}
			}
		}
	}

	// Exponent group: "^{".
	if strings.HasSuffix(before, "^") {
		return slotContext{
			hint: argHint{
				lead:   "^{",
				params: []string{"exponent"},
				seps:   []string{"}"},
			},
			inConstr: true,
		}
	}

	// Bare brace group.
	return slotContext{
		hint: argHint{
			lead:   "{",
			params: []string{"expression"},
			seps:   []string{"}"},
		},
		inConstr: true,
	}
}

// matchingBrace returns the index of the '{' matching the '}' at close, or
// -1 when unbalanced.
func matchingBrace(input string, close int) int {
	depth := 0

	for i := close; i >= 0; i-- {
		switch input[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// countSlots counts separators at delimiter depth zero between start and the
// cursor to determine the current slot index. When rows is true, a semicolon
// resets the count the way a matrix row separator does.
func countSlots(input string, start, cursor int, rows bool) int {
	slot := 0
	depth := 0

	for i := start; i < cursor && i < len(input); i++ {
		switch input[i] {
		case '(', '{', '<', '[':
			depth++
		case ')', '}', '>', ']':
			depth--
		case ',':
			if depth == 0 {
				slot++
			}
		case ';':
			if rows && depth == 0 {
				slot = 0
			}
		}
	}

	return slot
}

// nameBefore extracts the function name immediately preceding the paren at
// openPos, including an optional leading backslash. Returns "" when the
// preceding text is not a name.
func nameBefore(input string, openPos int) string {
	end := openPos
	start := openPos

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		start -= size
	}

	if start == end {
		return ""
	}

	// Include the macro backslash so "\arc(" hints the same as "arc(".
	if start > 0 && input[start-1] == '\\' {
		start--
	}

	return input[start:end]
}

// renderSlotHint renders the construct layout with the current slot
// highlighted. A variadic "..." slot stays highlighted for every index at or
// beyond its position.
func renderSlotHint(hint argHint, slotIdx int) string {
	var b strings.Builder

	b.WriteString(hintNameStyle.Render(hint.lead))

	for i, param := range hint.params {
		variadic := param == "..."

		if (variadic && slotIdx >= i) || (!variadic && slotIdx == i) {
			b.WriteString(currentSlotStyle.Render(param))
		} else {
			b.WriteString(hintTextStyle.Render(param))
		}

		if i < len(hint.seps) {
			b.WriteString(hintTextStyle.Render(hint.seps[i]))
		}
	}

	return b.String()
}
