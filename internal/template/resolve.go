package template

import "strings"

// aggregateToken names the token replaced by all arguments joined with
// single spaces. It appears in templates as $ARGUMENTS.
const aggregateToken = "ARGUMENTS"

// Resolve parses src as a chat template and substitutes args into its
// body. It returns no partial output: any parse failure is terminal.
func Resolve(src string, args []string) (string, error) {
	tmpl, err := Parse(src)
	if err != nil {
		return "", err
	}
	return tmpl.Render(args), nil
}

// Render substitutes args into the template body and trims the result.
//
// Two token forms are recognized in a single left-to-right pass:
//
//   - $ARGUMENTS: all arguments joined with single spaces
//   - $N (decimal, 1-based): the N-th argument
//
// A positional token covers the maximal digit run after the $, so $10
// is one token and a replacement for $1 can never clip it. Positions
// without a matching argument, and $0, stay literal. Tokens inside
// substituted values are not rescanned.
func (t *Template) Render(args []string) string {
	body := t.Body
	var out strings.Builder
	out.Grow(len(body))

	for i := 0; i < len(body); {
		if body[i] != '$' {
			out.WriteByte(body[i])
			i++
			continue
		}

		rest := body[i+1:]
		if strings.HasPrefix(rest, aggregateToken) {
			out.WriteString(strings.Join(args, " "))
			i += 1 + len(aggregateToken)
			continue
		}

		if n, width := leadingNumber(rest); width > 0 && n >= 1 && n <= len(args) {
			out.WriteString(args[n-1])
			i += 1 + width
			continue
		}

		out.WriteByte('$')
		i++
	}

	return strings.TrimSpace(out.String())
}

// leadingNumber parses the decimal digit run at the start of s.
// Width is the number of bytes consumed; zero means no digits. The
// value saturates far above any plausible argument count so an absurdly
// long run still compares as out of range.
func leadingNumber(s string) (value, width int) {
	for width < len(s) && s[width] >= '0' && s[width] <= '9' {
		if value < 1<<20 {
			value = value*10 + int(s[width]-'0')
		}
		width++
	}
	return value, width
}
