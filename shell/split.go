/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package shell

// DefaultArgCap is ARG_CAP's default value: the maximum number of
// tokens Split will return before failing.
const DefaultArgCap = 32

// Split tokenizes line the way the line editor's execute_line does:
// whitespace-separated tokens, double-quoted regions preserving
// embedded whitespace, and a backslash inside a quoted region escaping
// the following byte literally (so `"a\"b"` tokenizes to `a"b`).
//
// Returns ErrUnbalancedQuote if a quote is opened and never closed, and
// ErrTooManyArgs if more than argCap tokens would result. argCap <= 0
// uses DefaultArgCap.
func Split(line string, argCap int) ([]string, error) {
	if argCap <= 0 {
		argCap = DefaultArgCap
	}

	var (
		args    []string
		cur     []byte
		inQuote bool
		haveCur bool
	)

	flush := func() error {
		if !haveCur {
			return nil
		}
		if len(args) >= argCap {
			return ErrTooManyArgs
		}
		args = append(args, string(cur))
		cur = cur[:0]
		haveCur = false
		return nil
	}

	i := 0
	for i < len(line) {
		b := line[i]

		switch {
		case inQuote && b == '\\' && i+1 < len(line):
			cur = append(cur, line[i+1])
			haveCur = true
			i += 2
			continue

		case b == '"':
			inQuote = !inQuote
			haveCur = true
			i++
			continue

		case !inQuote && (b == ' ' || b == '\t'):
			if err := flush(); err != nil {
				return nil, err
			}
			i++
			continue

		default:
			cur = append(cur, b)
			haveCur = true
			i++
		}
	}

	if inQuote {
		return nil, ErrUnbalancedQuote
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return args, nil
}
