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

// Autocomplete scans every entry of sh whose name begins with prefix
// and returns (match, count):
//   - count == 0: match is "".
//   - count == 1: match is the one full matching name.
//   - count  > 1: match is the longest common prefix across every
//     matching name (which may equal prefix itself).
func Autocomplete(sh Shell, prefix string) (string, int) {
	matches := sh.Complete(prefix)

	switch len(matches) {
	case 0:
		return "", 0
	case 1:
		return matches[0], 1
	default:
		return longestCommonPrefix(matches), len(matches)
	}
}

func longestCommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}

	lcp := names[0]
	for _, n := range names[1:] {
		lcp = commonPrefix(lcp, n)
		if lcp == "" {
			break
		}
	}
	return lcp
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
