package pdftext

import "strings"

// ScrapeText pulls the text-show operator arguments out of a decoded PDF
// content stream. Literal strings buffered since the last operator are kept
// when that operator shows text (Tj, TJ, ' or ") and dropped otherwise;
// text-positioning operators become newlines. Hex strings and CID-encoded
// fonts are not decoded.
func ScrapeText(stream string) string {
	var out strings.Builder
	var pending []string

	newline := func() {
		s := out.String()
		if s != "" && !strings.HasSuffix(s, "\n") {
			out.WriteString("\n")
		}
	}

	i := 0
	for i < len(stream) {
		c := stream[i]
		switch {
		case c == '(':
			s, next := readLiteral(stream, i)
			pending = append(pending, s)
			i = next

		case c == '<':
			i = skipHex(stream, i)

		case c == '%':
			for i < len(stream) && stream[i] != '\n' && stream[i] != '\r' {
				i++
			}

		case isOperatorStart(c):
			tok, next := readToken(stream, i)
			switch tok {
			case "Tj", "TJ", "'", "\"":
				for _, s := range pending {
					out.WriteString(s)
				}
				if len(pending) > 0 {
					out.WriteString(" ")
				}
			case "Td", "TD", "T*", "ET":
				newline()
			}
			pending = pending[:0]
			i = next

		default:
			i++
		}
	}
	return out.String()
}

func isOperatorStart(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '\'' || c == '"'
}

// readToken consumes an operator token starting at i.
func readToken(stream string, i int) (string, int) {
	start := i
	for i < len(stream) {
		c := stream[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '*' || c == '\'' || c == '"' {
			i++
			continue
		}
		break
	}
	return stream[start:i], i
}

// readLiteral consumes a PDF literal string starting at the '(' at i,
// handling nested parentheses, the standard escapes, and octal codes.
func readLiteral(stream string, i int) (string, int) {
	var b strings.Builder
	depth := 1
	i++ // past '('
	for i < len(stream) && depth > 0 {
		c := stream[i]
		switch c {
		case '\\':
			i++
			if i >= len(stream) {
				break
			}
			e := stream[i]
			switch e {
			case 'n':
				b.WriteByte('\n')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'b', 'f':
				i++
			case '(', ')', '\\':
				b.WriteByte(e)
				i++
			case '\n':
				i++ // line continuation
			case '\r':
				i++
				if i < len(stream) && stream[i] == '\n' {
					i++
				}
			default:
				if e >= '0' && e <= '7' {
					val := 0
					for n := 0; n < 3 && i < len(stream) && stream[i] >= '0' && stream[i] <= '7'; n++ {
						val = val*8 + int(stream[i]-'0')
						i++
					}
					b.WriteByte(byte(val))
				} else {
					b.WriteByte(e)
					i++
				}
			}
		case '(':
			depth++
			b.WriteByte(c)
			i++
		case ')':
			depth--
			if depth > 0 {
				b.WriteByte(c)
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i
}

// skipHex consumes a hex string or dictionary delimiter starting at i.
func skipHex(stream string, i int) int {
	if i+1 < len(stream) && stream[i+1] == '<' {
		return i + 2 // "<<" dictionary open, nothing to consume
	}
	i++
	for i < len(stream) && stream[i] != '>' {
		i++
	}
	if i < len(stream) {
		i++
	}
	return i
}
