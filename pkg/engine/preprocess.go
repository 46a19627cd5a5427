package engine

import "strings"

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites kernel script source into something zygomys
// reads:
//
//   - :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global symbols and never collide with user variables.
//   - kebab-case identifiers become snake_case (empty-box -> empty_box);
//     zygomys reads a hyphen as the minus operator.
//   - ; line comments become // comments.
//
// String literals are copied untouched.
func preprocessSource(source string) string {
	p := preprocessor{src: source}
	p.out.Grow(len(source) + len(source)/4)
	for p.i < len(p.src) {
		switch c := p.src[p.i]; {
		case c == '"':
			p.copyQuoted('"', true)
		case c == '`':
			p.copyQuoted('`', false)
		case c == ';':
			p.convertComment()
		case c == ':' && p.i+1 < len(p.src) && p.src[p.i+1] == '=':
			// := is assignment, not a keyword.
			p.out.WriteString(":=")
			p.i += 2
		case c == ':' && p.i+1 < len(p.src) && isLetter(p.src[p.i+1]):
			p.convertKeyword()
		case c == '-' && p.i > 0 && p.i+1 < len(p.src) &&
			isIdentChar(p.src[p.i-1]) && isLetter(p.src[p.i+1]):
			p.out.WriteByte('_')
			p.i++
		default:
			p.out.WriteByte(c)
			p.i++
		}
	}
	return p.out.String()
}

type preprocessor struct {
	src string
	i   int
	out strings.Builder
}

// copyQuoted copies a literal delimited by quote, honoring backslash
// escapes when escapes is set.
func (p *preprocessor) copyQuoted(quote byte, escapes bool) {
	p.out.WriteByte(quote)
	p.i++
	for p.i < len(p.src) && p.src[p.i] != quote {
		if escapes && p.src[p.i] == '\\' && p.i+1 < len(p.src) {
			p.out.WriteString(p.src[p.i : p.i+2])
			p.i += 2
			continue
		}
		p.out.WriteByte(p.src[p.i])
		p.i++
	}
	if p.i < len(p.src) {
		p.out.WriteByte(quote)
		p.i++
	}
}

// convertComment turns a run of ; into // and copies the rest of the line.
func (p *preprocessor) convertComment() {
	p.out.WriteString("//")
	for p.i < len(p.src) && p.src[p.i] == ';' {
		p.i++
	}
	end := strings.IndexByte(p.src[p.i:], '\n')
	if end < 0 {
		end = len(p.src) - p.i
	}
	p.out.WriteString(p.src[p.i : p.i+end])
	p.i += end
}

func (p *preprocessor) convertKeyword() {
	j := p.i + 1
	for j < len(p.src) && isKWChar(p.src[j]) {
		j++
	}
	p.out.WriteByte('"')
	p.out.WriteString(kwPrefix)
	p.out.WriteString(p.src[p.i+1 : j])
	p.out.WriteByte('"')
	p.i = j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isIdentChar(c) || c == '-'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
