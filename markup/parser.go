package markup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/richtext/internal/logging"
)

// Tag names and prefixes of the markup language.
const (
	tagFamily    = "font_family="
	tagFamilyEnd = "/font_family"
	tagSize      = "size="
	tagSizeEnd   = "/size"
	tagColor     = "color="
	tagColorEnd  = "/color"
	tagRef       = "ref="
	tagRefEnd    = "/ref"
	tagAnchor    = "anchor="
)

// parser holds the scanning state shared by ParseSimple and ParseWithRefs.
type parser struct {
	cur      Style
	buf      strings.Builder
	segments []Segment
}

func newParser() *parser {
	return &parser{cur: DefaultStyle()}
}

// flush moves the pending literal text into a segment carrying the
// current (pre-change) style.
func (p *parser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.segments = append(p.segments, Segment{Text: Unescape(p.buf.String()), Style: p.cur})
	p.buf.Reset()
}

// applyStyle applies a style tag to the accumulator. Unknown tags are
// ignored. pos is the byte offset of the tag's opening bracket.
func (p *parser) applyStyle(tag string, pos int) error {
	switch tag {
	case "b":
		p.cur.Bold = true
	case "/b":
		p.cur.Bold = false
	case "i":
		p.cur.Italic = true
	case "/i":
		p.cur.Italic = false
	case "u":
		p.cur.Underline = true
	case "/u":
		p.cur.Underline = false
	case "s":
		p.cur.Strikethrough = true
	case "/s":
		p.cur.Strikethrough = false
	case tagFamilyEnd:
		p.cur.FontFamily = ""
	case tagSizeEnd:
		p.cur.FontSize = NoSize
	case tagColorEnd:
		p.cur.HasColor = false
	default:
		switch {
		case strings.HasPrefix(tag, tagFamily):
			p.cur.FontFamily = tag[len(tagFamily):]
		case strings.HasPrefix(tag, tagSize):
			n, err := strconv.Atoi(tag[len(tagSize):])
			if err != nil {
				return &TagError{Tag: tag, Pos: pos, Err: fmt.Errorf("%w: %w", ErrInvalidSize, err)}
			}
			p.cur.FontSize = n
		case strings.HasPrefix(tag, tagColor):
			value := tag[len(tagColor):]
			c, ok := ParseColor(value)
			if !ok {
				logging.Logger().Warn("markup: invalid color, using white",
					"value", value, "pos", pos)
			}
			p.cur.Color = c
			p.cur.HasColor = true
		}
	}
	return nil
}

// ParseSimple splits markup into styled segments.
//
// Literal text is flushed as soon as a '[' is met, so an unterminated
// bracket starts a new segment of its own. Only a malformed [size=N]
// value produces an error.
func ParseSimple(markup string) ([]Segment, error) {
	p := newParser()

	i := 0
	for i < len(markup) {
		if markup[i] != '[' {
			p.buf.WriteByte(markup[i])
			i++
			continue
		}

		p.flush()
		end := strings.IndexByte(markup[i+1:], ']')
		if end < 0 {
			p.buf.WriteByte('[')
			i++
			continue
		}
		end += i + 1

		if err := p.applyStyle(markup[i+1:end], i); err != nil {
			return nil, err
		}
		i = end + 1
	}
	p.flush()

	return p.segments, nil
}

// ParseWithRefs splits markup into styled segments and records references
// and anchors.
//
// Offsets count the literal characters (runes) scanned so far, before
// un-escaping: "&amp;" advances the offset by five. Tags never advance it.
//
// References do not nest. Opening a reference while another is open ends
// the open one at the new start; [/ref] closes the open one, and is a
// no-op when none is open. A reference still open at the end of the
// markup ends there.
func ParseWithRefs(markup string) (*Result, error) {
	p := newParser()
	res := &Result{}

	pos := 0
	active := -1

	i := 0
	for i < len(markup) {
		c := markup[i]
		if c == '[' {
			end := strings.IndexByte(markup[i+1:], ']')
			if end >= 0 {
				end += i + 1
				p.flush()

				tag := markup[i+1 : end]
				switch {
				case strings.HasPrefix(tag, tagRef):
					if active >= 0 {
						res.Refs[active].End = pos
					}
					res.Refs = append(res.Refs, Ref{Name: tag[len(tagRef):], Start: pos, End: pos})
					active = len(res.Refs) - 1
				case tag == tagRefEnd:
					if active >= 0 {
						res.Refs[active].End = pos
						active = -1
					}
				case strings.HasPrefix(tag, tagAnchor):
					res.Anchors = append(res.Anchors, Anchor{Name: tag[len(tagAnchor):], Offset: pos})
				default:
					if err := p.applyStyle(tag, i); err != nil {
						return nil, err
					}
				}

				i = end + 1
				continue
			}
		}

		// Invalid bytes count as one character each, as when ranging
		// over the string.
		_, size := utf8.DecodeRuneInString(markup[i:])
		p.buf.WriteString(markup[i : i+size])
		pos++
		i += size
	}
	p.flush()

	if active >= 0 {
		res.Refs[active].End = pos
	}
	res.Segments = p.segments
	res.Length = pos

	return res, nil
}

// PlainText returns markup with all tags removed and escapes decoded.
func PlainText(markup string) (string, error) {
	segs, err := ParseSimple(markup)
	if err != nil {
		return "", err
	}
	return joinSegments(segs), nil
}

func joinSegments(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
