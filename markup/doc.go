// Package markup parses the richtext inline markup language.
//
// The language is a small BBCode dialect:
//
//	[b]bold[/b] [i]italic[/i] [u]underline[/u] [s]strike[/s]
//	[font_family=Go Mono]code[/font_family]
//	[size=24]big[/size]
//	[color=ff0000]red[/color] [color=#00ff0080]translucent green[/color]
//	[ref=link]clickable[/ref] [anchor=here]
//
// Literal brackets and ampersands are written as &bl; (for "["), &br;
// (for "]") and &amp; (for "&"). Escape produces that form from plain text.
//
// Style tags are toggles on a single accumulator, not a stack: a nested
// [b]..[b]..[/b] leaves bold off after the first [/b]. Unknown tags are
// dropped without changing the style, and a "[" without a closing "]" is
// kept as literal text.
//
// ParseSimple returns styled segments only. ParseWithRefs additionally
// records reference spans and anchors as character offsets into the
// tag-stripped text.
package markup
