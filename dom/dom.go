// Copyright 2023-2026 The mzncompile Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dom defines the layout document tree that sits between the AST
// mappers and the layout engine.
//
// A document is one of three variants: [Text] is literal output, [Break] is
// a candidate line break, and [List] is a framed, separated sequence of
// child documents. The layout engine walks the tree and decides which
// breaks survive in the rendered output.
//
// Every document carries a level, one more than its parent's; the root sits
// at level zero. The level of a break doubles as its priority in the
// engine's simplification pass: the deeper a break was created, the sooner
// the engine tries to fold the line it opened back into its predecessor.
//
// A document must be appended to at most one list. Appending assigns the
// child's level from its new parent, re-propagating through any list
// subtree, so trees may be composed bottom-up in any order.
package dom

// Doc is a node of the document tree: a [Text], [Break], or [List].
type Doc interface {
	// Level returns the node's depth. The root is at level zero.
	Level() int

	setLevel(level int)
}

// node carries the level shared by all variants.
type node struct {
	level int
}

func (n *node) Level() int { return n.level }

// Text is a literal string to emit.
type Text struct {
	node
	text string
}

// NewText returns a new text document.
func NewText(text string) *Text {
	return &Text{text: text}
}

// Text returns the literal string.
func (t *Text) Text() string { return t.text }

func (t *Text) setLevel(level int) { t.level = level }

// Break is a candidate line break.
//
// A break whose do-not-simplify flag is set opens a line that the engine's
// priority pass must not join into the previous line. The line may still be
// collapsed by the unbreakable rule of a containing list.
type Break struct {
	node
	dontSimplify bool
}

// NewBreak returns a new break. dontSimplify excludes the resulting line
// from the simplification pass.
func NewBreak(dontSimplify bool) *Break {
	return &Break{dontSimplify: dontSimplify}
}

// DontSimplify reports whether the break's line is excluded from the
// simplification pass.
func (b *Break) DontSimplify() bool { return b.dontSimplify }

func (b *Break) setLevel(level int) { b.level = level }

// List is an ordered sequence of child documents, framed by a begin and end
// token, with a separator emitted between visible children.
//
// An aligned list indents wrapped children to the column after its begin
// token. An unaligned list instead steps the indentation outward by the
// engine's indentation base at each break it contains.
type List struct {
	node
	docs []Doc

	begin, sep, end string

	aligned     bool
	unbreakable bool
}

// NewList returns a new aligned list.
func NewList(begin, sep, end string) *List {
	return &List{begin: begin, sep: sep, end: end, aligned: true}
}

// NewUnalignedList returns a new list with alignment off.
func NewUnalignedList(begin, sep, end string) *List {
	return &List{begin: begin, sep: sep, end: end}
}

// Append appends child documents, adopting each into this list.
func (l *List) Append(docs ...Doc) {
	for _, d := range docs {
		l.docs = append(l.docs, d)
		d.setLevel(l.level + 1)
	}
}

// AppendText appends a [Text] child.
func (l *List) AppendText(text string) {
	l.Append(NewText(text))
}

// AppendBreak appends a [Break] child.
func (l *List) AppendBreak(dontSimplify bool) {
	l.Append(NewBreak(dontSimplify))
}

// Docs returns the child documents. The returned slice is owned by the
// list; callers must not modify it.
func (l *List) Docs() []Doc { return l.docs }

// Begin returns the opening frame token.
func (l *List) Begin() string { return l.begin }

// Separator returns the separator emitted between visible children.
func (l *List) Separator() string { return l.sep }

// End returns the closing frame token.
func (l *List) End() string { return l.end }

// Aligned reports whether wrapped children align to the column after the
// begin token.
func (l *List) Aligned() bool { return l.aligned }

// SetUnbreakable marks the list as unbreakable. The engine renders an
// unbreakable list onto a fresh line and then tries to collapse it back
// onto the previous one.
func (l *List) SetUnbreakable(unbreakable bool) {
	l.unbreakable = unbreakable
}

// Unbreakable reports whether the list is unbreakable.
func (l *List) Unbreakable() bool { return l.unbreakable }

// setLevel re-propagates levels through the subtree.
func (l *List) setLevel(level int) {
	l.level = level
	for _, d := range l.docs {
		d.setLevel(level + 1)
	}
}
