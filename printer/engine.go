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

package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/mznbuild/mzncompile/dom"
	"github.com/mznbuild/mzncompile/internal/ext/slicesx"
)

// ErrMalformedDocument is reported when the layout engine encounters a
// document that is none of the three variants.
var ErrMalformedDocument = errors.New("printer: malformed document")

// line is one rendered line: an indentation column and the text chunks
// appended to it. length caches the total width of the chunks.
type line struct {
	indentation int
	length      int
	text        []string
}

// spaceLeft returns the width budget remaining on this line.
func (l *line) spaceLeft(maxWidth int) int {
	return maxWidth - l.length - l.indentation
}

func (l *line) addString(s string) {
	l.length += stringWidth(s)
	l.text = append(l.text, s)
}

// concatenate joins the chunks of o onto this line.
func (l *line) concatenate(o *line) {
	l.text = append(l.text, o.text...)
	l.length += o.length
}

// stringWidth is the rendered width of a text chunk in display columns.
func stringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// engine is the layout engine. It accumulates items, each an ordered
// sequence of lines, while walking document trees, and runs the
// simplification pass per item.
type engine struct {
	maxWidth        int
	indentationBase int
	simp            bool
	deeplySimp      bool

	currentItem int
	currentLine int

	items         [][]line
	toSimplify    []ledger
	notToSimplify []ledger
}

func newEngine(opts Options) *engine {
	return &engine{
		maxWidth:        opts.MaxWidth,
		indentationBase: opts.IndentationBase,
		simp:            !opts.DisableSimplify,
		deeplySimp:      !opts.DisableDeepSimplify,
		currentItem:     -1,
		currentLine:     -1,
	}
}

// reset drops all accumulated state so the engine can serve another call.
func (e *engine) reset() {
	e.currentItem = -1
	e.currentLine = -1
	e.items = nil
	e.toSimplify = nil
	e.notToSimplify = nil
}

// printRoot renders one document as a fresh item.
func (e *engine) printRoot(d dom.Doc) error {
	e.addItem()
	e.addLine(0)
	if err := e.printDoc(d, true, 0, "", ""); err != nil {
		return err
	}
	if e.simp {
		e.simplifyItem(e.currentItem)
	}
	return nil
}

func (e *engine) addItem() {
	e.items = append(e.items, nil)
	e.toSimplify = append(e.toSimplify, ledger{})
	e.notToSimplify = append(e.notToSimplify, ledger{})
	e.currentItem++
	e.currentLine = -1
}

func (e *engine) addLine(indentation int) {
	e.items[e.currentItem] = append(e.items[e.currentItem], line{indentation: indentation})
	e.currentLine++
}

// addBreakLine starts the line opened by a break, recording it in the
// simplification ledgers when break recording is on.
func (e *engine) addBreakLine(indentation int, simplifiable bool, level int) {
	e.addLine(indentation)
	if e.deeplySimp {
		e.toSimplify[e.currentItem].add(level, e.currentLine)
		if !simplifiable {
			e.notToSimplify[e.currentItem].add(0, e.currentLine)
		}
	}
}

func (e *engine) curLine() *line {
	return slicesx.GetPointer(e.items[e.currentItem], e.currentLine)
}

// printDoc emits one document, with before prepended to its first chunk
// and after appended to its last.
func (e *engine) printDoc(d dom.Doc, alignment bool, alignmentCol int, before, after string) error {
	switch d := d.(type) {
	case *dom.List:
		return e.printList(d, alignmentCol, before, after)
	case *dom.Text:
		e.printString(before+d.Text()+after, alignment, alignmentCol)
		return nil
	case *dom.Break:
		e.printString(before, alignment, alignmentCol)
		e.addBreakLine(alignmentCol, !d.DontSimplify(), d.Level())
		e.printString(after, alignment, alignmentCol)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrMalformedDocument, d)
	}
}

// printString appends s to the current line if it fits the remaining
// space, else opens a new line. The new line sits at the alignment column
// when the string fits within the width budget there, and at the
// indentation base otherwise.
func (e *engine) printString(s string, alignment bool, alignmentCol int) {
	l := e.curLine()
	w := stringWidth(s)
	if w <= l.spaceLeft(e.maxWidth) {
		l.addString(s)
		return
	}
	col := e.indentationBase
	if alignment && e.maxWidth-alignmentCol >= w {
		col = alignmentCol
	}
	e.addLine(col)
	e.curLine().addString(s)
}

// printList walks the children of a list, threading the frame tokens and
// separator through the before/after strings of the children.
func (e *engine) printList(d *dom.List, alignmentCol int, superBefore, superAfter string) error {
	docs := d.Docs()
	begin, sep, end := d.Begin(), d.Separator(), d.End()
	aligned := d.Aligned()

	if d.Unbreakable() {
		e.addLine(alignmentCol)
	}

	cur := e.curLine()
	currentCol := cur.indentation + cur.length
	newAlignmentCol := alignmentCol
	if aligned {
		newAlignmentCol = currentCol + stringWidth(begin)
	}

	// The last child that is not a break is the last one that still emits
	// a separator to its right. A list of only breaks has none.
	lastVisible := -1
	for i, sub := range docs {
		if _, isBreak := sub.(*dom.Break); !isBreak {
			lastVisible = i
		}
	}

	if len(docs) == 0 {
		e.printString(superBefore+begin+end+superAfter, true, newAlignmentCol)
	}

	for i, sub := range docs {
		_, isBreak := sub.(*dom.Break)
		if isBreak && !aligned {
			newAlignmentCol += e.indentationBase
		}

		var before, after string
		if i == 0 {
			before = superBefore + begin
		}
		switch {
		case i == len(docs)-1:
			after = end + superAfter
		case !isBreak && lastVisible > i:
			after = sep
		}

		if err := e.printDoc(sub, aligned, newAlignmentCol, before, after); err != nil {
			return err
		}
	}

	if d.Unbreakable() {
		e.simplify(e.currentItem, e.currentLine, nil)
	}
	return nil
}

// simplifyItem runs the priority pass over one item: excluded lines are
// subtracted, the remaining candidates are flattened deepest-first, and
// candidates are joined until one fails.
func (e *engine) simplifyItem(item int) {
	e.toSimplify[item].subtract(&e.notToSimplify[item])
	vec := e.toSimplify[item].flatten()
	for len(vec) > 0 {
		if !e.simplify(item, vec[0], &vec) {
			break
		}
	}
}

// simplify tries to join line ln of item onto its predecessor. On failure
// the candidate and everything depending on it leave the ledger.
func (e *engine) simplify(item, ln int, vec *[]int) bool {
	if ln == 0 {
		e.toSimplify[item].remove(vec, ln, false)
		return false
	}
	lines := e.items[item]
	cand := slicesx.GetPointer(lines, ln)
	prev := slicesx.GetPointer(lines, ln-1)
	if cand.length > prev.spaceLeft(e.maxWidth) {
		e.toSimplify[item].remove(vec, ln, false)
		return false
	}

	e.toSimplify[item].remove(vec, ln, true)
	prev.concatenate(cand)
	e.items[item] = append(lines[:ln], lines[ln+1:]...)
	e.toSimplify[item].decrement(vec, ln)
	e.currentLine--
	return true
}

// flush writes every accumulated item to w, one text line per engine line.
func (e *engine) flush(w io.Writer) error {
	var out strings.Builder
	for _, item := range e.items {
		for _, l := range item {
			for i := 0; i < l.indentation; i++ {
				out.WriteByte(' ')
			}
			for _, s := range l.text {
				out.WriteString(s)
			}
			out.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, out.String())
	return err
}
