// Copyright 2026 The ift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package ift

//go:generate antlr4 -Dlanguage=Go -package ift -listener -no-visitor ift.g4

import (
	"strings"
	"unicode/utf8"

	"github.com/antlr4-go/antlr/v4"
)

var (
	producerByToken = map[int]ProducerKind{
		iftParserGET_ALL_INTERFACES:     GetAllInterfaces,
		iftParserGET_PRIVATE_INTERFACES: GetPrivateInterfaces,
		iftParserGET_INTERFACE:          GetInterface,
	}
	filterByToken = map[int]FilterKind{
		iftParserFILTER_IPV4:        FilterIPv4,
		iftParserFILTER_IPV6:        FilterIPv6,
		iftParserFILTER_NAME:        FilterName,
		iftParserFILTER_FLAGS:       FilterFlags,
		iftParserFILTER_FORWARDABLE: FilterForwardable,
		iftParserFILTER_GLOBAL:      FilterGlobal,
		iftParserFILTER_FIRST:       FilterFirst,
		iftParserFILTER_LAST:        FilterLast,
	}
	sortByToken = map[int]SortKind{
		iftParserSORT_BY: SortBy,
	}
)

// Parse parses an interface template. The whole input must match the
// grammar, otherwise a *SyntaxError is returned.
func Parse(template string) (Pipeline, error) {
	errListener := &errorListener{
		DefaultErrorListener: antlr.NewDefaultErrorListener(),
		template:             template,
	}
	lexer := NewiftLexer(antlr.NewInputStream(template))
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(errListener)
	parser := NewiftParser(antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel))
	parser.RemoveErrorListeners()
	parser.AddErrorListener(errListener)
	tree := parser.Template()
	if errListener.err != nil {
		return Pipeline{}, errListener.err
	}
	builder := &pipelineBuilder{}
	antlr.ParseTreeWalkerDefault.Walk(builder, tree)
	return builder.pipeline, nil
}

// MustParse is like Parse but panics on error.
func MustParse(template string) Pipeline {
	pl, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return pl
}

// pipelineBuilder collects the producer and the stages while the parse tree
// is walked. It is only used on trees without syntax errors.
type pipelineBuilder struct {
	BaseiftListener
	pipeline Pipeline
}

func (b *pipelineBuilder) ExitProducer(c *ProducerContext) {
	b.pipeline.Producer = Producer{
		Kind: producerByToken[c.GetStart().GetTokenType()],
		Arg:  unquote(c.STRING()),
	}
}

func (b *pipelineBuilder) ExitFilter(c *FilterContext) {
	b.pipeline.Stages = append(b.pipeline.Stages, Filter{
		Kind: filterByToken[c.GetStart().GetTokenType()],
		Arg:  unquote(c.STRING()),
	})
}

func (b *pipelineBuilder) ExitSort(c *SortContext) {
	b.pipeline.Stages = append(b.pipeline.Stages, Sort{
		Kind: sortByToken[c.GetStart().GetTokenType()],
		Arg:  unquote(c.STRING()),
	})
}

// unquote returns the content of a STRING token, or the empty string if the
// alternative has no argument.
func unquote(n antlr.TerminalNode) string {
	if n == nil {
		return ""
	}
	s := n.GetText()
	return s[1 : len(s)-1]
}

// errorListener records the syntax error closest to the start of the
// template. The lexer runs ahead of the parser, so errors are not reported
// in input order.
type errorListener struct {
	*antlr.DefaultErrorListener
	template string
	err      *SyntaxError
}

func (l *errorListener) SyntaxError(_ antlr.Recognizer, _ interface{}, line, column int,
	msg string, _ antlr.RecognitionException) {

	pos := byteOffset(l.template, line, column)
	if l.err != nil && l.err.Pos <= pos {
		return
	}
	l.err = &SyntaxError{Pos: pos, Text: l.template[pos:], Msg: msg}
}

// byteOffset converts a 1-based line and a 0-based column counted in runes
// into a byte offset of s.
func byteOffset(s string, line, column int) int {
	pos := 0
	for ; line > 1; line-- {
		i := strings.IndexByte(s[pos:], '\n')
		if i < 0 {
			return len(s)
		}
		pos += i + 1
	}
	for ; column > 0 && pos < len(s); column-- {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}
