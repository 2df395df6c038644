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
/*
Package ift evaluates interface templates.

An interface template selects and orders the IP addresses bound to the
network interfaces of the host. It consists of one producer followed by
filters and sorts, each separated by a pipe:

	GetAllInterfaces | FilterFlags "up" | FilterForwardable | SortBy "default"

Grammar:

	template := producer stage*
	stage    := '|' (filter | sort)
	producer := 'GetAllInterfaces' | 'GetPrivateInterfaces' | 'GetInterface' string
	filter   := 'FilterIPv4' | 'FilterIPv6' | 'FilterName' string |
	            'FilterFlags' string | 'FilterForwardable' | 'FilterGlobal' |
	            'FilterFirst' | 'FilterLast'
	sort     := 'SortBy' string
	string   := '"' text '"'

The grammar is defined in ift.g4, the lexer and parser are generated from
it with ANTLR. Keywords are case sensitive. Whitespace between tokens is ignored. Strings
are taken literally and cannot contain a double quote.

Producers

GetAllInterfaces yields one binding per address of every interface, in
enumeration order. GetInterface "name" is short for

	GetAllInterfaces | FilterName "name"

and GetPrivateInterfaces is short for

	GetAllInterfaces | FilterFlags "up" | FilterForwardable | SortBy "default"

Filters

FilterIPv4 and FilterIPv6 keep addresses of the respective family.
FilterName keeps addresses of the named interface. FilterFlags keeps
addresses of interfaces that are "up" or "down". FilterForwardable and
FilterGlobal classify addresses with the RFC 6890 table of package rfc.
FilterFirst and FilterLast keep at most the first or the last address.

Sorts

SortBy "default" moves the addresses of the interface holding the default
route to the front. The order is otherwise preserved.

Errors

Parse errors are *SyntaxError and match ErrSyntax. A flag or sort attribute
that is not supported fails the evaluation with ErrUnknownArgument. Failures
of the interface enumeration or the default route lookup match
ErrCollaborator and wrap the original error. Evaluation never returns
partial results.
*/
package ift
