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

import (
	"strconv"
	"strings"
)

// ProducerKind enumerates the producers.
type ProducerKind int

const (
	GetAllInterfaces ProducerKind = iota
	GetPrivateInterfaces
	GetInterface
)

var producerKeywords = map[ProducerKind]string{
	GetAllInterfaces:     "GetAllInterfaces",
	GetPrivateInterfaces: "GetPrivateInterfaces",
	GetInterface:         "GetInterface",
}

func (k ProducerKind) String() string {
	if s, ok := producerKeywords[k]; ok {
		return s
	}
	return "ProducerKind(" + strconv.Itoa(int(k)) + ")"
}

// HasArg reports whether the producer takes a string argument.
func (k ProducerKind) HasArg() bool {
	return k == GetInterface
}

// FilterKind enumerates the filters.
type FilterKind int

const (
	FilterIPv4 FilterKind = iota
	FilterIPv6
	FilterName
	FilterFlags
	FilterForwardable
	FilterGlobal
	FilterFirst
	FilterLast
)

var filterKeywords = map[FilterKind]string{
	FilterIPv4:        "FilterIPv4",
	FilterIPv6:        "FilterIPv6",
	FilterName:        "FilterName",
	FilterFlags:       "FilterFlags",
	FilterForwardable: "FilterForwardable",
	FilterGlobal:      "FilterGlobal",
	FilterFirst:       "FilterFirst",
	FilterLast:        "FilterLast",
}

func (k FilterKind) String() string {
	if s, ok := filterKeywords[k]; ok {
		return s
	}
	return "FilterKind(" + strconv.Itoa(int(k)) + ")"
}

// HasArg reports whether the filter takes a string argument.
func (k FilterKind) HasArg() bool {
	return k == FilterName || k == FilterFlags
}

// SortKind enumerates the sorts.
type SortKind int

const (
	SortBy SortKind = iota
)

var sortKeywords = map[SortKind]string{
	SortBy: "SortBy",
}

func (k SortKind) String() string {
	if s, ok := sortKeywords[k]; ok {
		return s
	}
	return "SortKind(" + strconv.Itoa(int(k)) + ")"
}

// HasArg reports whether the sort takes a string argument.
func (k SortKind) HasArg() bool {
	return k == SortBy
}

// Producer is the first element of a pipeline.
type Producer struct {
	Kind ProducerKind
	Arg  string
}

func (p Producer) String() string {
	return keyword(p.Kind.String(), p.Kind.HasArg(), p.Arg)
}

// Stage is a filter or a sort. Filter and Sort are the only
// implementations.
type Stage interface {
	String() string
	stage()
}

// Filter is a stage that removes bindings.
type Filter struct {
	Kind FilterKind
	Arg  string
}

func (f Filter) String() string {
	return keyword(f.Kind.String(), f.Kind.HasArg(), f.Arg)
}

func (Filter) stage() {}

// Sort is a stage that reorders bindings.
type Sort struct {
	Kind SortKind
	Arg  string
}

func (s Sort) String() string {
	return keyword(s.Kind.String(), s.Kind.HasArg(), s.Arg)
}

func (Sort) stage() {}

var (
	_ Stage = Filter{}
	_ Stage = Sort{}
)

// Pipeline is a parsed interface template. The stages are in source order.
type Pipeline struct {
	Producer Producer
	Stages   []Stage
}

// String formats the pipeline in template syntax. Parsing the result yields
// an equal pipeline.
func (p Pipeline) String() string {
	parts := make([]string, 0, len(p.Stages)+1)
	parts = append(parts, p.Producer.String())
	for _, s := range p.Stages {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " | ")
}

// Expand rewrites the shorthand producers into GetAllInterfaces followed by
// the stages they stand for. The returned pipeline always starts with
// GetAllInterfaces.
func (p Pipeline) Expand() Pipeline {
	var prefix []Stage
	switch p.Producer.Kind {
	case GetInterface:
		prefix = []Stage{Filter{Kind: FilterName, Arg: p.Producer.Arg}}
	case GetPrivateInterfaces:
		prefix = []Stage{
			Filter{Kind: FilterFlags, Arg: "up"},
			Filter{Kind: FilterForwardable},
			Sort{Kind: SortBy, Arg: "default"},
		}
	}
	stages := make([]Stage, 0, len(prefix)+len(p.Stages))
	stages = append(stages, prefix...)
	stages = append(stages, p.Stages...)
	return Pipeline{
		Producer: Producer{Kind: GetAllInterfaces},
		Stages:   stages,
	}
}

func keyword(name string, hasArg bool, arg string) string {
	if !hasArg {
		return name
	}
	return name + ` "` + arg + `"`
}
