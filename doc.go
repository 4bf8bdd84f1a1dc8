// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dictcc implements an offline bilingual dictionary store for
// dict.cc vocabulary dumps in pure Go.
//
// A dictionary lives in a single directory holding two key-value store
// files, one per translation direction:
//  1. dict_a.db stores the forward (source to target) direction.
//  2. dict_b.db stores the reverse (target to source) direction.
//
// Both stores are built together by importing a tab-separated dict.cc dump.
// Every phrase is indexed under its headword (see package headword) and all
// phrases sharing a headword are collected into a single entry (see package
// entry). The reserved key "__dictcc_lang_dir" holds the direction's
// language pair label, e.g. "DE => EN", as a plain string.
//
// Queries run against both directions and come in three forms: exact
// headword lookup, regular expression match over headwords, and
// case-insensitive full text search over entries.
//
// The on-disk entry encoding and directory layout are compatible in spirit
// with pdictcc, Michael Markert's Python replacement for RDictCC.
package dictcc
