/*
Package parasplit is about splitting paragraphs of natural language text into
sentences.

Description

A paragraph is broken up into sentences by looking at punctuation which may
end a sentence in some script, called terminators. Most scripts use a full
stop, an exclamation mark or a question mark, some use ideographic or
script-specific variants of them (。！？؟). Unfortunately, the period (U+002E
FULL STOP) is used ambiguously, sometimes for end-of-sentence purposes,
sometimes for abbreviations, and sometimes for numbers. Quotations and
parenthesized text may contain complete sentences without ending the sentence
they are embedded in.

We therefore perform segmenting based on rules. Every terminator found in a
paragraph is a candidate for a sentence boundary, and a set of heuristics
decides if the candidate is accepted. These are heuristics, not grammar: false
positives and false negatives are an accepted trade-off for covering many
scripts with one small rule set.

Some scripts, most notably Chinese and Japanese, do not put whitespace between
sentences. Clients have to tell the segmenter about the spacing convention of
a paragraph; the segmenter will not try to guess the language of a text.

Contents

Base package parasplit provides the types shared between the segmenting
components: candidates for sentence boundaries, spans of text, and the
interfaces of boundary classifiers and enclosure trackers.
The driver sits in sub-package segment and will use the classifier of
sub-package boundary, which in turn consults sub-packages enclosure and abbrev.
Sub-package uax11 measures the display width of sentences, which the driver
needs for merging short sentences with their successors.

Command parasplit (cmd/parasplit) splits files or standard input from the
command line and evaluates the segmenter against gold corpora.

Penalties

Classifiers do not signal boundaries with true/false, but rather with a
weighted "penalty", as is custom for breaking algorithms for Unicode text.
Classifiers in this module apply the following logic:

(1) Accepted boundaries will have a penalty/merit of -1000 (parasplit.InfiniteMerits)

(2) Vetoed boundaries will have penalty >= 1000 (parasplit.InfinitePenalty)

Custom classifiers may use any value in between. A candidate is a boundary
if and only if its penalty is negative (see IsBoundary).

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parasplit

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// We define constants for flagging boundaries as infinitely bad and
// infinitely good, respectively.
const (
	InfinitePenalty = 1000
	InfiniteMerits  = -1000
)
