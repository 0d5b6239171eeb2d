/*
Package segment splits paragraphs into sentences.

Under active development; use at your own risk

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


Typical Usage

For a single paragraph, clients create a Paragraph and ask it for its
sentences and for the whitespace separating them:

  p := segment.NewParagraph("Hi, I'm the first sentence. I'm the second.", false)
  sentences := p.Split()   // ["Hi, I'm the first sentence.", "I'm the second."]
  spaces := p.Spaces()     // [" "]

The second argument tells if the script of the paragraph omits spaces between
sentences, as Chinese and Japanese do.

For longer texts, Segmenter provides an interface similar to bufio.Scanner.
It reads from an io.RuneReader, cuts the input into paragraphs at blank lines
and returns sentence after sentence:

  segmenter := segment.NewSegmenter(false)
  segmenter.Init(strings.NewReader(text))
  for segmenter.Next() {
    // do something with segmenter.Text() and segmenter.Space()
  }

How it works

Scan moves through a paragraph rune by rune. Every rune is first shown to an
enclosure tracker, which follows the nesting of quotes and parentheses. Each
terminator rune outside of enclosures is a candidate for a sentence boundary
and a classifier computes a penalty for breaking after it (see package
boundary). A boundary closes the current sentence, and the run of whitespace
following it is the separator to the next sentence.

MergeShort then folds sentences of a display width below a minimum into their
successors, as these are most probably false positives. Separators finally
extracts the whitespace between the resulting sentences. */
package segment

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
