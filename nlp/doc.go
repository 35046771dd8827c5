// Copyright 2025 Poiesic Systems
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



// Package nlp provides abstractions for the language tools used in lingcomp.
//
// The feature extractor never talks to a concrete library. It depends on the
// interfaces here, which are constructed once at startup and injected:
//
//   - Tagger: tokens, part-of-speech, dependency labels and named entities
//   - SentimentScorer: compound polarity in [-1, 1]
//   - ReadabilityScorer: Flesch reading ease
//   - Toolkit: aggregates the three for convenient wiring
//
// # Implementation Packages
//
//   - nlp/prose: Tagger built on prose (tokens, tags, entities) and when (dates and times)
//   - nlp/vader: SentimentScorer built on govader
//   - nlp/readability: ReadabilityScorer implementing the Flesch formula
//   - nlp/english: the default English Toolkit combining the above
//   - nlp/mock: scriptable test doubles
//
// # Usage Example
//
//	toolkit, err := english.NewToolkit()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer toolkit.Close()
//
//	doc, err := toolkit.Tagger().Tag(ctx, "Let's go tomorrow morning")
package nlp
