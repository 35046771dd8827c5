// Package mock provides test doubles for the nlp interfaces.
//
// The mocks let feature extraction be tested with scripted linguistic
// analyses instead of real models.
//
//	tagger := mock.NewMockTagger()
//	tagger.Docs["I will try"] = &nlp.Doc{Tokens: []nlp.Token{...}}
//	toolkit := mock.NewMockToolkitWithServices(tagger, mock.NewMockSentiment(), mock.NewMockReadability())
//
// # Default Behavior
//
//   - MockTagger: splits text into word and punctuation tokens, tags words
//     as NOUN and finds no entities
//   - MockSentiment: returns 0 unless a score is scripted for the text
//   - MockReadability: returns DefaultScore unless a score is scripted
//
// Call counts are safe to read while the mocks are used concurrently.
package mock
