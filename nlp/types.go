package nlp

import "unicode"

// Universal part-of-speech tags.
const (
	POSAdj   = "ADJ"
	POSAdp   = "ADP"
	POSAdv   = "ADV"
	POSAux   = "AUX"
	POSCconj = "CCONJ"
	POSDet   = "DET"
	POSIntj  = "INTJ"
	POSNoun  = "NOUN"
	POSNum   = "NUM"
	POSPart  = "PART"
	POSPron  = "PRON"
	POSPropn = "PROPN"
	POSPunct = "PUNCT"
	POSSym   = "SYM"
	POSVerb  = "VERB"
	POSX     = "X"
)

// Dependency labels produced by taggers.
const (
	DepRoot  = "ROOT"
	DepAux   = "aux"
	DepCop   = "cop"
	DepPunct = "punct"
	DepOther = "dep"
)

// Entity labels for temporal expressions.
const (
	EntityDate = "DATE"
	EntityTime = "TIME"
)

// Token is a single token of tagged text.
type Token struct {
	Text    string
	Tag     string // Fine-grained tag (Penn Treebank)
	POS     string // Universal part of speech
	Dep     string // Dependency label
	IsAlpha bool   // Every rune is a letter
}

// Entity is a named entity span.
type Entity struct {
	Text  string
	Label string
}

// Doc is the result of tagging a text.
type Doc struct {
	Tokens   []Token
	Entities []Entity
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
