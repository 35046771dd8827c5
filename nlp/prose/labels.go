package prose

import (
	"strings"
	"unicode"

	"github.com/poiesic/lingcomp/nlp"
)

// pennToUniversal maps Penn Treebank tags to universal parts of speech.
// Verb tags are resolved separately because auxiliaries share them.
var pennToUniversal = map[string]string{
	"CC":    nlp.POSCconj,
	"CD":    nlp.POSNum,
	"DT":    nlp.POSDet,
	"EX":    nlp.POSPron,
	"FW":    nlp.POSX,
	"IN":    nlp.POSAdp,
	"JJ":    nlp.POSAdj,
	"JJR":   nlp.POSAdj,
	"JJS":   nlp.POSAdj,
	"LS":    nlp.POSX,
	"MD":    nlp.POSAux,
	"NN":    nlp.POSNoun,
	"NNS":   nlp.POSNoun,
	"NNP":   nlp.POSPropn,
	"NNPS":  nlp.POSPropn,
	"PDT":   nlp.POSDet,
	"POS":   nlp.POSPart,
	"PRP":   nlp.POSPron,
	"PRP$":  nlp.POSPron,
	"RB":    nlp.POSAdv,
	"RBR":   nlp.POSAdv,
	"RBS":   nlp.POSAdv,
	"RP":    nlp.POSPart,
	"SYM":   nlp.POSSym,
	"TO":    nlp.POSPart,
	"UH":    nlp.POSIntj,
	"WDT":   nlp.POSDet,
	"WP":    nlp.POSPron,
	"WP$":   nlp.POSPron,
	"WRB":   nlp.POSAdv,
	"#":     nlp.POSSym,
	"$":     nlp.POSSym,
	".":     nlp.POSPunct,
	",":     nlp.POSPunct,
	":":     nlp.POSPunct,
	"(":     nlp.POSPunct,
	")":     nlp.POSPunct,
	"``":    nlp.POSPunct,
	"''":    nlp.POSPunct,
	"-LRB-": nlp.POSPunct,
	"-RRB-": nlp.POSPunct,
}

var beForms = map[string]bool{
	"be": true, "am": true, "is": true, "are": true, "was": true, "were": true,
	"been": true, "being": true, "'m": true, "'re": true, "'s": true,
}

var auxiliaryForms = map[string]bool{
	"have": true, "has": true, "had": true, "having": true, "'ve": true, "'d": true,
	"do": true, "does": true, "did": true,
}

// Tags that may sit between an auxiliary and its verb ("is not going", "do you run").
var auxiliaryGap = map[string]bool{
	"RB": true, "RBR": true, "RBS": true, "PRP": true, "EX": true,
}

const maxAuxiliaryGap = 3

func isVerbTag(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}

func universalPOS(tag, text string) string {
	if isVerbTag(tag) {
		return nlp.POSVerb
	}
	if pos, ok := pennToUniversal[tag]; ok {
		return pos
	}
	if isPunctuation(text) {
		return nlp.POSPunct
	}
	return nlp.POSX
}

func isPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// governsVerb reports whether the verb-tagged token at i is followed by another
// verb, allowing a short gap of adverbs and pronouns.
func governsVerb(tokens []nlp.Token, i int) bool {
	for j := i + 1; j < len(tokens) && j <= i+1+maxAuxiliaryGap; j++ {
		tag := tokens[j].Tag
		if isVerbTag(tag) {
			return true
		}
		if !auxiliaryGap[tag] {
			return false
		}
	}
	return false
}

// assignLabels fills POS and Dep from the Penn tags.
//
// Modals are auxiliaries. Forms of be, have and do are auxiliaries when they
// govern a following verb; otherwise be is a copula and have/do are main verbs.
// The first main verb is the root.
func assignLabels(tokens []nlp.Token) {
	rootAssigned := false
	for i := range tokens {
		tok := &tokens[i]
		tok.POS = universalPOS(tok.Tag, tok.Text)
		tok.Dep = nlp.DepOther

		switch {
		case tok.POS == nlp.POSPunct:
			tok.Dep = nlp.DepPunct
		case tok.Tag == "MD":
			tok.Dep = nlp.DepAux
		case tok.POS == nlp.POSVerb:
			lower := strings.ToLower(tok.Text)
			if beForms[lower] || auxiliaryForms[lower] {
				if governsVerb(tokens, i) {
					tok.POS = nlp.POSAux
					tok.Dep = nlp.DepAux
					continue
				}
				if beForms[lower] {
					tok.POS = nlp.POSAux
					tok.Dep = nlp.DepCop
					continue
				}
			}
			if !rootAssigned {
				tok.Dep = nlp.DepRoot
				rootAssigned = true
			}
		}
	}
}
