package textmining

// frenchStopwords are the function words excluded from word clouds. The
// articles analysed by the dashboard are French financial press.
var frenchStopwords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "de": {}, "du": {}, "des": {}, "un": {},
	"une": {}, "et": {}, "est": {}, "sont": {}, "en": {}, "au": {}, "aux": {},
	"pour": {}, "par": {}, "sur": {}, "dans": {}, "avec": {}, "il": {},
	"elle": {}, "ils": {}, "elles": {}, "ce": {}, "cet": {}, "cette": {},
	"ces": {}, "qui": {}, "que": {}, "quoi": {}, "dont": {}, "ou": {},
	"où": {}, "mais": {}, "donc": {}, "or": {}, "ni": {}, "car": {},
	"pas": {}, "ne": {}, "se": {}, "sa": {}, "ses": {}, "son": {},
	"leur": {}, "leurs": {}, "plus": {}, "moins": {}, "très": {},
	"aussi": {}, "être": {}, "avoir": {}, "tout": {}, "tous": {},
	"toute": {}, "toutes": {}, "fait": {}, "faire": {}, "comme": {},
	"a": {}, "y": {}, "été": {}, "ont": {}, "sous": {}, "vers": {},
	"ici": {}, "nous": {}, "vous": {}, "notre": {}, "votre": {},
}

// IsStopword reports whether the word is excluded from counting.
func IsStopword(word string) bool {
	_, ok := frenchStopwords[word]
	return ok
}
