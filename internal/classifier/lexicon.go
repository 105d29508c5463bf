package classifier

// Lexicons of leading words seen in business-process diagrams. Entries are
// lowercase. A word present in both lexicons resolves to verb.
var (
	verbs = newWordSet(
		"send", "receive", "process", "validate", "verify", "create", "delete",
		"update", "generate", "confirm", "notify", "deliver", "suggest", "display",
		"adjust", "choose", "select", "browse", "enter", "download", "retry",
		"open", "have", "issue", "book",
	)

	nouns = newWordSet(
		"customer", "system", "payment", "gateway", "user", "account", "ticket",
		"seat", "match", "process", "notification", "email", "otp", "receipt",
		"reservation", "platform", "database", "server", "end", "sign", "psl",
	)
)

// Suffix rules are applied after the lexicons, verb suffixes first.
var (
	verbSuffixes = [...]string{"ing", "ate", "ify", "ize"}
	nounSuffixes = [...]string{"tion", "ment", "ness", "ity"}
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}
