package main

// EncodeSequence renders the applied gates as a compact share string of
// single-rune gate symbols in append order. Gates without a single-rune
// form (the daggers) are skipped.
func EncodeSequence(ops []Operation) string {
	out := make([]rune, 0, len(ops))
	for _, op := range ops {
		if r := op.Gate.Def().Rune; r != 0 {
			out = append(out, r)
		}
	}
	return string(out)
}

// DecodeSequence replays a share string into the session, appending one gate
// per recognized rune. Runes that name no registry gate are filtered out
// rather than rejected, so pasted strings with separators or noise still
// import. Returns how many gates were applied.
func DecodeSequence(s *Session, code string) int {
	applied := 0
	for _, r := range code {
		if g, ok := gateForRune(r); ok {
			s.Append(g)
			applied++
		}
	}
	return applied
}
