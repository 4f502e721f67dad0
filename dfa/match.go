package dfa

// Match runs d over input and reports whether the whole input is accepted.
// A dead branch at any position rejects immediately.
func Match(d DFA, input []byte) bool {
	s := d.Initial()
	for _, b := range input {
		t, ok := d.Next(s, b)
		if !ok {
			return false
		}
		s = t
	}
	return d.Accept(s)
}
