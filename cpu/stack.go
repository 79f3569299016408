package cpu

// The stack lives in memory and grows downward. SP addresses the low
// byte of the most recently pushed word.

// Push stores a word below SP and moves SP down by two.
func (st *State) Push(value uint16) {
	st.Memory[st.SP-1] = byte(value >> 8)
	st.Memory[st.SP-2] = byte(value)
	st.SP -= 2
}

// Pop loads the word at SP and moves SP up by two.
func (st *State) Pop() (value uint16) {
	value = st.Peek()
	st.SP += 2
	return
}

// Peek loads the word at SP without moving SP.
func (st *State) Peek() uint16 {
	return st.Word(st.SP)
}

// Poke replaces the word at SP without moving SP.
func (st *State) Poke(value uint16) {
	st.SetWord(st.SP, value)
}
