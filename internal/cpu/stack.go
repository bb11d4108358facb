package cpu

import "errors"

// stackDepth is the maximum number of nested subroutine calls.
const stackDepth = 16

var (
	// ErrStackOverflow is returned when a CALL exceeds the maximum number
	// of nested subroutine calls.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when a RET executes with an empty call
	// stack.
	ErrStackUnderflow = errors.New("return with empty call stack")
)

// callStack is a bounded stack of subroutine return addresses.
type callStack struct {
	slots [stackDepth]uint16
	depth int
}

// push stores a return address on the stack.
func (s *callStack) push(addr uint16) error {
	if s.depth == stackDepth {
		return ErrStackOverflow
	}
	s.slots[s.depth] = addr
	s.depth++
	return nil
}

// pop removes and returns the most recently pushed return address.
func (s *callStack) pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.slots[s.depth], nil
}
