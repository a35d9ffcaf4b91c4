package ofx

import "errors"

// NodeStack is a stack of tree nodes, used to track open elements while
// building a document tree.
type NodeStack interface {
	Push(*Node)
	Pop() (*Node, error)
	Peek() (*Node, error)
	IsEmpty() bool
	Size() int
	Dump() []string
}

// stack is a stack of node pointers.
type stack struct {
	items []*Node
}

// NewStack returns an initialized empty stack.
func NewStack() NodeStack {
	return &stack{
		items: make([]*Node, 0),
	}
}

// Push adds the given node to top of stack.
func (s *stack) Push(n *Node) {
	s.items = append(s.items, n)
}

// Pop removes and returns the topmost node of the stack.
func (s *stack) Pop() (*Node, error) {
	l := len(s.items)
	if l == 0 {
		return nil, errors.New("error - popping from empty stack")
	}
	i := s.items[l-1]
	s.items = s.items[:l-1]
	return i, nil
}

// Peek returns the topmost node of the stack without removing it.
func (s *stack) Peek() (*Node, error) {
	l := len(s.items)
	if l == 0 {
		return nil, errors.New("error - peeking into empty stack")
	}
	return s.items[l-1], nil
}

// IsEmpty returns true if the stack is empty, else false.
func (s *stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *stack) Size() int {
	return len(s.items)
}

// Dump returns a string representation of the stack for debugging.
func (s *stack) Dump() []string {
	result := make([]string, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item.Name)
	}
	return result
}
