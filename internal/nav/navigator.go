package nav

// Navigator tracks the back stack of destinations. Home sits at the root and
// is never popped.
type Navigator struct {
	stack []Destination
}

// New returns a navigator positioned on the home route.
func New() *Navigator {
	home, _ := Parse(RouteHome)
	return &Navigator{stack: []Destination{home}}
}

// Current returns the destination on top of the stack.
func (n *Navigator) Current() Destination {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of destinations on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Navigate parses route and pushes it. The stack is unchanged on error.
func (n *Navigator) Navigate(route string) (Destination, error) {
	dest, err := Parse(route)
	if err != nil {
		return Destination{}, err
	}
	n.stack = append(n.stack, dest)
	return dest, nil
}

// Back pops the current destination and returns the one below it. At the root
// it returns the root and false.
func (n *Navigator) Back() (Destination, bool) {
	if len(n.stack) == 1 {
		return n.stack[0], false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return n.Current(), true
}
