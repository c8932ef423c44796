package weavetest

// calls counts the invocations of a mock. Every call is counted, whatever
// its result.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int {
	return c.check
}

func (c *calls) DeliverCallCount() int {
	return c.deliver
}

func (c *calls) CallCount() int {
	return c.check + c.deliver
}
