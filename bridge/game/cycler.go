package game

import "golang.org/x/exp/slices"

// Cycler walks seat names clockwise, wrapping at the end.
type Cycler struct {
	elements []string
	current  int
}

func NewCycler(elements []string) *Cycler {
	return &Cycler{
		elements: elements,
		current:  len(elements) - 1,
	}
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + 1) % elementCount
	return c.elements[c.current]
}

// Seek positions the cycler so that the following Next returns element.
func (c *Cycler) Seek(element string) bool {
	index := slices.Index(c.elements, element)
	if index < 0 {
		return false
	}
	elementCount := len(c.elements)
	c.current = (index - 1 + elementCount) % elementCount
	return true
}

// From returns one full lap starting at element, or nil if element is unknown.
func (c *Cycler) From(element string) []string {
	if !c.Seek(element) {
		return nil
	}
	lap := make([]string, 0, len(c.elements))
	for range c.elements {
		lap = append(lap, c.Next())
	}
	return lap
}
