// Package properties defines the property bag attached to discovered test nodes.
//
// A bag is an ordered collection of properties. Only KeyValue entries
// participate in [key=value] filter predicates; every other property kind is
// carried for the benefit of reporters and is ignored during matching.
package properties

// Property is a single piece of metadata attached to a discovered test node.
type Property interface {
	// propertyNode is a marker method to distinguish property kinds.
	propertyNode()
}

// KeyValue is a generic key/value pair, such as a test trait or category.
// It is the only property kind consulted by [key=value] filter predicates.
type KeyValue struct {
	Key   string
	Value string
}

func (KeyValue) propertyNode() {}

// Location records where a test node was declared.
// It never satisfies a key/value predicate.
type Location struct {
	File string
	Line int
}

func (Location) propertyNode() {}

// Bag is an ordered collection of properties attached to one node.
type Bag []Property

// NewBag creates a Bag from the given properties.
func NewBag(props ...Property) Bag {
	return Bag(props)
}

// KeyValues returns the key/value entries in the bag, in order.
func (b Bag) KeyValues() []KeyValue {
	var kvs []KeyValue

	for _, prop := range b {
		if kv, ok := prop.(KeyValue); ok {
			kvs = append(kvs, kv)
		}
	}

	return kvs
}
