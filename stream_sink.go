package cwrap

// Sink receives items from the streaming parser.
type Sink interface {
	WriteItem(Item) error
	Flush() error
}
