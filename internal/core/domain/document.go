package domain

// Document is an immutable piece of text that may be absent.
// The zero value is the absent document.
type Document struct {
	text    string
	present bool
}

// NewDocument wraps text, including the empty string, as a present document.
func NewDocument(text string) Document {
	return Document{text: text, present: true}
}

// AbsentDocument returns a document with no content at all.
func AbsentDocument() Document {
	return Document{}
}

// DocumentFromPtr maps nil to the absent document.
func DocumentFromPtr(text *string) Document {
	if text == nil {
		return AbsentDocument()
	}
	return NewDocument(*text)
}

// Present reports whether the document carries text.
func (d Document) Present() bool {
	return d.present
}

// Text returns the raw content. It is empty for an absent document.
func (d Document) Text() string {
	return d.text
}

// Equal reports raw equality: both present with identical content.
func (d Document) Equal(other Document) bool {
	return d.present && other.present && d.text == other.text
}
