package span

import "errors"

// Sentinel errors for span operations.
var (
	// ErrInvalidSpan indicates degenerate or out-of-bounds span bounds.
	ErrInvalidSpan = errors.New("span: invalid span bounds")

	// ErrOverlap indicates two spans in a set intersect.
	ErrOverlap = errors.New("span: spans overlap")
)

// EntityType is the label attached to a Span.
//
// The set below mirrors the entity inventory of the PII dataset
// generator; tolerance profiles in package corrupt are keyed by it.
type EntityType string

const (
	// CustomerName is a full person name (first + optional second + surnames).
	CustomerName EntityType = "CUSTOMER_NAME"

	// IDNumber is a national identification number (e.g., Chilean RUT XX.XXX.XXX-X).
	IDNumber EntityType = "ID_NUMBER"

	// Address is a street address, optionally with a city.
	Address EntityType = "ADDRESS"

	// PhoneNumber is a phone number, usually with a country prefix.
	PhoneNumber EntityType = "PHONE_NUMBER"

	// Email is an e-mail address.
	Email EntityType = "EMAIL"

	// Amount is a monetary amount with a currency marker.
	Amount EntityType = "AMOUNT"

	// SeqNumber is a sequential reference/transaction identifier.
	SeqNumber EntityType = "SEQ_NUMBER"

	// Date is a calendar date in any textual form.
	Date EntityType = "DATE"

	// Organization is a company or institution name.
	Organization EntityType = "ORGANIZATION"
)

// Span is a labeled half-open rune interval [Start, End) over a text buffer.
//
// Source holds the verbatim substring covered at creation time. It is a
// search key for relocation after the buffer has been mutated, never an
// ownership reference; the buffer may no longer contain it.
type Span struct {
	// Start is the inclusive rune offset of the first covered rune.
	Start int `json:"start"`

	// End is the exclusive rune offset one past the last covered rune.
	End int `json:"end"`

	// Label tags the entity type of the covered text.
	Label EntityType `json:"label"`

	// Source is the covered substring at creation time.
	Source string `json:"source"`
}

// New builds a Span and validates it against a buffer of bufLen runes.
// Complexity: O(1).
func New(start, end int, label EntityType, source string) (Span, error) {
	s := Span{Start: start, End: end, Label: label, Source: source}
	if !s.valid() {
		return Span{}, ErrInvalidSpan
	}
	return s, nil
}

// valid reports the structural invariant 0 <= Start < End.
func (s Span) valid() bool {
	return s.Start >= 0 && s.Start < s.End
}

// Len returns the number of runes covered by s.
// Complexity: O(1).
func (s Span) Len() int { return s.End - s.Start }
