package shop

import "github.com/reoring/wireparity"

type Size string

const (
	SizeSmall Size = "small"
	SizeLarge Size = "large"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityHigh
	_
	PriorityURGENTCase
)

const (
	maxItems = 10
	SizeHuge = Size("huge")
)

// unexported enums are not registered
type colour string

const colourRed colour = "red"

// Item is payable.
//
//wireparity:family name=item discriminator=Kind
type Item interface {
	wireparity.Variant
	isItem()
}

type baseItem struct {
	Kind string `json:"kind" wire:"kind"`
}

type Book struct {
	baseItem
	Title string `json:"title" wire:"title"`
}

func (Book) DiscriminatorValue() string { return "book" }
func (Book) isItem()                    {}

type Pen struct {
	baseItem
	Size Size `json:"size" wire:"size"`
}

func (Pen) DiscriminatorValue() string { return "pen" }
func (Pen) isItem()                    {}

// Draft only has a pointer receiver, so it is not a variant.
type Draft struct {
	baseItem
}

func (*Draft) DiscriminatorValue() string { return "draft" }
func (*Draft) isItem()                    {}

type Order struct {
	Items    []Item   `json:"items" wire:"items"`
	Priority Priority `json:"priority" wire:"priority"`
}

type Alias = Order
