// Package structure models the structured rendering of a document: per-page
// text blocks with font and position metadata, plus the declared outline.
// Dumps are produced by an upstream structured PDF renderer and validated
// against an embedded JSON Schema before use. The core never mutates this
// data; it only reads it to build derived indexes.
package structure

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

// Block type discriminator values as emitted by the structured renderer.
const (
	BlockTypeText  = 0
	BlockTypeImage = 1
)

// Link destination kinds for outline items.
const (
	DestGoto  = "goto"
	DestNamed = "named"
	DestNone  = "none"
)

// Span is a run of text with a single font size.
type Span struct {
	Text string  `json:"text"`
	Size float64 `json:"size"`
}

// Line is an ordered sequence of spans.
type Line struct {
	Spans []Span `json:"spans"`
}

// Block is a contiguous region of page content. Type distinguishes text
// blocks from image and other block kinds; BBox is [x0, y0, x1, y1].
type Block struct {
	Type  int        `json:"type"`
	BBox  [4]float64 `json:"bbox"`
	Lines []Line     `json:"lines"`
}

// Page holds the ordered block sequence for one page. Number is 1-based.
// Block order is reading order as emitted by the renderer.
type Page struct {
	Number int     `json:"number"`
	Blocks []Block `json:"blocks"`
}

// DestPoint is the page-relative target coordinate of an internal link.
type DestPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dest describes an outline item's link destination.
type Dest struct {
	Kind string     `json:"kind"`
	To   *DestPoint `json:"to,omitempty"`
}

// OutlineItem is one declared table-of-contents entry.
type OutlineItem struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"`
	Dest  Dest   `json:"dest"`
}

// Document is a full structure dump.
type Document struct {
	PageCount int           `json:"page_count"`
	Outline   []OutlineItem `json:"outline"`
	Pages     []Page        `json:"pages"`
}

// Page returns the page with the given 1-based number, or false if the dump
// does not contain it.
func (d *Document) Page(num int) (*Page, bool) {
	for i := range d.Pages {
		if d.Pages[i].Number == num {
			return &d.Pages[i], true
		}
	}
	return nil, false
}

// ValidationError reports a dump that parsed as JSON but violated the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("structure dump does not match schema: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Load reads and parses a structure dump from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure dump: %w", err)
	}
	return Parse(data)
}

// Parse validates a structure dump against the embedded schema and decodes it.
func Parse(data []byte) (*Document, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid structure dump JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode structure dump: %w", err)
	}
	return &doc, nil
}

// compileSchema compiles the embedded dump schema.
func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("structure.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load structure schema: %w", err)
	}
	schema, err := compiler.Compile("structure.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile structure schema: %w", err)
	}
	return schema, nil
}
