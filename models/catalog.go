package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a catalog field. Catalog files are not consistent about types
// (prices and ratings show up both as numbers and strings), so any JSON
// scalar is accepted and kept in its textual form.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*v = Value(compact.String())
	return nil
}

// Scan lets a Value be read straight from a database column.
func (v *Value) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*v = ""
	case []byte:
		*v = Value(s)
	case string:
		*v = Value(s)
	default:
		*v = Value(fmt.Sprint(s))
	}
	return nil
}

func (v Value) String() string {
	return string(v)
}

type CatalogEntry struct {
	Model     Value `json:"model"`
	Price     Value `json:"price"`
	Rating    Value `json:"rating"`
	SIM       Value `json:"sim"`
	Processor Value `json:"processor"`
	RAM       Value `json:"ram"`
	Battery   Value `json:"battery"`
	Display   Value `json:"display"`
	Camera    Value `json:"camera"`
	Card      Value `json:"card"`
	OS        Value `json:"os"`
	InStock   Value `json:"in_stock"`
}

// Text flattens the entry into the document that gets embedded and
// handed back to the model as a lookup result.
func (e CatalogEntry) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model: %s\n", e.Model)
	fmt.Fprintf(&b, "Price: %s\n", e.Price)
	fmt.Fprintf(&b, "Rating: %s\n", e.Rating)
	fmt.Fprintf(&b, "SIM: %s\n", e.SIM)
	fmt.Fprintf(&b, "Processor: %s\n", e.Processor)
	fmt.Fprintf(&b, "RAM: %s\n", e.RAM)
	fmt.Fprintf(&b, "Battery: %s\n", e.Battery)
	fmt.Fprintf(&b, "Display: %s\n", e.Display)
	fmt.Fprintf(&b, "Camera: %s\n", e.Camera)
	fmt.Fprintf(&b, "Card: %s\n", e.Card)
	fmt.Fprintf(&b, "OS: %s\n", e.OS)
	fmt.Fprintf(&b, "In Stock: %s", e.InStock)
	return b.String()
}
