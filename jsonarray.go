package cycle

import "github.com/tidwall/gjson"

// JSONArray is a Table over the elements of a JSON array. The document
// is parsed once at construction; elements are exposed as gjson.Result
// values with read-only indexed access, which is all the Table contract
// needs.
type JSONArray struct {
	elems []gjson.Result
}

// NewJSONArray parses json and returns its top-level array elements as
// a Table[gjson.Result]. A document that is not an array yields an
// empty table.
func NewJSONArray(json string) JSONArray {
	parsed := gjson.Parse(json)
	if !parsed.IsArray() {
		return JSONArray{}
	}
	return JSONArray{elems: parsed.Array()}
}

// Len returns the number of array elements.
func (a JSONArray) Len() int {
	return len(a.elems)
}

// At returns the element at index i.
func (a JSONArray) At(i int) gjson.Result {
	return a.elems[i]
}
