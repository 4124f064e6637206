package objectgraph_test

import (
	"testing"

	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/stretchr/testify/require"
)

type shirt struct {
	SKU   string
	Color string
	Size  string
}

func (s *shirt) Field(name string) (any, bool) {
	switch name {
	case "sku":
		return s.SKU, true
	case "color":
		return s.Color, true
	case "size":
		return s.Size, true
	default:
		return nil, false
	}
}

func shirtKey(s *shirt) string {
	return s.SKU
}

// shirts returns fresh copies of the eight seed records, keyed "1".."8".
func shirts() []*shirt {
	return []*shirt{
		{SKU: "1", Color: "red", Size: "small"},
		{SKU: "2", Color: "red", Size: "medium"},
		{SKU: "3", Color: "yellow", Size: "small"},
		{SKU: "4", Color: "green", Size: "small"},
		{SKU: "5", Color: "green", Size: "large"},
		{SKU: "6", Color: "blue", Size: "small"},
		{SKU: "7", Color: "blue", Size: "medium"},
		{SKU: "8", Color: "blue", Size: "large"},
	}
}

func extraShirts() []*shirt {
	return []*shirt{
		{SKU: "9", Color: "orange", Size: "small"},
		{SKU: "10", Color: "orange", Size: "medium"},
		{SKU: "11", Color: "orange", Size: "large"},
		{SKU: "12", Color: "purple", Size: "small"},
		{SKU: "13", Color: "purple", Size: "large"},
		{SKU: "14", Color: "white", Size: "medium"},
		{SKU: "15", Color: "white", Size: "large"},
		{SKU: "16", Color: "black", Size: "large"},
	}
}

func newShirtGraph(t *testing.T, opts ...objectgraph.Option) *objectgraph.Graph[*shirt] {
	t.Helper()

	opts = append([]objectgraph.Option{objectgraph.WithReporter(nil)}, opts...)

	g, err := objectgraph.New(shirts(), shirtKey, opts...)
	require.NoError(t, err)

	return g
}

func collectKeys(g *objectgraph.Graph[*shirt]) []string {
	var keys []string

	for k := range g.Keys() {
		keys = append(keys, k)
	}

	return keys
}

func skus(records []*shirt) []string {
	out := make([]string, 0, len(records))

	for _, r := range records {
		out = append(out, r.SKU)
	}

	return out
}
