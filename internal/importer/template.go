package importer

import (
	"bytes"
	"encoding/csv"
)

// TemplateFilename is the download name offered to the client.
const TemplateFilename = "menu_template.csv"

var templateRecords = [][]string{
	{"name", "description", "category", "price", "allergens"},
	{"Margherita Pizza", "Tomato, mozzarella, basil", "Mains", "12.50", "Milk, Cereals containing gluten"},
	{"Caesar Salad", "Romaine, parmesan, croutons", "Starters", "8.00", "Milk, Eggs, Fish"},
	{"Chocolate Brownie", "Served warm with vanilla ice cream", "Desserts", "6.00", "Milk, Eggs, Tree nuts"},
}

// Template produces the downloadable CSV template: the fixed header
// plus three illustrative rows. Pure and stateless; the output round-
// trips through ExtractCSV.
func Template() []byte {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	_ = w.WriteAll(templateRecords)
	w.Flush()

	return buf.Bytes()
}
