package people

// Record is one character as supplied by the people endpoint.
// All values are opaque strings; nothing is parsed or validated.
type Record struct {
	Name      string `json:"name" yaml:"name"`
	Height    string `json:"height" yaml:"height"`
	Mass      string `json:"mass" yaml:"mass"`
	BirthYear string `json:"birth_year" yaml:"birth_year"`
}

// Title implements the bubbles list.DefaultItem contract
func (r Record) Title() string { return r.Name }

// Description implements the bubbles list.DefaultItem contract
func (r Record) Description() string {
	if r.BirthYear == "" {
		return ""
	}
	return "born " + r.BirthYear
}

// FilterValue implements the bubbles list.Item contract
func (r Record) FilterValue() string { return r.Name }

// Detail field labels
const (
	LabelHeight    = "Height"
	LabelMass      = "Mass"
	LabelBirthYear = "Birth Year"
)

// Field is one labelled row of a detail view
type Field struct {
	Label string
	Value string
	Unit  string
}

// Display returns the value with its unit appended, if any
func (f Field) Display() string {
	if f.Unit == "" {
		return f.Value
	}
	return f.Value + " " + f.Unit
}

// Fields returns the detail rows for a record in display order
func (r Record) Fields() []Field {
	return []Field{
		{Label: LabelHeight, Value: r.Height, Unit: "cm"},
		{Label: LabelMass, Value: r.Mass, Unit: "kg"},
		{Label: LabelBirthYear, Value: r.BirthYear},
	}
}
