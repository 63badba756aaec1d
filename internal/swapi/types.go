package swapi

import "github.com/yildizm/swdex/internal/people"

// peopleResponse is the list envelope. Paging fields are ignored.
type peopleResponse struct {
	Results []person `json:"results"`
}

// person is one entry of results; unknown fields are dropped by the decoder
type person struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	BirthYear string `json:"birth_year"`
}

func (p person) toRecord() people.Record {
	return people.Record{
		Name:      p.Name,
		Height:    p.Height,
		Mass:      p.Mass,
		BirthYear: p.BirthYear,
	}
}
