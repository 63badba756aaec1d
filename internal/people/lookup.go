package people

// FindByName scans records in order and returns the first one whose Name
// equals name exactly. Duplicate names resolve to the earliest entry.
func FindByName(records []Record, name string) (Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Names returns the record names in fetch order
func Names(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}
