package energy

// PlantsInCanton returns the records of the named canton in load order.
// An unknown canton or a canton without plants yields an empty slice.
func PlantsInCanton(records []PlantRecord, canton string) []PlantRecord {
	canton = NormalizeName(canton)
	plants := []PlantRecord{}
	if canton == "" {
		return plants
	}
	for _, record := range records {
		if record.CantonName == canton {
			plants = append(plants, record)
		}
	}
	return plants
}

// Located keeps the records that have coordinates.
func Located(records []PlantRecord) []PlantRecord {
	located := make([]PlantRecord, 0, len(records))
	for _, record := range records {
		if record.HasLocation {
			located = append(located, record)
		}
	}
	return located
}
