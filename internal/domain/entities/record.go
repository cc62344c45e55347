package entities

// Record is a raw, schemaless record as returned by the content store.
// Upstream collections disagree on field names and nesting, so the record
// stays untyped until it passes through an entity mapper.
type Record map[string]any

// Collection identifies one upstream content collection.
type Collection string

const (
	CollectionHospitals      Collection = "hospitals"
	CollectionBranches       Collection = "branches"
	CollectionDoctors        Collection = "doctors"
	CollectionSpecialists    Collection = "specialists"
	CollectionDepartments    Collection = "departments"
	CollectionTreatments     Collection = "treatments"
	CollectionAccreditations Collection = "accreditations"
	CollectionCities         Collection = "cities"
)
