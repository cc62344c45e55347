package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/mapping"
)

func TestNormalizeCity_MetroOverrideByName(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Gurugram", State: "Haryana"})

	assert.Equal(t, "Gurugram", got.Name)
	assert.Equal(t, "Delhi NCR", got.State)
	assert.Equal(t, "India", got.Country)
}

func TestNormalizeCity_MetroOverrideByState(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Sector 62", State: "New Delhi"})

	assert.Equal(t, "Delhi NCR", got.State)
	assert.Equal(t, "India", got.Country)
}

func TestNormalizeCity_LongerTokenWinsForGreaterNoida(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Greater Noida"})

	assert.Equal(t, "Delhi NCR", got.State)
}

func TestNormalizeCity_KnownStatePassesThrough(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Mumbai", State: "Maharashtra"})

	assert.Equal(t, "Maharashtra", got.State)
	assert.Equal(t, "India", got.Country)
}

func TestNormalizeCity_MissingEverythingGetsUnknowns(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Smalltown"})

	assert.Equal(t, "Unknown State", got.State)
	assert.Equal(t, "Unknown Country", got.Country)
}

func TestNormalizeCity_ExistingCountryKept(t *testing.T) {
	got := mapping.NormalizeCity(entities.City{Name: "Kathmandu", State: "Bagmati", Country: "Nepal"})

	assert.Equal(t, "Bagmati", got.State)
	assert.Equal(t, "Nepal", got.Country)
}

func TestInferState(t *testing.T) {
	assert.Equal(t, "Maharashtra", mapping.InferState("Mumbai"))
	assert.Equal(t, "Maharashtra", mapping.InferState("Navi Mumbai"))
	assert.Equal(t, "Karnataka", mapping.InferState("Bengaluru"))
	assert.Equal(t, "Tamil Nadu", mapping.InferState("Chennai"))
	assert.Equal(t, "", mapping.InferState("Atlantis"))
	assert.Equal(t, "", mapping.InferState(""))
}

func TestMapCity_InfersStateBeforeNormalizing(t *testing.T) {
	got := mapping.MapCity(entities.Record{"id": "c1", "name": "Kochi"})

	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "Kerala", got.State)
	assert.Equal(t, "India", got.Country)
}

func TestMapCity_ScalarStateWins(t *testing.T) {
	got := mapping.MapCity(entities.Record{"id": "c2", "name": "Vellore", "state": "Tamil Nadu"})

	assert.Equal(t, "Tamil Nadu", got.State)
}

func TestMapCity_MissingNameGetsUnknownCity(t *testing.T) {
	got := mapping.MapCity(entities.Record{"id": "c3"})

	assert.Equal(t, "Unknown City", got.Name)
	assert.Equal(t, "Unknown State", got.State)
	assert.Equal(t, "Unknown Country", got.Country)
}
