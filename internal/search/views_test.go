package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/search"
)

func TestDoctorCandidates_PrefersBranchAttributedCopy(t *testing.T) {
	shared := entities.Doctor{ID: "d1", Name: "Dr. Asha Verma"}

	hospitals := []entities.Hospital{
		{
			ID:   "h1",
			Name: "Apex Group",
			Branches: []entities.Branch{
				{ID: "b1", Name: "Branch One", Doctors: []entities.Doctor{shared}},
			},
			// The rollup carries the same doctor again.
			Doctors: []entities.Doctor{shared},
		},
	}

	got := search.DoctorCandidates(hospitals)

	require.Len(t, got, 1)
	result := got[0].Payload.(search.DoctorResult)
	assert.Equal(t, "Apex Group", result.HospitalName)
	assert.Equal(t, "Branch One", result.BranchName)
}

func TestDoctorCandidates_RollupOnlyDoctorHasNoBranch(t *testing.T) {
	hospitals := []entities.Hospital{
		{
			ID:       "h1",
			Name:     "Apex Group",
			Branches: []entities.Branch{},
			Doctors:  []entities.Doctor{{ID: "d2", Name: "Dr. Nikhil Shah"}},
		},
	}

	got := search.DoctorCandidates(hospitals)

	require.Len(t, got, 1)
	result := got[0].Payload.(search.DoctorResult)
	assert.Equal(t, "Apex Group", result.HospitalName)
	assert.Equal(t, "", result.BranchName)
}

func TestTreatmentCandidates_DeduplicatesAcrossBranches(t *testing.T) {
	knee := entities.Treatment{ID: "t1", Name: "Knee Replacement"}

	hospitals := []entities.Hospital{
		{
			ID:   "h1",
			Name: "Apex Group",
			Branches: []entities.Branch{
				{ID: "b1", Name: "Branch One", Treatments: []entities.Treatment{knee}},
				{ID: "b2", Name: "Branch Two", Treatments: []entities.Treatment{knee}},
			},
		},
	}

	got := search.TreatmentCandidates(hospitals)

	require.Len(t, got, 1)
	result := got[0].Payload.(search.TreatmentResult)
	assert.Equal(t, "Branch One", result.BranchName)
}

func TestBranchCandidates_CarriesOwnerAndFacets(t *testing.T) {
	branches := []entities.Branch{
		{
			ID:           "b1",
			Name:         "Branch One",
			HospitalName: "Apex Group",
			Cities:       []entities.City{{ID: "c1", Name: "Jaipur"}},
			Specializations: []entities.Specialization{
				{ID: "s1", Name: "Oncology"},
			},
		},
	}

	got := search.BranchCandidates(branches)

	require.Len(t, got, 1)
	assert.Equal(t, "Apex Group", got[0].OwnerName)
	assert.Contains(t, got[0].FacetNames, "Jaipur")
	assert.Contains(t, got[0].FacetNames, "Oncology")
}

func TestHospitalCandidates_FacetsFromBranchesAndSpecializations(t *testing.T) {
	hospitals := []entities.Hospital{
		{
			ID:       "h1",
			Name:     "Apex Group",
			Branches: []entities.Branch{{ID: "b1", Name: "Branch One"}},
			Specializations: []entities.Specialization{
				{ID: "s1", Name: "Oncology"},
			},
		},
	}

	got := search.HospitalCandidates(hospitals)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].FacetNames, "Branch One")
	assert.Contains(t, got[0].FacetNames, "Oncology")
}
