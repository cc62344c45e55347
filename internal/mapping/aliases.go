package mapping

// Field-alias tables. Upstream collections were authored in different CMS
// generations, so the same logical field appears under several literal names.
// Alias order is the fallback order; keeping these as data instead of inline
// conditionals keeps the heuristics testable.

var idAliases = []string{"id", "_id", "uid"}

var (
	hospitalNameAliases = []string{"Hospital Name", "hospitalName", "hospital_name", "name", "title"}
	branchNameAliases   = []string{"Branch Name", "branchName", "branch_name", "name", "title"}
	doctorNameAliases   = []string{"Doctor Name", "doctorName", "doctor_name", "name", "title"}
	cityNameAliases     = []string{"City Name", "cityName", "city_name", "name", "title"}

	addressAliases         = []string{"address", "Address", "fullAddress", "full_address", "location"}
	descriptionAliases     = []string{"description", "Description", "about", "About", "overview"}
	yearEstablishedAliases = []string{"yearEstablished", "year_established", "Established Year", "established", "founded"}
	logoAliases            = []string{"logo", "Logo", "logoUrl", "image", "Image"}
	imageAliases           = []string{"image", "Image", "photo", "picture", "profileImage"}

	qualificationAliases = []string{"qualification", "Qualification", "qualifications", "degree"}
	experienceAliases    = []string{"experience", "Experience", "yearsOfExperience", "years_of_experience"}
	designationAliases   = []string{"designation", "Designation", "position", "role"}
	aboutAliases         = []string{"about", "About", "bio", "description", "profile"}

	categoryAliases = []string{"category", "Category", "treatmentCategory", "type"}
	durationAliases = []string{"duration", "Duration", "stayDuration", "stay_duration"}
	minCostAliases  = []string{"minCost", "min_cost", "Min Cost", "startingCost", "costFrom"}
	maxCostAliases  = []string{"maxCost", "max_cost", "Max Cost", "costTo"}

	accreditationTitleAliases = []string{"title", "Title", "Accreditation Name", "accreditationName", "name"}

	stateAliases   = []string{"state", "State", "stateName", "state_name", "region"}
	countryAliases = []string{"country", "Country", "countryName"}
)

// Reference-field aliases. Values may be a bare id string, an embedded
// object, or an array of either.
var (
	cityRefAliases          = []string{"city", "City", "cities", "Cities", "City_branches"}
	doctorRefAliases        = []string{"doctor", "Doctor", "doctors", "Doctors", "Doctor_branches"}
	specialtyRefAliases     = []string{"specialty", "Specialty", "specialties", "specialization", "Specialist_branches"}
	departmentRefAliases    = []string{"department", "Department", "departments", "Departments"}
	treatmentRefAliases     = []string{"treatment", "Treatment", "treatments", "Treatments"}
	accreditationRefAliases = []string{"accreditation", "Accreditation", "accreditations", "Accreditations"}
	specialistRefAliases    = []string{"specialist", "Specialist", "specialists", "Specialists"}
)

// HospitalAssociationAliases lists every legacy field under which a branch
// may point at its hospital. The FIRST alias that yields an id wins; later
// aliases are ignored for that branch even when they disagree. This is a
// data-quality assumption: the source schema never documented a precedence.
var HospitalAssociationAliases = []string{
	"hospital",
	"Hospital",
	"hospital_id",
	"hospitalId",
	"HospitalMaster_branches",
	"hospitalMaster",
	"hospital_group",
	"group",
}
