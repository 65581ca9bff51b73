package wizard

import "regexp"

// Step bounds of the staff-application flow.
const (
	FirstStep = 1
	LastStep  = 5
)

// FileRef is an opaque reference to a previously uploaded file. Uploading
// itself happens elsewhere; the wizard only carries the reference.
type FileRef string

// PersonalInfo is step 1 of the draft.
type PersonalInfo struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth"` // ISO date
}

// Education is step 2 of the draft.
type Education struct {
	HighestEducation string `json:"highestEducation"`
	Institution      string `json:"institution"`
	GraduationYear   int    `json:"graduationYear"`
	FieldOfStudy     string `json:"fieldOfStudy,omitempty"`
}

// Experience is step 3 of the draft.
type Experience struct {
	YearsOfExperience string `json:"yearsOfExperience"`
	CurrentPosition   string `json:"currentPosition,omitempty"`
	CurrentCompany    string `json:"currentCompany,omitempty"`
	Skills            string `json:"skills"`
}

// Documents is step 4 of the draft.
type Documents struct {
	Resume       FileRef   `json:"resume"`
	Certificates []FileRef `json:"certificates,omitempty"`
	Motivation   string    `json:"motivation"`
}

// Consent is step 5 of the draft.
type Consent struct {
	AgreeToTerms           bool `json:"agreeToTerms"`
	AgreeToBackgroundCheck bool `json:"agreeToBackgroundCheck"`
}

// ApplicationDraft is the in-progress staff application. The wizard
// controller owns it exclusively for the duration of the flow.
type ApplicationDraft struct {
	Personal   PersonalInfo `json:"personal"`
	Education  Education    `json:"education"`
	Experience Experience   `json:"experience"`
	Documents  Documents    `json:"documents"`
	Consent    Consent      `json:"consent"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// educationLevels are the selectable values for highestEducation.
var educationLevels = map[string]bool{
	"high-school": true,
	"associate":   true,
	"bachelor":    true,
	"master":      true,
	"phd":         true,
	"other":       true,
}

// experienceRanges are the selectable values for yearsOfExperience.
var experienceRanges = map[string]bool{
	"0-1":  true,
	"1-3":  true,
	"3-5":  true,
	"5-10": true,
	"10+":  true,
}
