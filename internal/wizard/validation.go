package wizard

import "fmt"

// Rules holds the step validation settings that are configuration rather
// than literals.
type Rules struct {
	GraduationYearMin int
	GraduationYearMax int
}

// DefaultRules returns production defaults; the year ceiling normally comes
// from config so it tracks the calendar.
func DefaultRules(yearMax int) Rules {
	return Rules{
		GraduationYearMin: 1900,
		GraduationYearMax: yearMax,
	}
}

// ValidateStep checks the required fields of one step against the draft and
// returns a field → message mapping. An empty map means the step is valid.
// It has no side effects; the controller stores the result for display.
func (r Rules) ValidateStep(step int, draft *ApplicationDraft) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		if draft.Personal.FullName == "" {
			errs["fullName"] = "Full name is required"
		}
		if draft.Personal.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailRegex.MatchString(draft.Personal.Email) {
			errs["email"] = "Invalid email format"
		}
		if draft.Personal.Phone == "" {
			errs["phone"] = "Phone number is required"
		}
		if draft.Personal.DateOfBirth == "" {
			errs["dateOfBirth"] = "Date of birth is required"
		}
	case 2:
		if !educationLevels[draft.Education.HighestEducation] {
			errs["highestEducation"] = "Education level is required"
		}
		if draft.Education.Institution == "" {
			errs["institution"] = "Institution is required"
		}
		if draft.Education.GraduationYear == 0 {
			errs["graduationYear"] = "Graduation year is required"
		} else if draft.Education.GraduationYear < r.GraduationYearMin || draft.Education.GraduationYear > r.GraduationYearMax {
			errs["graduationYear"] = fmt.Sprintf("Graduation year must be between %d and %d", r.GraduationYearMin, r.GraduationYearMax)
		}
	case 3:
		if !experienceRanges[draft.Experience.YearsOfExperience] {
			errs["yearsOfExperience"] = "Years of experience is required"
		}
		if draft.Experience.Skills == "" {
			errs["skills"] = "Skills are required"
		}
	case 4:
		if draft.Documents.Resume == "" {
			errs["resume"] = "Resume is required"
		}
		if draft.Documents.Motivation == "" {
			errs["motivation"] = "Motivation letter is required"
		}
	case 5:
		if !draft.Consent.AgreeToTerms {
			errs["agreeToTerms"] = "You must agree to the terms and conditions"
		}
		if !draft.Consent.AgreeToBackgroundCheck {
			errs["agreeToBackgroundCheck"] = "You must consent to a background check"
		}
	}

	return errs
}
