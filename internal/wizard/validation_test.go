package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() ApplicationDraft {
	return ApplicationDraft{
		Personal: PersonalInfo{
			FullName:    "Priya Nair",
			Email:       "priya.nair@example.com",
			Phone:       "+91-9876543210",
			DateOfBirth: "1994-06-12",
		},
		Education: Education{
			HighestEducation: "bachelor",
			Institution:      "Delhi University",
			GraduationYear:   2016,
			FieldOfStudy:     "Sociology",
		},
		Experience: Experience{
			YearsOfExperience: "3-5",
			CurrentPosition:   "Case Worker",
			Skills:            "Conflict resolution, case management",
		},
		Documents: Documents{
			Resume:     FileRef("upload/resume-1.pdf"),
			Motivation: "I want to help people resolve grievances fairly.",
		},
		Consent: Consent{
			AgreeToTerms:           true,
			AgreeToBackgroundCheck: true,
		},
	}
}

func TestValidateStepPersonalInfo(t *testing.T) {
	rules := DefaultRules(2026)

	tests := []struct {
		name     string
		mutate   func(*ApplicationDraft)
		expected map[string]string
	}{
		{
			name:     "valid draft passes",
			mutate:   func(d *ApplicationDraft) {},
			expected: map[string]string{},
		},
		{
			name: "empty step one",
			mutate: func(d *ApplicationDraft) {
				d.Personal = PersonalInfo{}
			},
			expected: map[string]string{
				"fullName":    "Full name is required",
				"email":       "Email is required",
				"phone":       "Phone number is required",
				"dateOfBirth": "Date of birth is required",
			},
		},
		{
			name: "malformed email",
			mutate: func(d *ApplicationDraft) {
				d.Personal.Email = "not-an-email"
			},
			expected: map[string]string{
				"email": "Invalid email format",
			},
		},
		{
			name: "email with spaces rejected",
			mutate: func(d *ApplicationDraft) {
				d.Personal.Email = "priya nair@example.com"
			},
			expected: map[string]string{
				"email": "Invalid email format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			assert.Equal(t, tt.expected, rules.ValidateStep(1, &draft))
		})
	}
}

func TestValidateStepEducation(t *testing.T) {
	rules := DefaultRules(2026)

	tests := []struct {
		name     string
		mutate   func(*ApplicationDraft)
		expected map[string]string
	}{
		{
			name:     "valid",
			mutate:   func(d *ApplicationDraft) {},
			expected: map[string]string{},
		},
		{
			name: "unknown education level",
			mutate: func(d *ApplicationDraft) {
				d.Education.HighestEducation = "bootcamp"
			},
			expected: map[string]string{
				"highestEducation": "Education level is required",
			},
		},
		{
			name: "graduation year unset",
			mutate: func(d *ApplicationDraft) {
				d.Education.GraduationYear = 0
			},
			expected: map[string]string{
				"graduationYear": "Graduation year is required",
			},
		},
		{
			name: "graduation year in the future",
			mutate: func(d *ApplicationDraft) {
				d.Education.GraduationYear = 2031
			},
			expected: map[string]string{
				"graduationYear": "Graduation year must be between 1900 and 2026",
			},
		},
		{
			name: "graduation year before floor",
			mutate: func(d *ApplicationDraft) {
				d.Education.GraduationYear = 1899
			},
			expected: map[string]string{
				"graduationYear": "Graduation year must be between 1900 and 2026",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			assert.Equal(t, tt.expected, rules.ValidateStep(2, &draft))
		})
	}
}

func TestValidateStepExperienceAndDocuments(t *testing.T) {
	rules := DefaultRules(2026)

	draft := validDraft()
	draft.Experience.YearsOfExperience = ""
	draft.Experience.Skills = ""
	errs := rules.ValidateStep(3, &draft)
	assert.Equal(t, map[string]string{
		"yearsOfExperience": "Years of experience is required",
		"skills":            "Skills are required",
	}, errs)

	draft = validDraft()
	draft.Documents.Resume = ""
	draft.Documents.Motivation = ""
	errs = rules.ValidateStep(4, &draft)
	assert.Equal(t, map[string]string{
		"resume":     "Resume is required",
		"motivation": "Motivation letter is required",
	}, errs)
}

func TestValidateStepConsent(t *testing.T) {
	rules := DefaultRules(2026)

	draft := validDraft()
	draft.Consent.AgreeToTerms = false
	errs := rules.ValidateStep(5, &draft)
	assert.Equal(t, map[string]string{
		"agreeToTerms": "You must agree to the terms and conditions",
	}, errs)

	draft.Consent.AgreeToBackgroundCheck = false
	errs = rules.ValidateStep(5, &draft)
	assert.Len(t, errs, 2)
	assert.Equal(t, "You must consent to a background check", errs["agreeToBackgroundCheck"])
}
