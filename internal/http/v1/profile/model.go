package profile

import (
	profilesvc "github.com/janisto/profile-pipeline/internal/service/profile"
)

// PersonalInfo is the personal section of a profile response.
type PersonalInfo struct {
	FullName     string `json:"full_name"     doc:"Title-cased full name" example:"John Doe"`
	EmailAddress string `json:"email_address" doc:"Lowercased email"      example:"john@example.com"`
	DisplayName  string `json:"display_name"  doc:"First name token"      example:"John"`
}

// Profile represents a stored user profile.
type Profile struct {
	ID           int64          `json:"id"                 doc:"User identifier"    example:"1"`
	PersonalInfo PersonalInfo   `json:"personal_info"`
	CreatedAt    string         `json:"created_at"         doc:"Creation timestamp" example:"2024-01-15T10:30:00.000000+02:00"`
	Metadata     map[string]any `json:"metadata,omitzero"  doc:"Sanitized metadata" required:"false"`
}

// SavedProfile is a profile plus where it was written.
type SavedProfile struct {
	Profile
	SavedTo string `json:"saved_to" doc:"File the profile was written to" example:"profiles/user_1.json"`
	Status  string `json:"status"   doc:"Save status"                     example:"saved" enum:"saved"`
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID: p.ID,
		PersonalInfo: PersonalInfo{
			FullName:     p.PersonalInfo.FullName,
			EmailAddress: p.PersonalInfo.EmailAddress,
			DisplayName:  p.PersonalInfo.DisplayName,
		},
		CreatedAt: p.CreatedAt,
		Metadata:  p.Metadata,
	}
}

func toHTTPSavedProfile(p *profilesvc.SavedProfile) SavedProfile {
	return SavedProfile{
		Profile: toHTTPProfile(&p.Profile),
		SavedTo: p.SavedTo,
		Status:  p.Status,
	}
}
