package profile

// ProfileSaveOutput for POST /v1/profiles (201 Created)
type ProfileSaveOutput struct {
	Location string `header:"Location" doc:"URL of the saved profile"`
	Body     SavedProfile
}

// ProfileGetOutput for GET /v1/profiles/{userId}
type ProfileGetOutput struct {
	Body Profile
}
