package profile

// ProfileSaveInput for POST /v1/profiles
type ProfileSaveInput struct {
	Body struct {
		UserID   int64          `json:"userId"             required:"true"                doc:"User identifier, must be positive" example:"1"`
		Name     string         `json:"name"               required:"true" maxLength:"200" doc:"Full name, letters and single spaces" example:"john doe"`
		Email    string         `json:"email"              required:"true" maxLength:"320" doc:"Email address"                     example:"JOHN@EXAMPLE.COM"`
		Metadata map[string]any `json:"metadata,omitempty"                                 doc:"Optional metadata; password, token, secret and key entries are dropped"`
	}
}

// ProfileGetInput for GET /v1/profiles/{userId}
type ProfileGetInput struct {
	UserID int64 `path:"userId" minimum:"1" doc:"User identifier" example:"1"`
}
