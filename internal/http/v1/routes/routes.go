package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/profile-pipeline/internal/http/v1/profile"
)

// Register wires all v1 HTTP routes into the provided API.
func Register(api huma.API, profileService profile.Service) {
	profile.Register(api, profileService)
}
