package profile

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/profile-pipeline/internal/platform/logging"
	profilesvc "github.com/janisto/profile-pipeline/internal/service/profile"
)

const basePath = "/v1/profiles"

// Service is the subset of the profile pipeline the handlers need.
type Service interface {
	Process(ctx context.Context, in profilesvc.RawUserInput) (*profilesvc.SavedProfile, error)
	Get(ctx context.Context, userID int64) (*profilesvc.Profile, error)
}

// Register registers profile endpoints.
func Register(api huma.API, svc Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "save-profile",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Save user profile",
		Description:   "Validates and normalizes the user record, drops sensitive metadata keys and writes the profile, replacing any earlier save for the same user.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ProfileSaveInput) (*ProfileSaveOutput, error) {
		userID := input.Body.UserID
		resourceID := strconv.FormatInt(userID, 10)

		saved, err := svc.Process(ctx, profilesvc.RawUserInput{
			UserID:   userID,
			Name:     input.Body.Name,
			Email:    input.Body.Email,
			Metadata: normalizeMetadata(input.Body.Metadata),
		})
		if err != nil {
			applog.LogAuditEvent(ctx, "save", "profile", resourceID, applog.AuditFailure,
				map[string]any{"error": categorizeError(err)})
			return nil, mapServiceError(ctx, err)
		}

		applog.LogAuditEvent(ctx, "save", "profile", resourceID, applog.AuditSuccess, nil)
		return &ProfileSaveOutput{
			Location: basePath + "/" + resourceID,
			Body:     toHTTPSavedProfile(saved),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        basePath + "/{userId}",
		Summary:     "Get a saved profile",
		Description: "Returns the last saved profile for the user.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileGetOutput, error) {
		p, err := svc.Get(ctx, input.UserID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileGetOutput{Body: toHTTPProfile(p)}, nil
	})
}

// bodyFields maps pipeline field names to request body locations.
var bodyFields = map[string]string{
	"user_id": "body.userId",
	"name":    "body.name",
	"email":   "body.email",
}

func mapServiceError(ctx context.Context, err error) error {
	var verr *profilesvc.ValidationError
	switch {
	case errors.As(err, &verr):
		return huma.Error422UnprocessableEntity(verr.Error(), &huma.ErrorDetail{
			Message:  verr.Error(),
			Location: bodyFields[verr.Field],
			Value:    verr.Value,
		})
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	default:
		applog.LogError(ctx, "profile operation failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	var (
		verr    *profilesvc.ValidationError
		pathErr *fs.PathError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Kind.String()
	case errors.As(err, &pathErr):
		return "io_error"
	default:
		return "internal_error"
	}
}
