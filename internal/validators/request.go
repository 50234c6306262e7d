package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/courtlens/ecourts-gateway/models"
)

// causeListDatePattern is the only date shape upstream accepts: DD-MM-YYYY.
var causeListDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// RequestValidator implements the Validator interface for every inbound
// request model. Rules live in the models' struct tags; the one custom rule
// is the upstream date format.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration can only fail for a blank tag or a nil func.
	_ = v.RegisterValidation("causelistdate", func(fl validator.FieldLevel) bool {
		return causeListDatePattern.MatchString(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tag rules. When field names are
// given, only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.DistrictsRequest, *models.DistrictsRequest,
		models.CourtComplexRequest, *models.CourtComplexRequest,
		models.CourtNameRequest, *models.CourtNameRequest,
		models.CauseListRequest, *models.CauseListRequest,
		models.CaseDetailRequest, *models.CaseDetailRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}
