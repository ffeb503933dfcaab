package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/neurobridge-lms/internal/domain/learning"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("course_category", enumValidator(learning.IsValidCategory))
		_ = v.RegisterValidation("course_difficulty", enumValidator(learning.IsValidDifficulty))
		_ = v.RegisterValidation("course_status", enumValidator(learning.IsValidCourseStatus))
		_ = v.RegisterValidation("content_type", enumValidator(learning.IsValidContentType))
		_ = v.RegisterValidation("user_role", enumValidator(user.IsValidRole))
		validate = v
	})
	return validate
}

func enumValidator(ok func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return ok(fl.Field().String())
	}
}

// validateInput runs struct tags on in and turns the first failure into a 400.
func validateInput(in any) error {
	err := structValidator().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierr.Validation(err.Error())
	}
	return apierr.Validation(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s cannot be empty", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "course_category":
		return fmt.Sprintf("Invalid category: %v", fe.Value())
	case "course_difficulty":
		return fmt.Sprintf("Invalid difficulty: %v", fe.Value())
	case "course_status":
		return "Invalid status"
	case "content_type":
		return fmt.Sprintf("Invalid content type: %v", fe.Value())
	case "user_role":
		return fmt.Sprintf("Invalid role: %v", fe.Value())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

// logFailure logs err once at the service boundary and hands it back.
func logFailure(log *logger.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	ae := apierr.From(err)
	if ae.Status >= 500 {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "status", ae.Status, "reason", ae.Message)
	}
	return err
}

func internal(op string, err error) error {
	return apierr.Internal("Internal server error", fmt.Errorf("%s: %w", op, err))
}
