package service

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const monthIffCustomTag = "month_iff_custom"

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Violations should name the wire field, not the Go one
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		validate.RegisterValidation("schedule", func(fl validator.FieldLevel) bool {
			return entity.Schedule(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("progress_status", func(fl validator.FieldLevel) bool {
			return entity.ProgressStatus(fl.Field().String()).Valid()
		})
		validate.RegisterStructValidation(createTaskCrossFields, CreateTaskRequest{})
		validate.RegisterStructValidation(patchTaskCrossFields, PatchTaskRequest{})
	})
}

// month may be present iff the schedule is custom
func createTaskCrossFields(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateTaskRequest)
	if req.Schedule == entity.ScheduleCustom && req.Month == nil {
		sl.ReportError(req.Month, "month", "Month", monthIffCustomTag, "")
	}
	if req.Schedule != entity.ScheduleCustom && req.Month != nil {
		sl.ReportError(req.Month, "month", "Month", monthIffCustomTag, "")
	}
}

// A patch may carry month without a schedule; the repository's update filter
// then requires the stored schedule to be custom, so the pair stays consistent
func patchTaskCrossFields(sl validator.StructLevel) {
	req := sl.Current().Interface().(PatchTaskRequest)
	if req.Schedule == nil {
		return
	}
	if *req.Schedule == entity.ScheduleCustom && req.Month == nil {
		sl.ReportError(req.Month, "month", "Month", monthIffCustomTag, "")
	}
	if *req.Schedule != entity.ScheduleCustom && req.Month != nil {
		sl.ReportError(req.Month, "month", "Month", monthIffCustomTag, "")
	}
}

// toValidationError flattens validator output into the error taxonomy the
// handlers understand.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := &errorvalues.ValidationError{}
	for _, fe := range fieldErrors {
		ve.Violations = append(ve.Violations, errorvalues.FieldViolation{
			Field:      fe.Field(),
			Constraint: constraintText(fe),
		})
	}
	return ve
}

func constraintText(fe validator.FieldError) string {
	switch fe.Tag() {
	case monthIffCustomTag:
		return "month required iff schedule=custom"
	case "schedule":
		return "unknown schedule"
	case "progress_status":
		return "unknown status"
	}
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
