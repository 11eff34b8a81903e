package athlete

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lildude/athletedash/internal/model"
	"github.com/lildude/athletedash/internal/sanitize"
)

var formValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("gender", func(fl validator.FieldLevel) bool { //nolint:errcheck // only fails on a bad tag name
		return slices.Contains(model.Genders, fl.Field().String())
	})
	return v
}

// messages maps "Field.tag" to what the user is told.
var messages = map[string]string{
	"FirstName.required": "First name must be specified.",
	"LastName.required":  "Last name must be specified.",
	"LastName.alpha":     "Last name must only contain letters.",
	"Gender.gender":      "Gender must be one of the listed options.",
	"GradYear.number":    "Grad year must be a whole number.",
	"BodyFat.numeric":    "Body fat must be a number.",
}

// validate checks v against its struct tags and returns every failure as a
// user-facing message, in field order.
func validate(v any) []string {
	err := formValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid.", fe.Field())
		}
		out = append(out, msg)
	}
	return out
}

// createForm is the sanitized body of a create request.
type createForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	BirthDate *time.Time
}

func parseCreateForm(v url.Values) createForm {
	return createForm{
		FirstName: sanitize.EscapeTrim(v.Get("firstName")),
		LastName:  sanitize.EscapeTrim(v.Get("lastName")),
		BirthDate: sanitize.Date(v.Get("bday")),
	}
}

func (f createForm) validate() []string {
	return validate(f)
}

func (f createForm) athlete(orgID string) *model.Athlete {
	return &model.Athlete{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		BirthDate: f.BirthDate,
		OrgID:     orgID,
	}
}

// updateForm is the sanitized body of an update request. Numeric fields stay
// strings until they have been validated.
type updateForm struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required,alpha"`
	BirthDate  *time.Time
	Gender     string `validate:"omitempty,gender"`
	Sport      string
	Passcode   string
	GradYear   string `validate:"omitempty,number"`
	BodyFat    string `validate:"omitempty,numeric"`
	HighRisk   bool
	ShowWeight bool
}

func parseUpdateForm(v url.Values) updateForm {
	return updateForm{
		FirstName:  sanitize.EscapeTrim(v.Get("fname")),
		LastName:   sanitize.EscapeTrim(v.Get("lname")),
		BirthDate:  sanitize.Date(v.Get("bday")),
		Gender:     v.Get("gender"),
		Sport:      sanitize.Capitalize(strings.TrimSpace(v.Get("sport"))),
		Passcode:   strings.TrimSpace(v.Get("passcode")),
		GradYear:   strings.TrimSpace(v.Get("gradyr")),
		BodyFat:    strings.TrimSpace(v.Get("bodyfat")),
		HighRisk:   sanitize.Checkbox(v.Get("highrisk")),
		ShowWeight: sanitize.Checkbox(v.Get("showweight")),
	}
}

func (f updateForm) validate() []string {
	return validate(f)
}

// athlete builds the replacement record for id. Numbers that fail to parse
// are left at zero; validate reports them.
func (f updateForm) athlete(id string) *model.Athlete {
	gradYear, _ := strconv.Atoi(f.GradYear)
	bodyFat, _ := strconv.ParseFloat(f.BodyFat, 64)
	return &model.Athlete{
		Base:       model.Base{ID: id},
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		BirthDate:  f.BirthDate,
		Gender:     f.Gender,
		Sport:      f.Sport,
		GradYear:   gradYear,
		HighRisk:   f.HighRisk,
		ShowWeight: f.ShowWeight,
		BodyFat:    bodyFat,
		Passcode:   f.Passcode,
	}
}
