package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

// DateLayout is the wire format of date_requested
const DateLayout = "2006-01-02"

var postalCodeRegex = regexp.MustCompile(`^[0-9]{5}$`)

// ReservationInput is the client-editable part of a reservation
type ReservationInput struct {
	Address       string  `json:"address" validate:"required,max=255"`
	PostalCode    string  `json:"postal_code" validate:"required,postal_code"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Urgent        bool    `json:"urgent"`
	DateRequested *string `json:"date_requested,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot      *string `json:"time_slot,omitempty" validate:"required_with=DateRequested,excluded_without=DateRequested,omitnil,notblank,max=50"`
}

// ParsedDate returns date_requested as a time, or nil when unset
func (in *ReservationInput) ParsedDate() (*time.Time, error) {
	if in.DateRequested == nil || *in.DateRequested == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, *in.DateRequested)
	if err != nil {
		return nil, errors.Wrap(err, "invalid date_requested")
	}
	return &d, nil
}

// ReservationValidator checks reservation input against the booking form rules
type ReservationValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewReservationValidator builds a validator; now is injectable for tests
func NewReservationValidator(now func() time.Time) *ReservationValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		return postalCodeRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	if now == nil {
		now = time.Now
	}

	return &ReservationValidator{validate: v, now: now}
}

// Validate returns an *apperrors.ValidationError listing every invalid field
func (v *ReservationValidator) Validate(in *ReservationInput) error {
	if in == nil {
		return apperrors.NewValidationError("reservation", "Les informations de réservation sont requises.")
	}

	var fieldErrs []apperrors.FieldError

	if err := v.validate.Struct(in); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, fe := range validationErrs {
			fieldErrs = append(fieldErrs, apperrors.FieldError{
				Param: fe.Field(),
				Msg:   message(fe),
			})
		}
	}

	if date, err := in.ParsedDate(); err == nil && date != nil {
		today := truncateToDay(v.now())
		if date.Before(today) {
			fieldErrs = append(fieldErrs, apperrors.FieldError{
				Param: "date_requested",
				Msg:   "La date ne peut pas être dans le passé.",
			})
		}
	}

	if len(fieldErrs) > 0 {
		return &apperrors.ValidationError{Errors: fieldErrs}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est requis."
	case "required_with", "notblank":
		return "Veuillez choisir un créneau horaire pour la date demandée."
	case "excluded_without":
		return "Un créneau horaire nécessite une date."
	case "postal_code":
		return "Le code postal doit contenir 5 chiffres."
	case "max":
		return "Ce champ ne peut pas dépasser " + fe.Param() + " caractères."
	case "datetime":
		return "Date invalide (format attendu AAAA-MM-JJ)."
	default:
		return "Valeur invalide."
	}
}
