package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DecodeError reports why a payload was rejected.
// Index is the offending record, or -1 when the body itself could not be parsed.
type DecodeError struct {
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return "decode payload: " + e.Reason
	}
	if e.Field == "" {
		return fmt.Sprintf("decode record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("decode record %d: %s %s", e.Index, e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// report json names (admission_date), not Go names (AdmissionDate)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			_, err := ParseDate(s)
			return err == nil
		})
		validate = v
	})
	return validate
}

// Decode parses a JSON array of raw records and maps it into display records.
// The payload is accepted or rejected as a whole.
func Decode(data []byte) ([]Employee, error) {
	var raws []RawEmployee
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &DecodeError{Index: -1, Reason: err.Error(), Err: err}
	}
	// null unmarshals into a nil slice without error
	if raws == nil {
		return nil, &DecodeError{Index: -1, Reason: "payload is not an array"}
	}

	out := make([]Employee, 0, len(raws))
	seen := make(map[int]int, len(raws))
	for i, raw := range raws {
		if err := validateRecord(raw); err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				de.Index = i
			}
			return nil, err
		}
		if first, dup := seen[raw.ID]; dup {
			return nil, &DecodeError{
				Index:  i,
				Field:  "Id",
				Reason: fmt.Sprintf("%d duplicates record %d", raw.ID, first),
			}
		}
		seen[raw.ID] = i
		out = append(out, Map(raw))
	}
	return out, nil
}

// validateRecord checks one raw record against its schema.
func validateRecord(raw RawEmployee) error {
	err := recordValidator().Struct(raw)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &DecodeError{Reason: err.Error(), Err: err}
	}

	fe := verrs[0]
	reason := "is invalid"
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "gt":
		reason = "must be positive"
	case "isodate":
		reason = "is not an ISO date"
	}
	return &DecodeError{Field: fieldLabel(fe.Field()), Reason: reason, Err: err}
}

func fieldLabel(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// ParseDate accepts a plain ISO date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
