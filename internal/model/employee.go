package model

// RawEmployee is one entry of the remote payload, as served.
// Optional fields are pointers so "missing" and "empty" stay distinguishable until Map.
type RawEmployee struct {
	ID            int     `json:"id"             validate:"required,gt=0"`
	Name          string  `json:"name"           validate:"required"`
	Job           string  `json:"job"`
	AdmissionDate *string `json:"admission_date" validate:"omitempty,isodate"`
	Phone         *string `json:"phone"`
	Image         string  `json:"image"`
}

// Employee is the display record shown by the directory.
type Employee struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	AdmissionDate string `json:"admissionDate,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Image         string `json:"image"`
}

// Map renames the wire fields into a display record. Missing optionals become "".
func Map(raw RawEmployee) Employee {
	return Employee{
		ID:            raw.ID,
		Name:          raw.Name,
		Position:      raw.Job,
		AdmissionDate: deref(raw.AdmissionDate),
		Phone:         deref(raw.Phone),
		Image:         raw.Image,
	}
}

// ToRaw reverses Map, so a display record can be written back in the wire shape.
// Empty optionals become missing (null).
func ToRaw(e Employee) RawEmployee {
	return RawEmployee{
		ID:            e.ID,
		Name:          e.Name,
		Job:           e.Position,
		AdmissionDate: ref(e.AdmissionDate),
		Phone:         ref(e.Phone),
		Image:         e.Image,
	}
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
