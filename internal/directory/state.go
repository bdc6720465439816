package directory

import "github.com/Makepad-fr/staff/internal/model"

// Status is the load phase of the screen.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the presentation state of the directory screen.
// The zero value is not useful; use NewState.
type State struct {
	status    Status
	inFlight  bool
	err       error
	employees []model.Employee
	query     string

	expanded int // 0 = none; ids are always positive
	modal    int
}

// NewState returns a state that is about to perform its first load.
func NewState() *State {
	return &State{status: StatusLoading, inFlight: true}
}

func (s *State) Status() Status              { return s.status }
func (s *State) Err() error                  { return s.err }
func (s *State) Employees() []model.Employee { return s.employees }
func (s *State) Query() string               { return s.query }
func (s *State) Loading() bool               { return s.inFlight }

// BeginLoad enters the loading phase. It returns false while a load is already
// in flight, so overlapping reloads collapse into the running one.
func (s *State) BeginLoad() bool {
	if s.inFlight {
		return false
	}
	s.inFlight = true
	s.status = StatusLoading
	s.err = nil
	return true
}

// Loaded replaces the list wholesale and drops selections that no longer resolve.
func (s *State) Loaded(list []model.Employee) {
	s.inFlight = false
	s.status = StatusReady
	s.err = nil
	s.employees = list
	if _, ok := s.find(s.expanded); !ok {
		s.expanded = 0
	}
	if _, ok := s.find(s.modal); !ok {
		s.modal = 0
	}
}

// Failed records a load failure. The previous list is kept but not shown.
func (s *State) Failed(err error) {
	s.inFlight = false
	s.status = StatusError
	s.err = err
}

// SetQuery replaces the search text.
func (s *State) SetQuery(q string) { s.query = q }

// Visible is the filtered view of the loaded list for the current query.
func (s *State) Visible() []model.Employee {
	return Filter(s.employees, s.query)
}

// ToggleExpanded expands id, or collapses it when it is already expanded.
// Expanding one card collapses any other.
func (s *State) ToggleExpanded(id int) {
	if s.expanded == id {
		s.expanded = 0
		return
	}
	if _, ok := s.find(id); ok {
		s.expanded = id
	}
}

// Expanded returns the expanded card id, if any.
func (s *State) Expanded() (int, bool) {
	return s.expanded, s.expanded != 0
}

// IsExpanded reports whether id is the expanded card.
func (s *State) IsExpanded(id int) bool {
	return s.expanded != 0 && s.expanded == id
}

// OpenModal shows id in the modal. Unknown ids are refused.
func (s *State) OpenModal(id int) bool {
	if _, ok := s.find(id); !ok {
		return false
	}
	s.modal = id
	return true
}

// CloseModal dismisses the modal.
func (s *State) CloseModal() { s.modal = 0 }

// Modal returns the employee shown in the modal, if any.
func (s *State) Modal() (model.Employee, bool) {
	if s.modal == 0 {
		return model.Employee{}, false
	}
	return s.find(s.modal)
}

func (s *State) find(id int) (model.Employee, bool) {
	if id == 0 {
		return model.Employee{}, false
	}
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}
