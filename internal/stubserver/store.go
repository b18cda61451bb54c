package stubserver

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// store is the in-memory state behind the stub server. Lists preserve
// insertion order, which keeps the schedule view stable across refreshes.
type store struct {
	mu          sync.Mutex
	employees   []model.Employee
	shifts      []model.ShiftTemplate
	assignments []model.Assignment
}

func newStore() *store {
	return &store{
		employees:   []model.Employee{},
		shifts:      []model.ShiftTemplate{},
		assignments: []model.Assignment{},
	}
}

func (s *store) listEmployees() []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *store) getEmployee(id string) (model.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}

func (s *store) createEmployee(p model.EmployeePayload) model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee := model.Employee{
		ID:             uuid.NewString(),
		Name:           p.Name,
		Role:           p.Role,
		MaxWeeklyHours: p.MaxWeeklyHours,
	}
	s.employees = append(s.employees, employee)
	return employee
}

func (s *store) updateEmployee(id string, p model.EmployeePayload) (model.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees[i].Name = p.Name
			s.employees[i].Role = p.Role
			s.employees[i].MaxWeeklyHours = p.MaxWeeklyHours
			return s.employees[i], true
		}
	}
	return model.Employee{}, false
}

func (s *store) deleteEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return true
		}
	}
	return false
}

func (s *store) listShifts() []model.ShiftTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ShiftTemplate, len(s.shifts))
	copy(out, s.shifts)
	return out
}

func (s *store) getShift(id string) (model.ShiftTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range s.shifts {
		if sh.ID == id {
			return sh, true
		}
	}
	return model.ShiftTemplate{}, false
}

func (s *store) createShift(p model.ShiftPayload) model.ShiftTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	shift := model.ShiftTemplate{
		ID:           uuid.NewString(),
		Name:         p.Name,
		RequiredRole: p.RequiredRole,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	}
	s.shifts = append(s.shifts, shift)
	return shift
}

func (s *store) updateShift(id string, p model.ShiftPayload) (model.ShiftTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			s.shifts[i].Name = p.Name
			s.shifts[i].RequiredRole = p.RequiredRole
			s.shifts[i].StartTime = p.StartTime
			s.shifts[i].EndTime = p.EndTime
			return s.shifts[i], true
		}
	}
	return model.ShiftTemplate{}, false
}

func (s *store) deleteShift(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			s.shifts = append(s.shifts[:i], s.shifts[i+1:]...)
			return true
		}
	}
	return false
}

// assignmentQuery mirrors the query parameters of GET /assignments. Zero
// fields mean "no constraint"; the date range is inclusive on both ends.
type assignmentQuery struct {
	startDate  model.Date
	endDate    model.Date
	employeeID string
	shiftID    string
}

func (q assignmentQuery) matches(a model.Assignment) bool {
	if !q.startDate.IsZero() && a.Date.Before(q.startDate) {
		return false
	}
	if !q.endDate.IsZero() && a.Date.After(q.endDate) {
		return false
	}
	if q.employeeID != "" && a.EmployeeID != q.employeeID {
		return false
	}
	if q.shiftID != "" && a.ShiftID != q.shiftID {
		return false
	}
	return true
}

func (s *store) listAssignments(q assignmentQuery) []model.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Assignment{}
	for _, a := range s.assignments {
		if q.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *store) getAssignment(id string) (model.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.ID == id {
			return a, true
		}
	}
	return model.Assignment{}, false
}

// hasEmployee and hasShift exist for referential checks on assignment writes;
// callers must not hold the lock.
func (s *store) hasEmployee(id string) bool {
	_, ok := s.getEmployee(id)
	return ok
}

func (s *store) hasShift(id string) bool {
	_, ok := s.getShift(id)
	return ok
}

func (s *store) createAssignment(p model.AssignmentPayload) model.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment := model.Assignment{
		ID:         uuid.NewString(),
		EmployeeID: p.EmployeeID,
		ShiftID:    p.ShiftID,
		Date:       p.Date,
	}
	s.assignments = append(s.assignments, assignment)
	return assignment
}

func (s *store) updateAssignment(id string, p model.AssignmentPayload) (model.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			s.assignments[i].EmployeeID = p.EmployeeID
			s.assignments[i].ShiftID = p.ShiftID
			s.assignments[i].Date = p.Date
			return s.assignments[i], true
		}
	}
	return model.Assignment{}, false
}

func (s *store) deleteAssignment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return true
		}
	}
	return false
}
