package schedule

import (
	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// BoundAssignment is an assignment resolved against a snapshot: the referenced
// employee and shift template looked up by id. When either reference is
// missing from the snapshot (e.g. the employee was deleted after the
// assignment was made) the entry is flagged Incomplete instead of dropped, so
// the caller can render a broken-reference state.
type BoundAssignment struct {
	Assignment model.Assignment
	Employee   *model.Employee
	Shift      *model.ShiftTemplate
	Incomplete bool
}

// Bind selects the snapshot's assignments that fall on the given calendar day
// and resolves each to its employee and shift template. Day matching is
// calendar-date equality; any time-of-day the server stored alongside the
// date has already been discarded by model.Date.
//
// Output order follows the order assignments were returned by the gateway.
// The remote side makes no ordering promise, so none is added here.
func Bind(day model.Date, snap *Snapshot) []BoundAssignment {
	if snap == nil {
		return nil
	}

	employeesByID := make(map[string]*model.Employee, len(snap.Employees))
	for i := range snap.Employees {
		employeesByID[snap.Employees[i].ID] = &snap.Employees[i]
	}
	shiftsByID := make(map[string]*model.ShiftTemplate, len(snap.Shifts))
	for i := range snap.Shifts {
		shiftsByID[snap.Shifts[i].ID] = &snap.Shifts[i]
	}

	bound := make([]BoundAssignment, 0)
	for _, a := range snap.Assignments {
		if a.Date != day {
			continue
		}

		entry := BoundAssignment{Assignment: a}
		entry.Employee = employeesByID[a.EmployeeID]
		entry.Shift = shiftsByID[a.ShiftID]
		entry.Incomplete = entry.Employee == nil || entry.Shift == nil
		bound = append(bound, entry)
	}
	return bound
}
