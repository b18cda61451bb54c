package model

// Employee is a member of staff who can be assigned to shifts. Identifiers are
// opaque and assigned by the server.
type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	MaxWeeklyHours int    `json:"maxWeeklyHours"`
}

// ShiftTemplate describes a recurring shift shape: a name, the role it needs
// and its wall-clock start/end times. It carries no date; dates come from
// assignments.
type ShiftTemplate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RequiredRole string    `json:"requiredRole"`
	StartTime    TimeOfDay `json:"startTime"`
	EndTime      TimeOfDay `json:"endTime"`
}

// Assignment places an employee on a shift template for one calendar date.
type Assignment struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	ShiftID    string `json:"shiftId"`
	Date       Date   `json:"date"`
}

// EmployeePayload is the request body for creating or updating an employee.
type EmployeePayload struct {
	Name           string `json:"name" validate:"required"`
	Role           string `json:"role" validate:"required"`
	MaxWeeklyHours int    `json:"maxWeeklyHours" validate:"min=0"`
}

// ShiftPayload is the request body for creating or updating a shift template.
type ShiftPayload struct {
	Name         string    `json:"name" validate:"required"`
	RequiredRole string    `json:"requiredRole" validate:"required"`
	StartTime    TimeOfDay `json:"startTime"`
	EndTime      TimeOfDay `json:"endTime"`
}

// AssignmentPayload is the request body for creating or updating an assignment.
type AssignmentPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	ShiftID    string `json:"shiftId" validate:"required"`
	Date       Date   `json:"date" validate:"required"`
}
