package schedule_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/internal/stubserver"
	"github.com/shiftdeck/shiftdeck/pkg/clients/rosterclient"
	"github.com/shiftdeck/shiftdeck/pkg/core/model"
	"github.com/shiftdeck/shiftdeck/pkg/core/schedule"
)

// These tests run the whole read path against the stub service: gateway,
// aggregator and binder together, over real HTTP.

func setup(t *testing.T) (*rosterclient.Client, *schedule.Aggregator) {
	t.Helper()
	server := stubserver.NewServer(zap.NewNop())
	ts := httptest.NewServer(server.Mux)
	t.Cleanup(ts.Close)

	client := rosterclient.NewClient(ts.URL)
	return client, schedule.NewAggregator(client, zap.NewNop())
}

func mustParse(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestWeeklyViewEndToEnd(t *testing.T) {
	client, agg := setup(t)
	ctx := context.Background()

	employee, err := client.CreateEmployee(ctx, model.EmployeePayload{Name: "Alice Smith", Role: "Barista", MaxWeeklyHours: 40})
	require.NoError(t, err)
	shift, err := client.CreateShift(ctx, model.ShiftPayload{
		Name: "Morning", RequiredRole: "Barista",
		StartTime: model.TimeOfDay{Hour: 9}, EndTime: model.TimeOfDay{Hour: 17},
	})
	require.NoError(t, err)

	tuesday := mustParse(t, "2025-10-28")
	_, err = client.CreateAssignment(ctx, model.AssignmentPayload{
		EmployeeID: employee.ID, ShiftID: shift.ID, Date: tuesday,
	})
	require.NoError(t, err)

	// An assignment in a different week must not appear in this window.
	_, err = client.CreateAssignment(ctx, model.AssignmentPayload{
		EmployeeID: employee.ID, ShiftID: shift.ID, Date: mustParse(t, "2025-11-04"),
	})
	require.NoError(t, err)

	snap, err := agg.Load(ctx, schedule.WindowFor(tuesday))
	require.NoError(t, err)
	require.Len(t, snap.Assignments, 1)

	bound := schedule.Bind(tuesday, snap)
	require.Len(t, bound, 1)
	assert.Equal(t, "Alice Smith", bound[0].Employee.Name)
	assert.Equal(t, "Morning", bound[0].Shift.Name)
	assert.False(t, bound[0].Incomplete)

	assert.Empty(t, schedule.Bind(mustParse(t, "2025-10-29"), snap))
}

func TestFailedMutationLeavesSnapshotUntouched(t *testing.T) {
	client, agg := setup(t)
	ctx := context.Background()

	employee, err := client.CreateEmployee(ctx, model.EmployeePayload{Name: "Alice Smith", Role: "Barista"})
	require.NoError(t, err)
	shift, err := client.CreateShift(ctx, model.ShiftPayload{
		Name: "Morning", RequiredRole: "Barista",
		StartTime: model.TimeOfDay{Hour: 9}, EndTime: model.TimeOfDay{Hour: 17},
	})
	require.NoError(t, err)

	tuesday := mustParse(t, "2025-10-28")
	before, err := agg.Load(ctx, schedule.WindowFor(tuesday))
	require.NoError(t, err)

	// A rejected create must not disturb the committed snapshot.
	_, err = client.CreateAssignment(ctx, model.AssignmentPayload{
		EmployeeID: "ghost", ShiftID: shift.ID, Date: tuesday,
	})
	var validationErr *rosterclient.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Same(t, before, agg.Snapshot())

	// A successful create shows up only after an explicit refresh.
	_, err = client.CreateAssignment(ctx, model.AssignmentPayload{
		EmployeeID: employee.ID, ShiftID: shift.ID, Date: tuesday,
	})
	require.NoError(t, err)
	assert.Same(t, before, agg.Snapshot())

	after, err := agg.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, after.Assignments, 1)
	assert.NotSame(t, before, after)
}

func TestDeletedEmployeeShowsAsIncompleteAfterRefresh(t *testing.T) {
	client, agg := setup(t)
	ctx := context.Background()

	employee, err := client.CreateEmployee(ctx, model.EmployeePayload{Name: "Bob Jones", Role: "Cook"})
	require.NoError(t, err)
	shift, err := client.CreateShift(ctx, model.ShiftPayload{
		Name: "Evening", RequiredRole: "Cook",
		StartTime: model.TimeOfDay{Hour: 17}, EndTime: model.TimeOfDay{Hour: 23},
	})
	require.NoError(t, err)

	thursday := mustParse(t, "2025-10-30")
	_, err = client.CreateAssignment(ctx, model.AssignmentPayload{
		EmployeeID: employee.ID, ShiftID: shift.ID, Date: thursday,
	})
	require.NoError(t, err)

	require.NoError(t, client.DeleteEmployee(ctx, employee.ID))

	snap, err := agg.Load(ctx, schedule.WindowFor(thursday))
	require.NoError(t, err)

	bound := schedule.Bind(thursday, snap)
	require.Len(t, bound, 1)
	assert.True(t, bound[0].Incomplete)
	assert.Nil(t, bound[0].Employee)
	require.NotNil(t, bound[0].Shift)
	assert.Equal(t, "Evening", bound[0].Shift.Name)
}
