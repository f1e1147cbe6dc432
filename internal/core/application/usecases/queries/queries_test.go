package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "workorders/internal/adapters/out/postgres"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/asset"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type WorkOrderQueriesTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *WorkOrderQueriesTestSuite) SetupTest() {
	suite.db = testsupport.OpenSQLite(suite.T())
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *WorkOrderQueriesTestSuite) store(description string, scheduled time.Time, reason string) *workorder.WorkOrder {
	loc, err := kernel.NewLocation(40.7128, -74.0060)
	suite.Require().NoError(err)
	site, err := kernel.NewZone(loc, 10)
	suite.Require().NoError(err)
	wo, err := workorder.NewWorkOrder(description, site, scheduled, reason)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().WorkOrderRepository().Add(context.Background(), wo))
	return wo
}

func (suite *WorkOrderQueriesTestSuite) list(status string) []queries.WorkOrderResponse {
	query, err := queries.NewListWorkOrdersQuery(status)
	suite.Require().NoError(err)
	result, err := queries.NewListWorkOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *WorkOrderQueriesTestSuite) TestList_EmptyDatabase_ReturnsEmptySlice() {
	result := suite.list("")

	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *WorkOrderQueriesTestSuite) TestList_NewestScheduledFirst_TiesByIDDescending() {
	t0 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	a := suite.store("A", t0, "")
	b := suite.store("B", t0.Add(time.Hour), "")
	c := suite.store("C", t0, "")

	result := suite.list("")

	suite.Require().Len(result, 3)
	suite.Equal(b.ID(), result[0].ID)
	suite.Equal(c.ID(), result[1].ID)
	suite.Equal(a.ID(), result[2].ID)
}

func (suite *WorkOrderQueriesTestSuite) TestList_MapsEveryField() {
	at := time.Date(2026, 2, 2, 14, 30, 0, 0, time.UTC)
	wo := suite.store("Dig", at, "CRITICAL CONFLICT: Overlaps with High Pressure Gas Main (ID: GAS-99).")

	result := suite.list("")

	suite.Require().Len(result, 1)
	got := result[0]
	suite.Equal(wo.ID(), got.ID)
	suite.Equal("Dig", got.Description)
	suite.InDelta(40.7128, got.Latitude, 1e-9)
	suite.InDelta(-74.0060, got.Longitude, 1e-9)
	suite.InDelta(10, got.RadiusMeters, 1e-9)
	suite.WithinDuration(at, got.ScheduledTime, time.Second)
	suite.Equal(time.UTC, got.ScheduledTime.Location())
	suite.Equal(workorder.ConflictDetected, got.Status)
	suite.Equal(wo.ConflictReason(), got.ConflictReason)
}

func (suite *WorkOrderQueriesTestSuite) TestList_FiltersByStatus() {
	t0 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	suite.store("clear", t0, "")
	conflicting := suite.store("conflict", t0, "CRITICAL CONFLICT")

	result := suite.list("CONFLICT_DETECTED")

	suite.Require().Len(result, 1)
	suite.Equal(conflicting.ID(), result[0].ID)
	suite.Empty(suite.list("APPROVED"))
}

func (suite *WorkOrderQueriesTestSuite) TestList_UnknownStatus_IsInvalidInput() {
	_, err := queries.NewListWorkOrdersQuery("approved")

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *WorkOrderQueriesTestSuite) TestList_InvalidQuery_ReturnsError() {
	result, err := queries.NewListWorkOrdersQueryHandler(suite.db).Handle(context.Background(), queries.ListWorkOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrListWorkOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *WorkOrderQueriesTestSuite) TestList_ContextCancellation_ReturnsError() {
	suite.store("A", time.Now().UTC(), "")
	query, _ := queries.NewListWorkOrdersQuery("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewListWorkOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *WorkOrderQueriesTestSuite) TestGet() {
	wo := suite.store("Dig", time.Now().UTC(), "")
	handler := queries.NewGetWorkOrderQueryHandler(suite.db)

	query, err := queries.NewGetWorkOrderQuery(wo.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(wo.ID(), got.ID)
	suite.Equal(workorder.PendingApproval, got.Status)
	suite.Equal(workorder.NoConflictReason, got.ConflictReason)

	missing, err := queries.NewGetWorkOrderQuery(wo.ID() + 100)
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = queries.NewGetWorkOrderQuery(0)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWorkOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderQueriesTestSuite))
}

func TestListProtectedAssetsQueryHandler(t *testing.T) {
	loc, _ := kernel.NewLocation(40.7128, -74.0060)
	gas, err := asset.NewProtectedAsset("GAS-99", "High Pressure Gas Main", "Gas Company", loc, 50)
	require.NoError(t, err)
	registry, err := asset.NewRegistry(gas)
	require.NoError(t, err)

	handler := queries.NewListProtectedAssetsQueryHandler(registry)
	result, err := handler.Handle(context.Background(), queries.NewListProtectedAssetsQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.ProtectedAssetResponse{{
		ID:                 "GAS-99",
		Name:               "High Pressure Gas Main",
		Owner:              "Gas Company",
		Latitude:           40.7128,
		Longitude:          -74.0060,
		SafetyBufferMeters: 50,
	}}, result)

	_, err = handler.Handle(context.Background(), queries.ListProtectedAssetsQuery{})
	require.ErrorIs(t, err, queries.ErrListProtectedAssetsQueryIsNotConstructed)
}
