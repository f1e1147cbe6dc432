package http

import (
	"context"
	"log/slog"
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// WorkOrderCreator runs the create use case.
type WorkOrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) (*workorder.WorkOrder, error)
}

// WorkOrderStatusUpdater runs the status change use case.
type WorkOrderStatusUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateWorkOrderStatusCommand) (*workorder.WorkOrder, error)
}

// WorkOrderLister runs the list query.
type WorkOrderLister interface {
	Handle(ctx context.Context, query queries.ListWorkOrdersQuery) ([]queries.WorkOrderResponse, error)
}

// WorkOrderGetter runs the get-by-id query.
type WorkOrderGetter interface {
	Handle(ctx context.Context, query queries.GetWorkOrderQuery) (queries.WorkOrderResponse, error)
}

// AssetLister runs the protected asset query.
type AssetLister interface {
	Handle(ctx context.Context, query queries.ListProtectedAssetsQuery) ([]queries.ProtectedAssetResponse, error)
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createWorkOrderHandler       WorkOrderCreator
	updateWorkOrderStatusHandler WorkOrderStatusUpdater

	// Query handlers
	listWorkOrdersHandler      WorkOrderLister
	getWorkOrderHandler        WorkOrderGetter
	listProtectedAssetsHandler AssetLister

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWorkOrderHandler WorkOrderCreator,
	updateWorkOrderStatusHandler WorkOrderStatusUpdater,
	listWorkOrdersHandler WorkOrderLister,
	getWorkOrderHandler WorkOrderGetter,
	listProtectedAssetsHandler AssetLister,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createWorkOrderHandler:       createWorkOrderHandler,
		updateWorkOrderStatusHandler: updateWorkOrderStatusHandler,
		listWorkOrdersHandler:        listWorkOrdersHandler,
		getWorkOrderHandler:          getWorkOrderHandler,
		listProtectedAssetsHandler:   listProtectedAssetsHandler,
		logger:                       logger.With("component", "http"),
	}
}

// CreateWorkOrder handles POST /api/work-orders.
// A conflict is not an error: the order is created with CONFLICT_DETECTED status.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body servers.NewWorkOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewCreateWorkOrderCommand(description, body.Latitude, body.Longitude, body.RadiusMeters)
	if err != nil {
		return s.fail(ctx, err)
	}

	wo, err := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, workOrderFromDomain(wo))
}

// ListWorkOrders handles GET /api/work-orders.
func (s *Server) ListWorkOrders(ctx echo.Context, params servers.ListWorkOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListWorkOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.listWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.WorkOrder, len(orders))
	for i, order := range orders {
		response[i] = workOrderFromResponse(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrder handles GET /api/work-orders/{id}.
func (s *Server) GetWorkOrder(ctx echo.Context, id servers.WorkOrderID) error {
	query, err := queries.NewGetWorkOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	order, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workOrderFromResponse(order))
}

// UpdateWorkOrderStatus handles PUT /api/work-orders/{id}/status.
func (s *Server) UpdateWorkOrderStatus(
	ctx echo.Context,
	id servers.WorkOrderID,
	params servers.UpdateWorkOrderStatusParams,
) error {
	cmd, err := commands.NewUpdateWorkOrderStatusCommand(id, string(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	wo, err := s.updateWorkOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workOrderFromDomain(wo))
}

// ListProtectedAssets handles GET /api/assets.
func (s *Server) ListProtectedAssets(ctx echo.Context) error {
	assets, err := s.listProtectedAssetsHandler.Handle(ctx.Request().Context(), queries.NewListProtectedAssetsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ProtectedAsset, len(assets))
	for i, a := range assets {
		response[i] = servers.ProtectedAsset{
			Id:                 a.ID,
			Name:               a.Name,
			Owner:              a.Owner,
			Latitude:           a.Latitude,
			Longitude:          a.Longitude,
			SafetyBufferMeters: a.SafetyBufferMeters,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func workOrderFromDomain(wo *workorder.WorkOrder) servers.WorkOrder {
	center := wo.Site().Center()
	return servers.WorkOrder{
		Id:             wo.ID(),
		Description:    wo.Description(),
		Latitude:       center.Latitude(),
		Longitude:      center.Longitude(),
		RadiusMeters:   wo.Site().RadiusMeters(),
		ScheduledTime:  wo.ScheduledTime(),
		Status:         servers.WorkOrderStatus(wo.Status().String()),
		ConflictReason: wo.ConflictReason(),
	}
}

func workOrderFromResponse(r queries.WorkOrderResponse) servers.WorkOrder {
	return servers.WorkOrder{
		Id:             r.ID,
		Description:    r.Description,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		RadiusMeters:   r.RadiusMeters,
		ScheduledTime:  r.ScheduledTime,
		Status:         servers.WorkOrderStatus(r.Status.String()),
		ConflictReason: r.ConflictReason,
	}
}
