package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"tourdispatch/internal/core/application/usecases/commands"
	"tourdispatch/internal/core/application/usecases/queries"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/generated/servers"
	"tourdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/metric"
)

type (
	ToggleOrderHandler interface {
		Handle(ctx context.Context, command commands.ToggleOrderCommand) (bool, error)
	}
	AssignDriverHandler interface {
		Handle(ctx context.Context, command commands.AssignDriverCommand) error
	}
	AssignVehicleHandler interface {
		Handle(ctx context.Context, command commands.AssignVehicleCommand) error
	}
	OptimizeRouteHandler interface {
		Handle(ctx context.Context, command commands.OptimizeRouteCommand) ([]string, error)
	}
	SetIncludeReturnsHandler interface {
		Handle(ctx context.Context, command commands.SetIncludeReturnsCommand) error
	}
	ValidateTourHandler interface {
		Handle(ctx context.Context, command commands.ValidateTourCommand) error
	}
	SetStopStatusHandler interface {
		Handle(ctx context.Context, command commands.SetStopStatusCommand) error
	}
	CloseTourHandler interface {
		Handle(ctx context.Context, command commands.CloseTourCommand) error
	}
	ReopenTourHandler interface {
		Handle(ctx context.Context, command commands.ReopenTourCommand) error
	}

	GetToursHandler interface {
		Handle(ctx context.Context, query queries.GetToursQuery) ([]queries.TourView, error)
	}
	GetClustersHandler interface {
		Handle(ctx context.Context, query queries.GetClustersQuery) ([]queries.ClusterView, error)
	}
	GetStopPlansHandler interface {
		Handle(ctx context.Context, query queries.GetStopPlansQuery) ([]queries.StopPlanView, error)
	}
)

// Handlers groups the use cases served over HTTP. Every field is required.
type Handlers struct {
	ToggleOrder       ToggleOrderHandler
	AssignDriver      AssignDriverHandler
	AssignVehicle     AssignVehicleHandler
	OptimizeRoute     OptimizeRouteHandler
	SetIncludeReturns SetIncludeReturnsHandler
	ValidateTour      ValidateTourHandler
	SetStopStatus     SetStopStatusHandler
	CloseTour         CloseTourHandler
	ReopenTour        ReopenTourHandler

	GetTours     GetToursHandler
	GetClusters  GetClustersHandler
	GetStopPlans GetStopPlansHandler
}

func (h Handlers) validate() error {
	required := map[string]any{
		"toggle order handler":        h.ToggleOrder,
		"assign driver handler":       h.AssignDriver,
		"assign vehicle handler":      h.AssignVehicle,
		"optimize route handler":      h.OptimizeRoute,
		"set include returns handler": h.SetIncludeReturns,
		"validate tour handler":       h.ValidateTour,
		"set stop status handler":     h.SetStopStatus,
		"close tour handler":          h.CloseTour,
		"reopen tour handler":         h.ReopenTour,
		"get tours handler":           h.GetTours,
		"get clusters handler":        h.GetClusters,
		"get stop plans handler":      h.GetStopPlans,
	}
	var missing []error
	for name, handler := range required {
		if handler == nil {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(missing...)
}

// Server implements servers.ServerInterface on top of the tour use cases.
type Server struct {
	handlers   Handlers
	logger     *slog.Logger
	rejections metric.Int64Counter
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger, meter metric.Meter) (*Server, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if meter == nil {
		return nil, errs.NewValueIsRequiredError("meter")
	}

	rejections, err := meter.Int64Counter(
		"tourdispatch.tour.rejections",
		metric.WithDescription("Tour operations rejected by a business rule, by reason"),
	)
	if err != nil {
		return nil, err
	}

	return &Server{
		handlers:   handlers,
		logger:     logger.With("component", "http"),
		rejections: rejections,
	}, nil
}

// GetTours handles GET /api/v1/tours - lists the tours of a date or week.
func (s *Server) GetTours(ctx echo.Context, params servers.GetToursParams) error {
	query, err := queries.NewGetToursQuery(dateOf(params.Date), lo.FromPtr(params.Week), lo.FromPtr(params.City))
	if err != nil {
		return s.fail(ctx, err)
	}

	tours, err := s.handlers.GetTours.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Tour, 0, len(tours))
	for _, view := range tours {
		date, err := kernel.ParseDate(view.Date)
		if err != nil {
			return s.fail(ctx, err)
		}
		response = append(response, servers.Tour{
			City:           view.City,
			Date:           openapi_types.Date{Time: date.Time()},
			DriverId:       lo.EmptyableToPtr(view.DriverID),
			VehicleId:      lo.EmptyableToPtr(view.VehicleID),
			Lifecycle:      servers.TourLifecycle(view.Lifecycle),
			IncludeReturns: view.IncludeReturns,
			Stops: lo.Map(view.Stops, func(stop queries.StopView, _ int) servers.Stop {
				return servers.Stop{
					OrderId:    stop.OrderID,
					Customer:   stop.Customer,
					Address:    stop.Address,
					PostalCode: stop.PostalCode,
					Status:     servers.StopStatus(stop.Status),
				}
			}),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClusters handles GET /api/v1/clusters - groups candidate orders by city.
func (s *Server) GetClusters(ctx echo.Context, params servers.GetClustersParams) error {
	query, err := queries.NewGetClustersQuery(dateOf(params.Date), lo.FromPtr(params.Week), lo.FromPtr(params.City))
	if err != nil {
		return s.fail(ctx, err)
	}

	clusters, err := s.handlers.GetClusters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := lo.Map(clusters, func(c queries.ClusterView, _ int) servers.Cluster {
		return servers.Cluster{
			City: c.City,
			Orders: lo.Map(c.Orders, func(o queries.OrderView, _ int) servers.ClusterOrder {
				var deliveryDate *openapi_types.Date
				if d, err := kernel.ParseDate(o.DeliveryDate); err == nil {
					deliveryDate = &openapi_types.Date{Time: d.Time()}
				}
				return servers.ClusterOrder{
					Id:           o.ID,
					Customer:     o.Customer,
					Address:      o.Address,
					PostalCode:   o.PostalCode,
					DeliveryDate: deliveryDate,
					Volume:       float32(o.Volume),
					Lat:          float32(o.Lat),
					Lng:          float32(o.Lng),
				}
			}),
		}
	})

	return ctx.JSON(http.StatusOK, response)
}

// GetTourPlan handles GET /api/v1/tours/{date}/{city}/plan - returns the stored schedule.
func (s *Server) GetTourPlan(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	query, err := queries.NewGetStopPlansQuery(city, dateOf(date))
	if err != nil {
		return s.fail(ctx, err)
	}

	plans, err := s.handlers.GetStopPlans.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := lo.Map(plans, func(p queries.StopPlanView, _ int) servers.StopPlan {
		return servers.StopPlan{
			Sequence:    p.Sequence,
			OrderId:     p.OrderID,
			WindowStart: p.WindowStart,
			WindowEnd:   p.WindowEnd,
			Eta:         p.ETA,
			Late:        p.Late,
			DriverId:    p.DriverID,
			VehicleId:   p.VehicleID,
		}
	})

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles PUT /api/v1/tours/{date}/{city}/driver.
func (s *Server) AssignDriver(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	var body servers.AssignDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignDriverCommand(city, dateOf(date), body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignVehicle handles PUT /api/v1/tours/{date}/{city}/vehicle.
func (s *Server) AssignVehicle(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	var body servers.AssignVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignVehicleCommand(city, dateOf(date), body.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AssignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleOrder handles POST /api/v1/tours/{date}/{city}/orders/{orderId}/toggle.
func (s *Server) ToggleOrder(
	ctx echo.Context,
	date openapi_types.Date,
	city servers.CityPath,
	orderID servers.OrderIdPath,
) error {
	cmd, err := commands.NewToggleOrderCommand(city, dateOf(date), orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	added, err := s.handlers.ToggleOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ToggleResult{OrderId: cmd.OrderID(), Added: added})
}

// OptimizeRoute handles POST /api/v1/tours/{date}/{city}/optimize.
func (s *Server) OptimizeRoute(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	cmd, err := commands.NewOptimizeRouteCommand(city, dateOf(date))
	if err != nil {
		return s.fail(ctx, err)
	}

	route, err := s.handlers.OptimizeRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RouteResult{OrderIds: route})
}

// SetIncludeReturns handles PUT /api/v1/tours/{date}/{city}/returns.
func (s *Server) SetIncludeReturns(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	var body servers.SetIncludeReturnsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetIncludeReturnsCommand(city, dateOf(date), body.IncludeReturns)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SetIncludeReturns.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateTour handles POST /api/v1/tours/{date}/{city}/validate.
func (s *Server) ValidateTour(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	cmd, err := commands.NewValidateTourCommand(city, dateOf(date))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ValidateTour.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetStopStatus handles PUT /api/v1/tours/{date}/{city}/stops/{orderId}/status.
func (s *Server) SetStopStatus(
	ctx echo.Context,
	date openapi_types.Date,
	city servers.CityPath,
	orderID servers.OrderIdPath,
) error {
	var body servers.SetStopStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := tour.ParseDeliveryStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetStopStatusCommand(city, dateOf(date), orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SetStopStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseTour handles POST /api/v1/tours/{date}/{city}/close.
func (s *Server) CloseTour(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	cmd, err := commands.NewCloseTourCommand(city, dateOf(date))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CloseTour.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReopenTour handles POST /api/v1/tours/{date}/{city}/reopen.
func (s *Server) ReopenTour(ctx echo.Context, date openapi_types.Date, city servers.CityPath) error {
	cmd, err := commands.NewReopenTourCommand(city, dateOf(date))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ReopenTour.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func dateOf(d openapi_types.Date) kernel.Date {
	return kernel.DateOf(d.Time)
}
