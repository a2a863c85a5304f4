// Package http exposes the freight board over a JSON API.
//
// Actor identity arrives in the X-User-Id header and the actor's role in
// X-User-Role; an API gateway in front of this service is expected to have
// authenticated both. Endpoints are role-specific: business endpoints
// refuse truckers and vice versa.
package http

import (
	"net/http"
	"strconv"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server implements the HTTP surface of the freight board. It coordinates
// between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	postLoadHandler            commands.PostLoadCommandHandler
	claimLoadHandler           commands.ClaimLoadCommandHandler
	assignLoadHandler          commands.AssignLoadCommandHandler
	cancelLoadHandler          commands.CancelLoadCommandHandler
	pickupLoadHandler          commands.PickupLoadCommandHandler
	deliverLoadHandler         commands.DeliverLoadCommandHandler
	closeLoadHandler           commands.CloseLoadCommandHandler
	registerHaulerHandler      commands.RegisterHaulerCommandHandler
	updateHaulerProfileHandler commands.UpdateHaulerProfileCommandHandler

	// Query handlers
	getMyLoadsHandler        queries.GetMyLoadsQueryHandler
	getAvailableLoadsHandler queries.GetAvailableLoadsQueryHandler
	getMyJobsHandler         queries.GetMyJobsQueryHandler
	getLoadDetailsHandler    queries.GetLoadDetailsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	postLoadHandler commands.PostLoadCommandHandler,
	claimLoadHandler commands.ClaimLoadCommandHandler,
	assignLoadHandler commands.AssignLoadCommandHandler,
	cancelLoadHandler commands.CancelLoadCommandHandler,
	pickupLoadHandler commands.PickupLoadCommandHandler,
	deliverLoadHandler commands.DeliverLoadCommandHandler,
	closeLoadHandler commands.CloseLoadCommandHandler,
	registerHaulerHandler commands.RegisterHaulerCommandHandler,
	updateHaulerProfileHandler commands.UpdateHaulerProfileCommandHandler,
	getMyLoadsHandler queries.GetMyLoadsQueryHandler,
	getAvailableLoadsHandler queries.GetAvailableLoadsQueryHandler,
	getMyJobsHandler queries.GetMyJobsQueryHandler,
	getLoadDetailsHandler queries.GetLoadDetailsQueryHandler,
) *Server {
	return &Server{
		postLoadHandler:            postLoadHandler,
		claimLoadHandler:           claimLoadHandler,
		assignLoadHandler:          assignLoadHandler,
		cancelLoadHandler:          cancelLoadHandler,
		pickupLoadHandler:          pickupLoadHandler,
		deliverLoadHandler:         deliverLoadHandler,
		closeLoadHandler:           closeLoadHandler,
		registerHaulerHandler:      registerHaulerHandler,
		updateHaulerProfileHandler: updateHaulerProfileHandler,
		getMyLoadsHandler:          getMyLoadsHandler,
		getAvailableLoadsHandler:   getAvailableLoadsHandler,
		getMyJobsHandler:           getMyJobsHandler,
		getLoadDetailsHandler:      getLoadDetailsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/loads", s.PostLoad)
	v1.GET("/loads", s.GetMyLoads)
	v1.GET("/loads/available", s.GetAvailableLoads)
	v1.GET("/loads/:id", s.GetLoadDetails)
	v1.POST("/loads/:id/claim", s.ClaimLoad)
	v1.POST("/loads/:id/assign", s.AssignLoad)
	v1.POST("/loads/:id/cancel", s.CancelLoad)
	v1.POST("/loads/:id/pickup", s.PickupLoad)
	v1.POST("/loads/:id/deliver", s.DeliverLoad)
	v1.POST("/loads/:id/close", s.CloseLoad)

	v1.POST("/haulers", s.RegisterHauler)
	v1.PUT("/haulers/profile", s.UpdateHaulerProfile)
	v1.GET("/haulers/jobs", s.GetMyJobs)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actor extracts and validates the caller's identity and role headers.
func actor(ctx echo.Context, required kernel.Role) (kernel.UUID, error) {
	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.UUID{}, err
	}
	if role != required {
		return kernel.UUID{}, errs.NewNotAuthorizedError(
			ctx.Request().Header.Get(headerUserID), "act as "+required.String())
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(headerUserID, err)
	}

	return id, nil
}

func loadIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// PostLoad handles POST /api/v1/loads.
func (s *Server) PostLoad(ctx echo.Context) error {
	businessID, err := actor(ctx, kernel.RoleBusiness)
	if err != nil {
		return writeError(ctx, err)
	}

	var request PostLoadRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	details, err := request.toDetails()
	if err != nil {
		return writeError(ctx, err)
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewPostLoadCommand(loadID, businessID, details)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.postLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": loadID.String()})
}

// GetMyLoads handles GET /api/v1/loads.
func (s *Server) GetMyLoads(ctx echo.Context) error {
	businessID, err := actor(ctx, kernel.RoleBusiness)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMyLoadsQuery(businessID)
	if err != nil {
		return writeError(ctx, err)
	}

	loads, err := s.getMyLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(loads))
}

// GetAvailableLoads handles GET /api/v1/loads/available.
func (s *Server) GetAvailableLoads(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	radiusKm, limit, err := boardParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAvailableLoadsQuery(haulerID, radiusKm, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	loads, err := s.getAvailableLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(loads))
}

// GetMyJobs handles GET /api/v1/haulers/jobs.
func (s *Server) GetMyJobs(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMyJobsQuery(haulerID)
	if err != nil {
		return writeError(ctx, err)
	}

	loads, err := s.getMyJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(loads))
}

// GetLoadDetails handles GET /api/v1/loads/:id.
func (s *Server) GetLoadDetails(ctx echo.Context) error {
	requesterID, err := anyActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetLoadDetailsQuery(loadID, requesterID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getLoadDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detailsToResponse(details))
}

// ClaimLoad handles POST /api/v1/loads/:id/claim.
func (s *Server) ClaimLoad(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimLoadCommand(loadID, haulerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignLoad handles POST /api/v1/loads/:id/assign.
func (s *Server) AssignLoad(ctx echo.Context) error {
	businessID, err := actor(ctx, kernel.RoleBusiness)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignLoadCommand(loadID, businessID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelLoad handles POST /api/v1/loads/:id/cancel.
func (s *Server) CancelLoad(ctx echo.Context) error {
	businessID, err := actor(ctx, kernel.RoleBusiness)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelLoadCommand(loadID, businessID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupLoad handles POST /api/v1/loads/:id/pickup.
func (s *Server) PickupLoad(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickupLoadCommand(loadID, haulerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.pickupLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverLoad handles POST /api/v1/loads/:id/deliver.
func (s *Server) DeliverLoad(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverLoadCommand(loadID, haulerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseLoad handles POST /api/v1/loads/:id/close.
func (s *Server) CloseLoad(ctx echo.Context) error {
	businessID, err := actor(ctx, kernel.RoleBusiness)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := loadIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCloseLoadCommand(loadID, businessID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.closeLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterHauler handles POST /api/v1/haulers.
func (s *Server) RegisterHauler(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	var request RegisterHaulerRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterHaulerCommand(haulerID, request.VehicleType, request.Capacity, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerHaulerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateHaulerProfile handles PUT /api/v1/haulers/profile.
func (s *Server) UpdateHaulerProfile(ctx echo.Context) error {
	haulerID, err := actor(ctx, kernel.RoleTrucker)
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateHaulerProfileRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var location *kernel.GeoPoint
	if request.Lat != nil && request.Lng != nil {
		point, pointErr := kernel.NewGeoPoint(*request.Lat, *request.Lng)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}
		location = &point
	}

	cmd, err := commands.NewUpdateHaulerProfileCommand(haulerID, request.Capacity, location, request.Online)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateHaulerProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// anyActor accepts either role; authorization below the HTTP layer decides
// whether this particular actor may see the load.
func anyActor(ctx echo.Context) (kernel.UUID, error) {
	if _, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole)); err != nil {
		return kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(headerUserID, err)
	}

	return id, nil
}

func boardParams(ctx echo.Context) (float64, int, error) {
	var radiusKm float64
	var limit int

	if raw := ctx.QueryParam("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("radius_km", err)
		}
		radiusKm = parsed
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = parsed
	}

	return radiusKm, limit, nil
}

// PostLoadRequest is the body of POST /api/v1/loads.
type PostLoadRequest struct {
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	OriginLat           *float64 `json:"origin_lat,omitempty"`
	OriginLng           *float64 `json:"origin_lng,omitempty"`
	DestinationLat      *float64 `json:"destination_lat,omitempty"`
	DestinationLng      *float64 `json:"destination_lng,omitempty"`
	CargoType           string   `json:"cargo_type"`
	Weight              float64  `json:"weight"`
	Price               float64  `json:"price"`
	VehicleTypeRequired string   `json:"vehicle_type_required"`
	Mode                string   `json:"mode"`
	PickupDate          string   `json:"pickup_date"`
}

func (r PostLoadRequest) toDetails() (load.Details, error) {
	mode, err := load.ModeFromString(r.Mode)
	if err != nil {
		return load.Details{}, err
	}

	pickupDate, err := time.Parse(time.RFC3339, r.PickupDate)
	if err != nil {
		return load.Details{}, errs.NewValueIsInvalidErrorWithCause("pickup_date", err)
	}

	details := load.Details{
		Origin:              r.Origin,
		Destination:         r.Destination,
		CargoType:           r.CargoType,
		Weight:              r.Weight,
		Price:               r.Price,
		VehicleTypeRequired: r.VehicleTypeRequired,
		Mode:                mode,
		PickupDate:          pickupDate,
	}

	if r.OriginLat != nil && r.OriginLng != nil {
		point, pointErr := kernel.NewGeoPoint(*r.OriginLat, *r.OriginLng)
		if pointErr != nil {
			return load.Details{}, pointErr
		}
		details.OriginPoint = &point
	}
	if r.DestinationLat != nil && r.DestinationLng != nil {
		point, pointErr := kernel.NewGeoPoint(*r.DestinationLat, *r.DestinationLng)
		if pointErr != nil {
			return load.Details{}, pointErr
		}
		details.DestinationPoint = &point
	}

	return details, nil
}

// RegisterHaulerRequest is the body of POST /api/v1/haulers.
type RegisterHaulerRequest struct {
	VehicleType string  `json:"vehicle_type"`
	Capacity    float64 `json:"capacity"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// UpdateHaulerProfileRequest is the body of PUT /api/v1/haulers/profile.
// Omitted fields are left unchanged.
type UpdateHaulerProfileRequest struct {
	Capacity *float64 `json:"capacity,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Online   *bool    `json:"online,omitempty"`
}

// LoadSummaryResponse is one row of a load listing.
type LoadSummaryResponse struct {
	ID                  string  `json:"id"`
	Origin              string  `json:"origin"`
	Destination         string  `json:"destination"`
	CargoType           string  `json:"cargo_type"`
	Weight              float64 `json:"weight"`
	Price               float64 `json:"price"`
	VehicleTypeRequired string  `json:"vehicle_type_required"`
	Mode                string  `json:"mode"`
	Status              string  `json:"status"`
	AssignedTo          *string `json:"assigned_to,omitempty"`
	PickupDate          string  `json:"pickup_date"`
	CreatedAt           string  `json:"created_at"`
}

func summariesToResponse(summaries []queries.LoadSummary) []LoadSummaryResponse {
	response := make([]LoadSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = summaryToResponse(summary)
	}
	return response
}

func summaryToResponse(summary queries.LoadSummary) LoadSummaryResponse {
	var assignedTo *string
	if summary.AssignedTo != nil {
		value := summary.AssignedTo.String()
		assignedTo = &value
	}

	return LoadSummaryResponse{
		ID:                  summary.ID.String(),
		Origin:              summary.Origin,
		Destination:         summary.Destination,
		CargoType:           summary.CargoType,
		Weight:              summary.Weight,
		Price:               summary.Price,
		VehicleTypeRequired: summary.VehicleTypeRequired,
		Mode:                summary.Mode.String(),
		Status:              summary.Status.String(),
		AssignedTo:          assignedTo,
		PickupDate:          summary.PickupDate.Format(time.RFC3339),
		CreatedAt:           summary.CreatedAt.Format(time.RFC3339),
	}
}

// HistoryEntryJSON is one transition in a load's audit trail.
type HistoryEntryJSON struct {
	Status    string `json:"status"`
	ActorID   string `json:"actor_id"`
	Timestamp string `json:"timestamp"`
}

// LoadDetailsResponse is the body of GET /api/v1/loads/:id.
type LoadDetailsResponse struct {
	LoadSummaryResponse
	CreatedBy   string             `json:"created_by"`
	PickedUpAt  *string            `json:"picked_up_at,omitempty"`
	DeliveredAt *string            `json:"delivered_at,omitempty"`
	History     []HistoryEntryJSON `json:"history"`
}

func detailsToResponse(details queries.GetLoadDetailsQueryResponse) LoadDetailsResponse {
	response := LoadDetailsResponse{
		LoadSummaryResponse: summaryToResponse(details.LoadSummary),
		CreatedBy:           details.CreatedBy.String(),
		History:             make([]HistoryEntryJSON, 0, len(details.History)),
	}

	if details.PickedUpAt != nil {
		value := details.PickedUpAt.Format(time.RFC3339)
		response.PickedUpAt = &value
	}
	if details.DeliveredAt != nil {
		value := details.DeliveredAt.Format(time.RFC3339)
		response.DeliveredAt = &value
	}

	for _, entry := range details.History {
		response.History = append(response.History, HistoryEntryJSON{
			Status:    entry.Status.String(),
			ActorID:   entry.ActorID.String(),
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		})
	}

	return response
}
