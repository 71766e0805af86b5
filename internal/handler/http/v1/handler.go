package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/helper_network/internal/config"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/service"
	"github.com/sirupsen/logrus"
)

// SyncQueue определяет контракт очереди синхронизации для HTTP-слоя
type SyncQueue interface {
	Len(ctx context.Context) (int64, error)
	Online() bool
	SetOnline(ctx context.Context, online bool)
}

type Handler struct {
	matcherService  service.MatcherService
	geofenceService service.GeofenceService
	alertService    service.AlertService
	profileService  service.ProfileService
	notifier        *service.AlertNotifier
	syncQueue       SyncQueue
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	matcherService service.MatcherService,
	geofenceService service.GeofenceService,
	alertService service.AlertService,
	profileService service.ProfileService,
	notifier *service.AlertNotifier,
	syncQueue SyncQueue,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		matcherService:  matcherService,
		geofenceService: geofenceService,
		alertService:    alertService,
		profileService:  profileService,
		notifier:        notifier,
		syncQueue:       syncQueue,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Register a helper
// @Description Register a helper in the shared pool or refresh its presence (heartbeat). Requires API key.
// @Tags Helpers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param helper body RegisterHelperRequest true "Helper registration request"
// @Success 200 {array} HelperResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helpers [post]
func (h *Handler) registerHelper(c *gin.Context) {
	var input RegisterHelperRequest
	log := h.logger.WithField("method", "registerHelper")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	helpers, err := h.matcherService.RegisterHelper(c.Request.Context(), DTOToHelperModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to register helper in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToHelperResponses(helpers))
}

// @Summary Unregister a helper
// @Description Remove a helper from the available pool. Requires API key.
// @Tags Helpers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Helper ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helpers/{id} [delete]
func (h *Handler) unregisterHelper(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "unregisterHelper").WithField("id", id)

	if err := h.matcherService.UnregisterHelper(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to unregister helper in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Find nearby helpers
// @Description Find live helpers within a radius of a point, nearest first. Requires API key.
// @Tags Helpers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_m query number false "Search radius in meters"
// @Success 200 {array} HelperMatchResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helpers/nearby [get]
func (h *Handler) findNearbyHelpers(c *gin.Context) {
	log := h.logger.WithField("method", "findNearbyHelpers")

	loc, radius, ok := parseNearbyQuery(c)
	if !ok {
		log.Warn("Invalid nearby query parameters")
		return
	}

	matches, err := h.matcherService.FindNearbyHelpers(c.Request.Context(), loc, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby helpers in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MatchesToHelperMatchResponses(matches))
}

// @Summary Create a help request
// @Description Create a pending help request visible to nearby helpers. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateHelpRequestRequest true "Help request creation request"
// @Success 201 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) createHelpRequest(c *gin.Context) {
	var input CreateHelpRequestRequest
	log := h.logger.WithField("method", "createHelpRequest")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.matcherService.CreateRequest(c.Request.Context(), DTOToHelpRequestModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to create help request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToHelpRequestResponse(created))
}

// @Summary Find nearby help requests
// @Description Find pending help requests within a radius of a helper, nearest first. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_m query number false "Search radius in meters"
// @Success 200 {array} RequestMatchResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/nearby [get]
func (h *Handler) findNearbyRequests(c *gin.Context) {
	log := h.logger.WithField("method", "findNearbyRequests")

	loc, radius, ok := parseNearbyQuery(c)
	if !ok {
		log.Warn("Invalid nearby query parameters")
		return
	}

	matches, err := h.matcherService.FindNearbyRequests(c.Request.Context(), loc, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby requests in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MatchesToRequestMatchResponses(matches))
}

// @Summary Accept a help request
// @Description Atomically accept a pending help request. Exactly one helper wins a race; losers get 409. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param accept body AcceptRequestRequest true "Accept request"
// @Success 200 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Request no longer available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id}/accept [post]
func (h *Handler) acceptHelpRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acceptHelpRequest").WithField("id", id)

	var input AcceptRequestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accepted, err := h.matcherService.AcceptRequest(c.Request.Context(), id, input.HelperID)
	if err != nil {
		log.WithError(err).Error("Failed to accept help request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if accepted == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "request no longer available"})
		return
	}
	c.JSON(http.StatusOK, ModelToHelpRequestResponse(accepted))
}

// @Summary Complete a help request
// @Description Complete a help request, removing it permanently. Completing an unknown ID is a no-op. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id}/complete [post]
func (h *Handler) completeHelpRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "completeHelpRequest").WithField("id", id)

	if err := h.matcherService.CompleteRequest(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to complete help request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create an alert zone
// @Description Create a circular alert zone. Radius defaults to 1000 m. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone := DTOToZoneModel(input)
	if err := h.geofenceService.AddZone(c.Request.Context(), zone); err != nil {
		log.WithError(err).Error("Failed to create zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(zone))
}

// @Summary Get a list of alert zones
// @Description Get all alert zones, including disabled ones. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.geofenceService.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Enable or disable an alert zone
// @Description Toggle an alert zone without deleting it. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Param toggle body ToggleZoneRequest true "Toggle request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [patch]
func (h *Handler) toggleZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "toggleZone").WithField("id", id)

	var input ToggleZoneRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.geofenceService.SetZoneEnabled(c.Request.Context(), id, *input.Enabled); err != nil {
		log.WithError(err).Error("Failed to toggle zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Check location against alert zones
// @Description Check coordinates against all enabled zones. Each containment is reported; the notified flag shows whether the notifier raised an alert or suppressed it. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {array} TriggeredZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	triggered, err := h.geofenceService.CheckLocation(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	responses := make([]TriggeredZoneResponse, len(triggered))
	for i, zone := range triggered {
		result := h.notifier.Notify(zone)
		responses[i] = TriggeredZoneResponse{
			ZoneResponse:   *ModelToZoneResponse(&zone.AlertZone),
			DistanceMeters: zone.DistanceMeters,
			Notified:       result.Success,
			NotifyReason:   result.Reason,
		}
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Request notification permission
// @Description Start the notification permission flow. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PermissionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/permission/request [post]
func (h *Handler) requestPermission(c *gin.Context) {
	permission := h.notifier.RequestPermission()
	c.JSON(http.StatusOK, PermissionResponse{Permission: string(permission)})
}

// @Summary Resolve notification permission
// @Description Record the user's answer to the permission request. The resolved state is terminal. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resolve body ResolvePermissionRequest true "Permission resolution"
// @Success 200 {object} PermissionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/permission [post]
func (h *Handler) resolvePermission(c *gin.Context) {
	var input ResolvePermissionRequest
	log := h.logger.WithField("method", "resolvePermission")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permission := h.notifier.ResolvePermission(*input.Granted)
	c.JSON(http.StatusOK, PermissionResponse{Permission: string(permission)})
}

// @Summary Send an SOS alert
// @Description Send an emergency SOS alert. Delivered immediately when online, queued for sync otherwise. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body SendSOSRequest true "SOS alert request"
// @Success 202 {object} DeliveryResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts/sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input SendSOSRequest
	log := h.logger.WithField("method", "sendSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.alertService.SendSOS(c.Request.Context(), DTOToSOSModel(input))
	c.JSON(http.StatusAccepted, DeliveryResultToResponse(result))
}

// @Summary Save medical info
// @Description Save the user's medical profile locally and sync it outward. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param info body SaveMedicalInfoRequest true "Medical info request"
// @Success 200 {object} DeliveryResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/medical [put]
func (h *Handler) saveMedicalInfo(c *gin.Context) {
	var input SaveMedicalInfoRequest
	log := h.logger.WithField("method", "saveMedicalInfo")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.profileService.SaveMedicalInfo(c.Request.Context(), DTOToMedicalInfoModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to save medical info in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DeliveryResultToResponse(result))
}

// @Summary Get medical info
// @Description Get the user's medical profile. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} MedicalInfoResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Medical info not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/medical/{user_id} [get]
func (h *Handler) getMedicalInfo(c *gin.Context) {
	userID := c.Param("user_id")
	log := h.logger.WithField("method", "getMedicalInfo").WithField("user_id", userID)

	info, err := h.profileService.GetMedicalInfo(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get medical info from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "medical info not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToMedicalInfoResponse(info))
}

// @Summary Save an emergency contact
// @Description Save an emergency contact locally and sync it outward. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contact body SaveContactRequest true "Contact request"
// @Success 200 {object} DeliveryResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/contacts [post]
func (h *Handler) saveContact(c *gin.Context) {
	var input SaveContactRequest
	log := h.logger.WithField("method", "saveContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.profileService.SaveContact(c.Request.Context(), DTOToContactModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to save contact in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DeliveryResultToResponse(result))
}

// @Summary List emergency contacts
// @Description List the user's emergency contacts by priority. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Success 200 {array} ContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/contacts/{user_id} [get]
func (h *Handler) listContacts(c *gin.Context) {
	userID := c.Param("user_id")
	log := h.logger.WithField("method", "listContacts").WithField("user_id", userID)

	contacts, err := h.profileService.ListContacts(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Delete an emergency contact
// @Description Delete one of the user's emergency contacts. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Param id path int true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid contact ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/contacts/{user_id}/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	userID := c.Param("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "deleteContact").WithField("user_id", userID)

	if err := h.profileService.DeleteContact(c.Request.Context(), userID, id); err != nil {
		log.WithError(err).Error("Failed to delete contact in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get sync queue status
// @Description Get the network state and the number of pending sync operations. Requires API key.
// @Tags Sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SyncStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sync/status [get]
func (h *Handler) syncStatus(c *gin.Context) {
	log := h.logger.WithField("method", "syncStatus")

	pending, err := h.syncQueue.Len(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get sync queue length")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, SyncStatusResponse{
		Online:  h.syncQueue.Online(),
		Pending: pending,
	})
}

// @Summary Set network state
// @Description Flip the sync queue between online and offline. Going online triggers a drain of queued operations. Requires API key.
// @Tags Sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state body SetOnlineRequest true "Network state"
// @Success 200 {object} SyncStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sync/online [put]
func (h *Handler) setOnline(c *gin.Context) {
	var input SetOnlineRequest
	log := h.logger.WithField("method", "setOnline")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.syncQueue.SetOnline(c.Request.Context(), *input.Online)

	pending, err := h.syncQueue.Len(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Failed to get sync queue length after state change")
	}
	c.JSON(http.StatusOK, SyncStatusResponse{
		Online:  h.syncQueue.Online(),
		Pending: pending,
	})
}

// @Summary Get user statistics
// @Description Get the count of unique users checked within the stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.geofenceService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseNearbyQuery разбирает общие query-параметры поиска по близости.
// При ошибке сам пишет 400 в ответ и возвращает ok=false.
func parseNearbyQuery(c *gin.Context) (models.Location, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return models.Location{}, 0, false
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lng"})
		return models.Location{}, 0, false
	}

	radius := 0.0
	if raw := c.Query("radius_m"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_m"})
			return models.Location{}, 0, false
		}
	}
	return models.Location{Lat: lat, Lng: lng}, radius, true
}
