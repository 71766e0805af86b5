package v1

import (
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/service"
)

// DTOToHelperModel преобразует DTO регистрации в доменную модель
func DTOToHelperModel(dto RegisterHelperRequest) models.Helper {
	return models.Helper{
		ID:      dto.ID,
		Name:    dto.Name,
		Battery: dto.Battery,
		Location: models.Location{
			Lat: dto.Latitude,
			Lng: dto.Longitude,
		},
	}
}

// ModelToHelperResponse преобразует доменную модель хелпера в DTO для ответа
func ModelToHelperResponse(model models.Helper) HelperResponse {
	return HelperResponse{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Location.Lat,
		Longitude: model.Location.Lng,
		Battery:   model.Battery,
		LastSeen:  model.LastSeen,
	}
}

// ModelsToHelperResponses преобразует слайс моделей хелперов в слайс DTO
func ModelsToHelperResponses(helpers []models.Helper) []HelperResponse {
	responses := make([]HelperResponse, len(helpers))
	for i, h := range helpers {
		responses[i] = ModelToHelperResponse(h)
	}
	return responses
}

// MatchesToHelperMatchResponses преобразует результаты подбора хелперов в DTO
func MatchesToHelperMatchResponses(matches []service.HelperMatch) []HelperMatchResponse {
	responses := make([]HelperMatchResponse, len(matches))
	for i, m := range matches {
		responses[i] = HelperMatchResponse{
			HelperResponse: ModelToHelperResponse(m.Helper),
			DistanceMeters: m.DistanceMeters,
		}
	}
	return responses
}

// DTOToHelpRequestModel преобразует DTO создания запроса в доменную модель
func DTOToHelpRequestModel(dto CreateHelpRequestRequest) models.HelpRequest {
	return models.HelpRequest{
		Location: models.Location{
			Lat: dto.Latitude,
			Lng: dto.Longitude,
		},
		EmergencyType: dto.EmergencyType,
		RequesterInfo: dto.RequesterInfo,
	}
}

// ModelToHelpRequestResponse преобразует доменную модель запроса в DTO
func ModelToHelpRequestResponse(model *models.HelpRequest) *HelpRequestResponse {
	return &HelpRequestResponse{
		ID:            model.ID,
		Latitude:      model.Location.Lat,
		Longitude:     model.Location.Lng,
		EmergencyType: model.EmergencyType,
		RequesterInfo: model.RequesterInfo,
		Status:        string(model.Status),
		CreatedAt:     model.CreatedAt,
		AcceptedBy:    model.AcceptedBy,
		AcceptedAt:    model.AcceptedAt,
	}
}

// MatchesToRequestMatchResponses преобразует результаты подбора запросов в DTO
func MatchesToRequestMatchResponses(matches []service.RequestMatch) []RequestMatchResponse {
	responses := make([]RequestMatchResponse, len(matches))
	for i, m := range matches {
		responses[i] = RequestMatchResponse{
			HelpRequestResponse: *ModelToHelpRequestResponse(&m.HelpRequest),
			DistanceMeters:      m.DistanceMeters,
		}
	}
	return responses
}

// DTOToZoneModel преобразует DTO создания зоны в доменную модель
func DTOToZoneModel(dto CreateZoneRequest) *models.AlertZone {
	return &models.AlertZone{
		Name:         dto.Name,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
		Type:         dto.Type,
	}
}

// ModelToZoneResponse преобразует доменную модель зоны в DTO
func ModelToZoneResponse(model *models.AlertZone) *ZoneResponse {
	return &ZoneResponse{
		ID:           model.ID,
		Name:         model.Name,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Type:         model.Type,
		Enabled:      model.Enabled,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToZoneResponses преобразует слайс моделей зон в слайс DTO
func ModelsToZoneResponses(zones []*models.AlertZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = ModelToZoneResponse(z)
	}
	return responses
}

// DTOToSOSModel преобразует DTO экстренного сигнала в доменную модель
func DTOToSOSModel(dto SendSOSRequest) models.SOSAlert {
	return models.SOSAlert{
		UserID:        dto.UserID,
		Message:       dto.Message,
		EmergencyType: dto.EmergencyType,
		Battery:       dto.Battery,
		Location: models.LocationSample{
			Lat:       dto.Latitude,
			Lng:       dto.Longitude,
			AccuracyM: dto.AccuracyM,
		},
	}
}

// DeliveryResultToResponse преобразует итог доставки в DTO
func DeliveryResultToResponse(result service.DeliveryResult) DeliveryResultResponse {
	return DeliveryResultResponse{
		Delivered: result.Delivered,
		Queued:    result.Queued,
		Reason:    result.Reason,
	}
}

// DTOToMedicalInfoModel преобразует DTO медицинского профиля в доменную модель
func DTOToMedicalInfoModel(dto SaveMedicalInfoRequest) *models.MedicalInfo {
	return &models.MedicalInfo{
		UserID:     dto.UserID,
		BloodType:  dto.BloodType,
		Allergies:  dto.Allergies,
		Medication: dto.Medication,
		Conditions: dto.Conditions,
		Notes:      dto.Notes,
	}
}

// ModelToMedicalInfoResponse преобразует модель медицинского профиля в DTO
func ModelToMedicalInfoResponse(model *models.MedicalInfo) *MedicalInfoResponse {
	return &MedicalInfoResponse{
		UserID:     model.UserID,
		BloodType:  model.BloodType,
		Allergies:  model.Allergies,
		Medication: model.Medication,
		Conditions: model.Conditions,
		Notes:      model.Notes,
		UpdatedAt:  model.UpdatedAt,
	}
}

// DTOToContactModel преобразует DTO контакта в доменную модель
func DTOToContactModel(dto SaveContactRequest) *models.EmergencyContact {
	return &models.EmergencyContact{
		UserID:   dto.UserID,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Relation: dto.Relation,
		Priority: dto.Priority,
	}
}

// ModelToContactResponse преобразует модель контакта в DTO
func ModelToContactResponse(model *models.EmergencyContact) *ContactResponse {
	return &ContactResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Phone:     model.Phone,
		Relation:  model.Relation,
		Priority:  model.Priority,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToContactResponses преобразует слайс моделей контактов в слайс DTO
func ModelsToContactResponses(contacts []*models.EmergencyContact) []*ContactResponse {
	responses := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = ModelToContactResponse(c)
	}
	return responses
}
