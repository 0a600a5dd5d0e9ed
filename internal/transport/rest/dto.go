package rest

import (
	"time"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/classify"
)

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type usageResponse struct {
	CollectionPoints int `json:"collectionPoints"`
	Events           int `json:"events"`
	Total            int `json:"total"`
}

type categoryWithUsageResponse struct {
	categoryResponse
	Usage usageResponse `json:"usage"`
}

type matchResponse struct {
	Category   categoryResponse `json:"category"`
	Method     string           `json:"method"`
	Similarity float64          `json:"similarity"`
	Confidence float64          `json:"confidence"`
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ownerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type collectionPointResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Address        string             `json:"address"`
	Contact        *string            `json:"contact"`
	OpeningHours   *string            `json:"openingHours"`
	Location       locationResponse   `json:"location"`
	Owner          ownerResponse      `json:"owner"`
	Categories     []categoryResponse `json:"categories"`
	DistanceMeters *int               `json:"distanceMeters,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type eventResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	StartAt          time.Time          `json:"startAt"`
	EndAt            time.Time          `json:"endAt"`
	Location         locationResponse   `json:"location"`
	Owner            ownerResponse      `json:"owner"`
	Categories       []categoryResponse `json:"categories"`
	ParticipantCount int                `json:"participantCount"`
	DistanceMeters   *int               `json:"distanceMeters,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type participantResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func toPageResponse[S, T any](p domain.Page[S], convert func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, item := range p.Items {
		items[i] = convert(item)
	}
	return pageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name, CreatedAt: c.CreatedAt}
}

func toCategoryResponses(cs []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cs))
	for i, c := range cs {
		out[i] = toCategoryResponse(c)
	}
	return out
}

func toCategoryWithUsageResponse(c domain.CategoryWithUsage) categoryWithUsageResponse {
	return categoryWithUsageResponse{
		categoryResponse: toCategoryResponse(c.Category),
		Usage: usageResponse{
			CollectionPoints: c.Usage.CollectionPoints,
			Events:           c.Usage.Events,
			Total:            c.Usage.Total(),
		},
	}
}

func toMatchResponse(r *classify.Result) matchResponse {
	return matchResponse{
		Category:   toCategoryResponse(r.Category),
		Method:     string(r.Method),
		Similarity: r.Similarity,
		Confidence: r.Confidence,
	}
}

func toOwnerResponse(o domain.OwnerSummary) ownerResponse {
	return ownerResponse{ID: o.ID.String(), Name: o.Name, AvatarURL: o.AvatarURL}
}

func toLocationResponse(c domain.Coordinates) locationResponse {
	return locationResponse{Lat: c.Lat, Lon: c.Lon}
}

func toCollectionPointResponse(l domain.Listing[domain.CollectionPoint]) collectionPointResponse {
	p := l.Item
	return collectionPointResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Address:        p.Address,
		Contact:        p.Contact,
		OpeningHours:   p.OpeningHours,
		Location:       toLocationResponse(p.Location),
		Owner:          toOwnerResponse(l.Owner),
		Categories:     toCategoryResponses(l.Categories),
		DistanceMeters: l.DistanceMeters,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toEventResponse(l domain.Listing[domain.Event]) eventResponse {
	e := l.Item
	resp := eventResponse{
		ID:             e.ID.String(),
		Title:          e.Title,
		Description:    e.Description,
		StartAt:        e.StartAt,
		EndAt:          e.EndAt,
		Location:       toLocationResponse(e.Location),
		Owner:          toOwnerResponse(l.Owner),
		Categories:     toCategoryResponses(l.Categories),
		DistanceMeters: l.DistanceMeters,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if l.ParticipantCount != nil {
		resp.ParticipantCount = *l.ParticipantCount
	}
	return resp
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:        p.ID.String(),
		EventID:   p.EventID.String(),
		UserID:    p.UserID.String(),
		Status:    p.Status.String(),
		UpdatedAt: p.UpdatedAt,
	}
}

func toDeleteResponse(r domain.DeleteResult) deleteResponse {
	return deleteResponse{ID: r.ID.String(), Message: r.Message}
}
