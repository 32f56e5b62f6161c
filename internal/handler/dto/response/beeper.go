package response

import (
	"restaurant-pos/internal/usecase/queries"
)

type BeeperResponse struct {
	ID     int32  `json:"id"`
	Status string `json:"status"`
}

func FromBeeperViews(views []*queries.BeeperView) []*BeeperResponse {
	result := make([]*BeeperResponse, len(views))
	for i, v := range views {
		result[i] = &BeeperResponse{ID: v.ID, Status: v.Status}
	}
	return result
}
