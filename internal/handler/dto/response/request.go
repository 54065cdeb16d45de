package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type ItemRequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestDetails(d *queries.RequestDetails) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     d.Created,
		Items:       FromItemViewList(d.Items),
	}
}

func FromRequestDetailsList(ds []*queries.RequestDetails) []*ItemRequestResponse {
	res := make([]*ItemRequestResponse, len(ds))
	for i, d := range ds {
		res[i] = FromRequestDetails(d)
	}
	return res
}
