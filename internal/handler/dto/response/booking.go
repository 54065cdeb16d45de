package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker struct {
		ID int64 `json:"id"`
	} `json:"booker"`
	Item struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"item"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
	}
	resp.Booker.ID = v.BookerID
	resp.Item.ID = v.ItemID
	resp.Item.Name = v.ItemName
	return resp
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}
