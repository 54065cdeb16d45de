package response

import (
	"time"

	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type BookingRefResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []*CommentResponse  `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromItemViewList(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

func FromItemDetails(d *queries.ItemDetails) *ItemDetailsResponse {
	resp := &ItemDetailsResponse{
		ItemResponse: *FromItemView(&d.ItemView),
		LastBooking:  fromBookingRef(d.LastBooking),
		NextBooking:  fromBookingRef(d.NextBooking),
		Comments:     make([]*CommentResponse, len(d.Comments)),
	}
	for i, cv := range d.Comments {
		var c CommentResponse
		_ = copier.Copy(&c, cv)
		resp.Comments[i] = &c
	}
	return resp
}

func FromItemDetailsList(ds []*queries.ItemDetails) []*ItemDetailsResponse {
	res := make([]*ItemDetailsResponse, len(ds))
	for i, d := range ds {
		res[i] = FromItemDetails(d)
	}
	return res
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func fromBookingRef(ref *queries.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	var resp BookingRefResponse
	_ = copier.Copy(&resp, ref)
	return &resp
}
