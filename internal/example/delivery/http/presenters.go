package http

import (
	"github.com/samber/lo"

	"oddly-ddd/internal/example"
	"oddly-ddd/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,notblank"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

func (r createReq) toInput() example.CreateInput {
	return example.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
	}
}

// listReq accepts either skip/take or page/pageSize. skip/take wins when take is present.
type listReq struct {
	Skip     *int   `form:"skip"     binding:"omitempty,min=0"`
	Take     *int   `form:"take"     binding:"omitempty,min=1"`
	Page     int    `form:"page"     binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1"`
	OwnerID  string `form:"ownerId"`
	IsActive *bool  `form:"isActive"`
	Q        string `form:"q"`
}

func (r listReq) validate() error {
	if r.Skip != nil && r.Take == nil {
		return example.NewValidationError("take", "take is required when skip is set")
	}
	if r.Take != nil && r.Skip != nil && *r.Skip%*r.Take != 0 {
		return example.NewValidationError("skip", "skip must be a multiple of take").
			WithDetails(map[string]any{"skip": *r.Skip, "take": *r.Take})
	}
	return nil
}

func (r listReq) toInput() example.ListInput {
	page, pageSize := r.Page, r.PageSize
	if r.Take != nil {
		pageSize = *r.Take
		page = lo.FromPtr(r.Skip)/pageSize + 1
	}
	return example.ListInput{
		OwnerID:      r.OwnerID,
		IsActive:     r.IsActive,
		NameContains: r.Q,
		Page:         page,
		PageSize:     pageSize,
	}
}

// updateReq is a partial update. Version is the version the client last read.
type updateReq struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Version     int64   `json:"version" binding:"required,min=1"`
}

func (r updateReq) toInput() example.UpdateInput {
	return example.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Version:     r.Version,
	}
}

// --- Response DTOs ---

type exampleResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OwnerID     string            `json:"ownerId"`
	OwnerName   string            `json:"ownerName"`
	IsActive    bool              `json:"isActive"`
	DisplayName string            `json:"displayName"`
	StatusText  string            `json:"statusText"`
	Version     int64             `json:"version"`
	CreatedAt   response.DateTime `json:"createdAt"`
	UpdatedAt   response.DateTime `json:"updatedAt"`
}

func newExampleResp(v example.View) exampleResp {
	return exampleResp{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		IsActive:    v.IsActive,
		DisplayName: v.DisplayName,
		StatusText:  v.StatusText,
		Version:     v.Version,
		CreatedAt:   response.DateTime(v.CreatedAt),
		UpdatedAt:   response.DateTime(v.UpdatedAt),
	}
}

type listResp struct {
	Items    []exampleResp `json:"items"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Take     int           `json:"take"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func (h *handler) newListResp(out example.ListOutput) listResp {
	return listResp{
		Items:    lo.Map(out.Items, func(v example.View, _ int) exampleResp { return newExampleResp(v) }),
		Total:    out.Total,
		Skip:     (out.Page - 1) * out.PageSize,
		Take:     out.PageSize,
		Page:     out.Page,
		PageSize: out.PageSize,
	}
}
