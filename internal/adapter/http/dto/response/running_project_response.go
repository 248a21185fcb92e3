package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type MilestoneResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TargetDate    time.Time  `json:"target_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	Order         int        `json:"order"`
}

type RunningProjectResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	ClientCode  string `json:"client_code"`
	QuotationID string `json:"quotation_id"`
	ProjectName string `json:"project_name"`
	Description string `json:"description,omitempty"`

	StartDate        time.Time  `json:"start_date"`
	EstimatedEndDate time.Time  `json:"estimated_end_date"`
	ActualEndDate    *time.Time `json:"actual_end_date,omitempty"`

	OverallProgress int                 `json:"overall_progress"`
	Milestones      []MilestoneResponse `json:"milestones,omitempty"`

	PaymentStatus string `json:"payment_status"`

	Features          []string        `json:"features,omitempty"`
	SelectedAddOns    []AddOnResponse `json:"selected_add_ons,omitempty"`
	FinalPrice        float64         `json:"final_price"`
	FinalDeliveryTime int             `json:"final_delivery_time"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRunningProject(p entities.RunningProject) RunningProjectResponse {
	milestones := make([]MilestoneResponse, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, MilestoneResponse{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			TargetDate:    m.TargetDate,
			CompletedDate: m.CompletedDate,
			Status:        string(m.Status),
			Progress:      m.Progress,
			Order:         m.Order,
		})
	}
	if len(milestones) == 0 {
		milestones = nil
	}
	return RunningProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientCode:  p.ClientCode,
		QuotationID: p.QuotationID,
		ProjectName: p.ProjectName,
		Description: p.Description,

		StartDate:        p.StartDate,
		EstimatedEndDate: p.EstimatedEndDate,
		ActualEndDate:    p.ActualEndDate,

		OverallProgress: p.OverallProgress,
		Milestones:      milestones,

		PaymentStatus: string(p.PaymentStatus),

		Features:          p.Features,
		SelectedAddOns:    fromAddOns(p.SelectedAddOns),
		FinalPrice:        RoundMoney(p.FinalPrice),
		FinalDeliveryTime: p.FinalDeliveryTime,

		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromRunningProjects(ps []entities.RunningProject) []RunningProjectResponse {
	out := make([]RunningProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromRunningProject(p))
	}
	return out
}
