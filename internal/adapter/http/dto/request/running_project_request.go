package request

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type MilestoneRequest struct {
	ID            string     `json:"id" binding:"required"`
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	TargetDate    time.Time  `json:"target_date" binding:"required"`
	CompletedDate *time.Time `json:"completed_date"`
	Status        string     `json:"status" binding:"required"`
	Progress      int        `json:"progress"`
	Order         int        `json:"order"`
}

type UpdateProgressRequest struct {
	OverallProgress *int               `json:"overall_progress" binding:"required"`
	Milestones      []MilestoneRequest `json:"milestones"`
}

func (r UpdateProgressRequest) ResolveMilestones() []entities.Milestone {
	if len(r.Milestones) == 0 {
		return nil
	}
	out := make([]entities.Milestone, 0, len(r.Milestones))
	for _, m := range r.Milestones {
		out = append(out, entities.Milestone{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			TargetDate:    m.TargetDate,
			CompletedDate: m.CompletedDate,
			Status:        entities.MilestoneStatus(m.Status),
			Progress:      m.Progress,
			Order:         m.Order,
		})
	}
	return out
}
