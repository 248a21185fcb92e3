package entities

import "time"

// PaymentStatus tracks how much of the project has been paid for.
// The engine only records the state; collecting money is out of scope.

type PaymentStatus string

const (
	PaymentStatusPending            PaymentStatus = "pending"
	PaymentStatusPartiallyConfirmed PaymentStatus = "partially_confirmed"
	PaymentStatusFullyConfirmed     PaymentStatus = "fully_confirmed"
)

// ProjectStatus represents the execution state of a running project.

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// MilestoneStatus represents the state of a single project milestone.

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusDelayed    MilestoneStatus = "delayed"
)

// Milestone is a dated checkpoint inside a running project.
type Milestone struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	TargetDate    time.Time       `json:"target_date"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	Status        MilestoneStatus `json:"status"`
	Progress      int             `json:"progress"`
	Order         int             `json:"order"`
}

// RunningProject is the frozen, in-execution record derived 1:1 from a
// confirmed quotation.
//
// Storage model (DynamoDB):
//   - PK: id (equal to the originating quotation id)
//   - GSI1 (client_id-index): client_id
//
// FinalPrice and FinalDeliveryTime are copied verbatim from the quotation
// at confirmation time and must never be recomputed afterwards.
type RunningProject struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	ClientCode  string `json:"client_code"`
	QuotationID string `json:"quotation_id"`
	ProjectName string `json:"project_name"`
	Description string `json:"description,omitempty"`

	StartDate        time.Time  `json:"start_date"`
	EstimatedEndDate time.Time  `json:"estimated_end_date"`
	ActualEndDate    *time.Time `json:"actual_end_date,omitempty"`

	OverallProgress int         `json:"overall_progress"`
	Milestones      []Milestone `json:"milestones,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`

	Features          []string `json:"features,omitempty"`
	SelectedAddOns    []AddOn  `json:"selected_add_ons,omitempty"`
	FinalPrice        float64  `json:"final_price"`
	FinalDeliveryTime int      `json:"final_delivery_time"`

	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
