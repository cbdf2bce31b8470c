package bill

import "github.com/evensplit/evensplit/internal/models"

type splitResponse struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

type billResponse struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Amount         float64         `json:"amount"`
	CreatedBy      string          `json:"created_by"`
	Participants   []string        `json:"participants"`
	Splits         []splitResponse `json:"splits"`
	GroupID        string          `json:"group_id,omitempty"`
	Category       string          `json:"category"`
	SplitType      string          `json:"split_type"`
	IsRecurring    bool            `json:"is_recurring"`
	RecurrenceType string          `json:"recurrence_type"`
	NextDueDate    string          `json:"next_due_date,omitempty"`
	CreatedAt      int64           `json:"created_at"`
}

func toResponse(b *models.Bill) billResponse {
	splits := make([]splitResponse, len(b.Splits))
	for i, s := range b.Splits {
		splits[i] = splitResponse{UserID: s.UserID, Amount: s.Amount}
	}

	return billResponse{
		ID:             b.ID,
		Description:    b.Description,
		Amount:         b.Amount,
		CreatedBy:      b.CreatedBy,
		Participants:   b.Participants,
		Splits:         splits,
		GroupID:        b.GroupID,
		Category:       string(b.Category),
		SplitType:      string(b.SplitType),
		IsRecurring:    b.IsRecurring,
		RecurrenceType: string(b.RecurrenceType),
		NextDueDate:    b.NextDueDate,
		CreatedAt:      b.CreatedAt,
	}
}

func toResponseList(bills []*models.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}
	return resp
}
