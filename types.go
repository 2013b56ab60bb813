package bistro

import (
	"time"

	"github.com/bistroconsulting/bistro/pages"
)

// Inquiry is a consultation request submitted through the native contact
// form and stored in SQLite.
type Inquiry struct {
	ID         int64
	Name       string `form:"name" validate:"required,max=120"`
	Email      string `form:"email" validate:"required,email,max=254"`
	Restaurant string `form:"restaurant" validate:"max=120"`
	Plan       string `form:"plan" validate:"max=80"`
	Message    string `form:"message" validate:"required,max=4000"`
	CreatedAt  time.Time
	Handled    bool
}

func (in Inquiry) view() pages.Inquiry {
	return pages.Inquiry{
		ID:         in.ID,
		Name:       in.Name,
		Email:      in.Email,
		Restaurant: in.Restaurant,
		Plan:       in.Plan,
		Message:    in.Message,
		CreatedAt:  in.CreatedAt,
		Handled:    in.Handled,
	}
}

func inquiryViews(ins []Inquiry) []pages.Inquiry {
	out := make([]pages.Inquiry, len(ins))
	for i, in := range ins {
		out[i] = in.view()
	}
	return out
}
