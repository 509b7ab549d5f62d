package domain

import "time"

const BusinessUserType = "BUSINESS"

type Business struct {
	ID            int64     `json:"id"`
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	Email         string    `json:"email"`
	BusinessName  string    `json:"business_name"`
	UserType      string    `json:"user_type"`
	CreatedOn     time.Time `json:"created_on"`
	IsInvestorHub bool      `json:"is_investor_hub"`
	Status        *string   `json:"status"`
}

type BusinessSummary struct {
	ID           int64  `json:"id"`
	BusinessName string `json:"business_name"`
}
