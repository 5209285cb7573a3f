package dto

import (
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
)

type RegisterClientRequest struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	ProbableDateOfDelivery string `json:"probable_date_of_delivery"` // YYYY-MM-DD
	BabyGender             string `json:"baby_gender"`
	FatherName             string `json:"father_name"`
	BabyName               string `json:"baby_name"`
}

type UpdateClientRequest struct {
	Name                   *string `json:"name"`
	ProbableDateOfDelivery *string `json:"probable_date_of_delivery"`
	BabyGender             *string `json:"baby_gender"`
	FatherName             *string `json:"father_name"`
	BabyName               *string `json:"baby_name"`
}

type CreateMasterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

type ClientListItem struct {
	ID      uuid.UUID   `json:"id"`
	UserID  uuid.UUID   `json:"user_id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Blocked bool        `json:"blocked"`
	Role    models.Role `json:"role"`
}

// HomeResponse is the landing-screen payload: where the pregnancy stands
// today plus the day's appointments.
type HomeResponse struct {
	Client          models.Client      `json:"client"`
	GestationWeeks  int                `json:"gestation_weeks"`
	GestationDays   int                `json:"gestation_days"`
	Trimester       int                `json:"trimester"`
	PercentComplete int                `json:"percent_complete"`
	DaysRemaining   int                `json:"days_remaining"`
	TodaySchedules  []HomeScheduleItem `json:"today_schedules"`
}

type HomeScheduleItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
}
