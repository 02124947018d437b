package dto

import "time"

type SchedulingListDTO struct {
	ID          uint      `json:"id"`
	DateTime    time.Time `json:"date_time"`
	Slot        string    `json:"slot"`
	State       string    `json:"state"`
	StateLabel  string    `json:"state_label"`
	Confirmed   bool      `json:"confirmed"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	WorkType    string    `json:"work_type"`
}

type AvailabilityDTO struct {
	Date   string   `json:"date"`
	Status string   `json:"status"`
	Slots  []string `json:"slots"`
}
