package models

import "time"

// BookingStatusPending is the only status a booking is ever written with.
const BookingStatusPending = "pending"

type Booking struct {
	BookingID       string    `bson:"booking_id" json:"booking_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ArtistID        string    `bson:"artist_id" json:"artist_id"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	AppointmentDate string    `bson:"appointment_date" json:"appointment_date"`
	AppointmentTime string    `bson:"appointment_time" json:"appointment_time"`
	Notes           *string   `bson:"notes,omitempty" json:"notes"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// BookingView is a booking joined with the display names of what it
// references. It is never persisted.
type BookingView struct {
	BookingID       string    `json:"booking_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	ArtistName      string    `json:"artist_name"`
	ServiceName     string    `json:"service_name"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Notes           *string   `json:"notes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
