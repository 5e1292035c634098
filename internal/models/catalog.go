package models

type Artist struct {
	ArtistID        string  `bson:"artist_id" json:"artist_id"`
	Name            string  `bson:"name" json:"name"`
	Bio             string  `bson:"bio" json:"bio"`
	Specialty       string  `bson:"specialty" json:"specialty"`
	ImageURL        string  `bson:"image_url" json:"image_url"`
	Instagram       *string `bson:"instagram,omitempty" json:"instagram"`
	YearsExperience int     `bson:"years_experience" json:"years_experience"`
}

type Service struct {
	ServiceID       string `bson:"service_id" json:"service_id"`
	Name            string `bson:"name" json:"name"`
	Description     string `bson:"description" json:"description"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
	PriceStart      int    `bson:"price_start" json:"price_start"`
	Icon            string `bson:"icon" json:"icon"`
}
