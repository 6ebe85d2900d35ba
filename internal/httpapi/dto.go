package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type resetPasswordRequest struct {
	Username            string `json:"username"`
	ReplacementPassword string `json:"replacementPassword"`
}

type announcementResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       []byte    `json:"image,omitempty"`
	DatePosted  time.Time `json:"datePosted"`
}

type postAnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       []byte `json:"image"`
}

type editAnnouncementRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       []byte `json:"image"`
}

type updatePrayerTimesRequest struct {
	PrayerTimesData []byte `json:"prayerTimesData"`
	Hash            string `json:"hash"`
}

// Event payloads keep the classification and organiser fields nested, as the
// mobile clients send them; the workflow layer works on the flat record.

type ageRangeDTO struct {
	MinimumAge int16 `json:"minimumAge"`
	MaximumAge int16 `json:"maximumAge"`
}

type contactDetailsDTO struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
}

type eventDetailsDTO struct {
	EventType       string            `json:"eventType"`
	EventRecurrence string            `json:"eventRecurrence"`
	EventStatus     string            `json:"eventStatus"`
	AgeRange        *ageRangeDTO      `json:"ageRange,omitempty"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	ContactDetails  contactDetailsDTO `json:"contactDetails"`
}

type eventDTO struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	EventDetails eventDetailsDTO `json:"eventDetails"`
}

type answerDTO struct {
	ImamName     string    `json:"imamName"`
	Text         string    `json:"text"`
	DateAnswered time.Time `json:"dateAnswered"`
}

type questionResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Topic           string     `json:"topic"`
	SchoolOfThought string     `json:"schoolOfThought,omitempty"`
	Description     string     `json:"description"`
	DateOfQuestion  time.Time  `json:"dateOfQuestion"`
	Answer          *answerDTO `json:"answer,omitempty"`
}

type askQuestionRequest struct {
	Title           string `json:"title"`
	Topic           string `json:"topic"`
	SchoolOfThought string `json:"schoolOfThought,omitempty"`
	Description     string `json:"description"`
}

type answerQuestionRequest struct {
	QuestionID int64  `json:"questionID"`
	ImamName   string `json:"imamName"`
	Text       string `json:"text"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
