package entity

// Client is a person or organization the practice represents.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Document is a filed piece of work product. Category and SubCategory
// form a pair from the folder taxonomy; FileURL points at an ephemeral
// local reference, not stored bytes.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ClientID    int64     `json:"clientId"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	FileName    string    `json:"fileName"`
	FileType    string    `json:"fileType,omitempty"`
	FileURL     string    `json:"fileUrl,omitempty"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// Event is a calendar entry tied to a client. The client reference may
// outlive the client itself; render such events with a removed marker.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        Timestamp `json:"date"`
	ClientID    int64     `json:"clientId"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
}

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	DueDate   Timestamp `json:"dueDate,omitempty"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Read      bool      `json:"read"`
	Timestamp Timestamp `json:"timestamp"`
}

// User is the authenticated account for the session.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings are per-session preferences; they reset to defaults on logout.
type Settings struct {
	Email         string `json:"email"`
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Timezone      string `json:"timezone"`
}

// DefaultSettings returns the values a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Email:         "",
		Notifications: true,
		Theme:         "light",
		Language:      "en",
		Timezone:      "UTC",
	}
}
