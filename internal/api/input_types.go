package api

type registerInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Age      int    `json:"age" form:"age"`
	Gender   string `json:"gender" form:"gender"`
	Password string `json:"password" form:"password"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type chatInput struct {
	Message string `json:"message" form:"message"`
}

type symptomInput struct {
	Symptom  string `json:"symptom" form:"symptom"`
	LogDate  string `json:"log_date" form:"log_date"`
	Severity string `json:"severity" form:"severity"`
	Notes    string `json:"notes" form:"notes"`
}

type checklistItemInput struct {
	Content string `json:"content" form:"content"`
}

type checklistToggleInput struct {
	IsCompleted bool `json:"is_completed" form:"is_completed"`
}

type checklistItemView struct {
	ItemID      uint   `json:"item_id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

type calendarEventProps struct {
	Notes    string `json:"notes"`
	Severity string `json:"severity"`
}

type calendarEvent struct {
	Title         string             `json:"title"`
	Start         string             `json:"start"`
	Color         string             `json:"color"`
	ExtendedProps calendarEventProps `json:"extendedProps"`
}
