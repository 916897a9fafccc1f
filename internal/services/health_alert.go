package services

import "time"

type HealthAlert struct {
	Level      string `json:"level"`
	Illness    string `json:"illness"`
	Message    string `json:"message"`
	ColorClass string `json:"color_class"`
}

// LocalHealthAlert derives the seasonal advisory for the service region.
// Post-monsoon months (August through November) are peak dengue season.
func LocalHealthAlert(now time.Time) HealthAlert {
	month := now.Month()
	if month >= time.August && month <= time.November {
		return HealthAlert{
			Level:      "High Risk",
			Illness:    "Dengue Fever",
			Message:    "Post-monsoon season is a peak time for Dengue. Ensure no stagnant water is near your home.",
			ColorClass: "alert-orange",
		}
	}
	return HealthAlert{
		Level:      "Low Risk",
		Illness:    "General Alert",
		Message:    "Health risks are currently low. Continue to follow good hygiene practices.",
		ColorClass: "alert-green",
	}
}
