package dashboard

import (
	"time"

	"energymap.ch/internal/models"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}
