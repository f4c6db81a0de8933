package tracking

import (
	"time"

	"colis_express/internal/models"
)

// StatusInfo is the display metadata attached to a shipment status.
type StatusInfo struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// TimelineStep is one synthesized milestone of a shipment's history. The
// timeline is never stored; it is recomputed from (status, created_at).
type TimelineStep struct {
	Label     string `json:"label"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp,omitempty"`
	Active    bool   `json:"active"`
}

var statusRank = map[string]int{
	string(models.StatusEnPreparation): 0,
	string(models.StatusEnTransit):     1,
	string(models.StatusEnLivraison):   2,
	string(models.StatusLivre):         3,
}

var statusProgress = map[string]int{
	string(models.StatusEnPreparation): 25,
	string(models.StatusEnTransit):     50,
	string(models.StatusEnLivraison):   75,
	string(models.StatusLivre):         100,
}

var statusInfos = map[string]StatusInfo{
	string(models.StatusEnPreparation): {
		Icon:        "📦",
		Title:       "Colis enregistré",
		Description: "Votre colis est enregistré et en attente de récupération",
		Color:       "blue",
	},
	string(models.StatusEnTransit): {
		Icon:        "🚚",
		Title:       "En transit",
		Description: "Votre colis est en cours d'acheminement",
		Color:       "purple",
	},
	string(models.StatusEnLivraison): {
		Icon:        "🏃",
		Title:       "En cours de livraison",
		Description: "Le livreur est en route vers l'adresse de livraison",
		Color:       "orange",
	},
	string(models.StatusLivre): {
		Icon:        "✅",
		Title:       "Livré",
		Description: "Votre colis a été livré avec succès",
		Color:       "green",
	},
}

// Known reports whether status is one of the four defined states.
func Known(status string) bool {
	_, ok := statusRank[status]
	return ok
}

// Rank maps a status to its position in the forward-only progression.
// Unrecognized values rank lowest.
func Rank(status string) int {
	return statusRank[status]
}

// Progress returns the delivery progress percentage for a status.
// Unrecognized values map to 0.
func Progress(status string) int {
	return statusProgress[status]
}

// Info returns the badge metadata for a status, falling back to the
// en_preparation presentation for unrecognized values.
func Info(status string) StatusInfo {
	if info, ok := statusInfos[status]; ok {
		return info
	}
	return statusInfos[string(models.StatusEnPreparation)]
}

// EstimatedDelivery returns the ETA text shown while a shipment is still
// moving; delivered shipments have none.
func EstimatedDelivery(status, service string) string {
	if status == string(models.StatusLivre) {
		return ""
	}
	if service == string(models.ServiceExpress) {
		return "Dans les 24h"
	}
	return "2-3 jours ouvrables"
}

const timelineTimeFormat = "02/01/2006 15:04"

// Timeline reconstructs the shipment history from the creation time and
// the current status. Milestones are placed at fixed offsets from the
// creation time; a step is active once the shipment has reached the state
// it implies, and only active steps carry a timestamp. The projection is
// deterministic: identical inputs always yield identical output.
func Timeline(status string, createdAt time.Time) []TimelineStep {
	rank := Rank(status)

	milestones := []struct {
		label     string
		location  string
		offset    time.Duration
		threshold int
	}{
		{"Colis enregistré", "Système", 0, 0},
		{"Colis récupéré", "Centre de tri", 4 * time.Hour, 1},
		{"En transit", "Hub national", 24 * time.Hour, 1},
		{"En cours de livraison", "Centre de livraison", 48 * time.Hour, 2},
		{"Livré", "Remis au destinataire", 72 * time.Hour, 3},
	}

	steps := make([]TimelineStep, 0, len(milestones))
	for _, m := range milestones {
		step := TimelineStep{
			Label:    m.label,
			Location: m.location,
			Active:   rank >= m.threshold,
		}
		if step.Active {
			step.Timestamp = createdAt.Add(m.offset).Format(timelineTimeFormat)
		}
		steps = append(steps, step)
	}
	return steps
}
