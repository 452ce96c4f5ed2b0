package wizard

import (
	"fmt"
	"strings"

	"doorstep/internal/domain/entity"
)

// Progress is the derived completion state of a record.
type Progress struct {
	Status         entity.WizardStatus `json:"status"`
	StepsCompleted int                 `json:"steps_completed"`
}

// Derive counts the completed steps of rec. Each step is evaluated on its own,
// so a parking spot set before the paths were finished still counts.
func Derive(rec *entity.AddressRecord, policy Policy) Progress {
	completed := 0
	for _, step := range Steps {
		if policy.Completed(rec, step) {
			completed++
		}
	}

	status := entity.WizardStatusInProgress
	switch completed {
	case 0:
		status = entity.WizardStatusNotStarted
	case len(Steps):
		status = entity.WizardStatusCompleted
	}

	return Progress{Status: status, StepsCompleted: completed}
}

// Stamp writes the derived fields onto rec and returns the progress.
func Stamp(rec *entity.AddressRecord, policy Policy) Progress {
	progress := Derive(rec, policy)
	rec.WizardStatus = progress.Status
	rec.StepsCompleted = progress.StepsCompleted

	return progress
}

// Label renders the status the way the address list shows it.
func (p Progress) Label() string {
	if p.Status == entity.WizardStatusInProgress {
		return fmt.Sprintf("In Progress (%d steps completed)", p.StepsCompleted)
	}

	words := strings.Split(p.Status.String(), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	return strings.Join(words, " ")
}

// Summary aggregates progress over a collection of records.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
}

// Summarize counts records per status using their cached derived fields.
func Summarize(records []*entity.AddressRecord) Summary {
	summary := Summary{Total: len(records)}
	for _, rec := range records {
		switch rec.WizardStatus {
		case entity.WizardStatusCompleted:
			summary.Completed++
		case entity.WizardStatusInProgress:
			summary.InProgress++
		default:
			summary.NotStarted++
		}
	}

	return summary
}
