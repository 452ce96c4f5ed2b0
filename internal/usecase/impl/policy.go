package impl

import (
	"doorstep/config"
	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/wizard"
)

// NewWizardPolicy builds the step policy from configuration. Missing
// settings fall back to the default scenarios with the elevator question on.
func NewWizardPolicy(cfg *config.Config) wizard.Policy {
	if cfg == nil || cfg.Wizard == nil {
		return wizard.DefaultPolicy()
	}

	scenarios := make([]entity.Scenario, 0, len(cfg.Wizard.Scenarios))
	for _, s := range cfg.Wizard.Scenarios {
		if s != "" {
			scenarios = append(scenarios, entity.Scenario(s))
		}
	}

	ask := true
	if cfg.Wizard.AskElevator != nil {
		ask = *cfg.Wizard.AskElevator
	}

	return wizard.NewPolicy(scenarios, ask)
}
