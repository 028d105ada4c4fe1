package tui

import "github.com/advancedcpp/drillbox/internal/domain"

type drillDoneMsg struct {
	report domain.Report
}
