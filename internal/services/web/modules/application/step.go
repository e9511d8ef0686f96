package application

// Step is one page of the application wizard.
type Step int

const (
	// StepUnknown is returned for paths that name no wizard page.
	StepUnknown Step = iota
	Page1
	Page2
	Page3
	Page4
)

// Steps lists the wizard pages in order.
var Steps = []Step{Page1, Page2, Page3, Page4}

// ParseStep maps a path segment to a step. Only exact page names match.
func ParseStep(segment string) (Step, bool) {
	switch segment {
	case "page1":
		return Page1, true
	case "page2":
		return Page2, true
	case "page3":
		return Page3, true
	case "page4":
		return Page4, true
	default:
		return StepUnknown, false
	}
}

// Segment returns the path segment for s.
func (s Step) Segment() string {
	switch s {
	case Page1:
		return "page1"
	case Page2:
		return "page2"
	case Page3:
		return "page3"
	case Page4:
		return "page4"
	default:
		return ""
	}
}

// HeadingKey returns the catalog key of the step heading.
func (s Step) HeadingKey() string {
	if s == StepUnknown {
		return ""
	}
	return "Application." + s.Segment() + ".heading"
}
