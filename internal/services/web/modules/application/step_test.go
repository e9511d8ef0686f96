package application

import "testing"

func TestParseStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segment string
		want    Step
		ok      bool
	}{
		{segment: "page1", want: Page1, ok: true},
		{segment: "page2", want: Page2, ok: true},
		{segment: "page3", want: Page3, ok: true},
		{segment: "page4", want: Page4, ok: true},
		{segment: "page5", want: StepUnknown},
		{segment: "Page1", want: StepUnknown},
		{segment: "page1 ", want: StepUnknown},
		{segment: "", want: StepUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.segment, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseStep(tc.segment)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("ParseStep(%q) = %v, %v, want %v, %v", tc.segment, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestStepSegmentRoundTrips(t *testing.T) {
	t.Parallel()

	for _, step := range Steps {
		got, ok := ParseStep(step.Segment())
		if !ok || got != step {
			t.Fatalf("ParseStep(%q) = %v, %v", step.Segment(), got, ok)
		}
	}
	if StepUnknown.Segment() != "" || StepUnknown.HeadingKey() != "" {
		t.Fatal("unknown step must have no segment or heading")
	}
	if got := Page3.HeadingKey(); got != "Application.page3.heading" {
		t.Fatalf("HeadingKey() = %q", got)
	}
}
