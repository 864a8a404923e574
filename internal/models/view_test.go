package models

import "testing"

func TestPieView_Totals(t *testing.T) {
	view := PieView{Slices: []PieSlice{{Label: LabelSuccess, Value: 3}, {Label: LabelFailure, Value: 2}}}

	if view.Total() != 5 {
		t.Errorf("Total() = %d, want 5", view.Total())
	}
	if view.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if v := view.Values(); v[LabelSuccess] != 3 || v[LabelFailure] != 2 {
		t.Errorf("Values() = %v", v)
	}

	zero := PieView{Slices: []PieSlice{{Label: LabelSuccess}, {Label: LabelFailure}}}
	if !zero.IsEmpty() {
		t.Error("zero-valued IsEmpty() = false, want true")
	}
}

func TestScatterView_Categories(t *testing.T) {
	view := ScatterView{Points: []ScatterPoint{
		{Category: "FT"},
		{Category: "v1.1"},
		{Category: "FT"},
		{Category: "B5"},
	}}

	got := view.Categories()
	want := []string{"FT", "v1.1", "B5"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !(ScatterView{}).IsEmpty() {
		t.Error("IsEmpty() = false for a view without points")
	}
}

func TestLaunchRecord_IsSuccess(t *testing.T) {
	if !(LaunchRecord{Class: OutcomeSuccess}).IsSuccess() {
		t.Error("IsSuccess() = false for class 1")
	}
	if (LaunchRecord{Class: OutcomeFailure}).IsSuccess() {
		t.Error("IsSuccess() = true for class 0")
	}
}
